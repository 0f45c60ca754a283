package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultAccessTokenTTL = 24 * time.Hour

var (
	ErrInvalidAccessToken = errors.New("invalid access token")
	ErrEmptySecret        = errors.New("secret key must not be empty")
)

// AccessClaims mirrors the bearer tokens issued by the login service.
type AccessClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func IssueAccessToken(secret []byte, userID uint, email string, ttl time.Duration, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	claims := AccessClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseAccessToken accepts only HMAC-signed tokens that carry a user id.
// Tokens without an expiry are accepted, matching the login service.
func ParseAccessToken(secret []byte, tokenValue string) (AccessClaims, error) {
	if len(secret) == 0 {
		return AccessClaims{}, ErrEmptySecret
	}

	claims := AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenValue, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return AccessClaims{}, fmt.Errorf("%w: %v", ErrInvalidAccessToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return AccessClaims{}, ErrInvalidAccessToken
	}
	return claims, nil
}
