package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/zivora/internal/security"
)

const (
	contextUserIDKey = "current_user_id"
	bearerPrefix     = "bearer "
)

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(contextUserIDKey).(uint)
	return userID, ok && userID != 0
}

// AuthRequired resolves the trusted user id from the bearer token.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "access token required")
	}

	claims, err := security.ParseAccessToken(handler.secretKey, token)
	if err != nil {
		return apiError(c, fiber.StatusForbidden, "invalid or expired token")
	}

	c.Locals(contextUserIDKey, claims.UserID)
	return c.Next()
}

// SameUserOnly rejects requests whose :userId differs from the token user.
func (handler *Handler) SameUserOnly(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	pathUserID, err := parseIDParam(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if pathUserID != userID {
		return apiError(c, fiber.StatusForbidden, "access denied")
	}
	return c.Next()
}

func bearerToken(header string) (string, bool) {
	trimmed := strings.TrimSpace(header)
	if len(trimmed) <= len(bearerPrefix) || !strings.EqualFold(trimmed[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(trimmed[len(bearerPrefix):])
	return token, token != ""
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || value == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(value), nil
}
