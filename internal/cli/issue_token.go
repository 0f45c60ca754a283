package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"

	"github.com/terraincognita07/zivora/internal/security"
)

// RunIssueTokenCommand mints a bearer token for local testing against the
// configured secret.
func RunIssueTokenCommand(secretKey string, args []string, out io.Writer, now time.Time) error {
	flags := flag.NewFlagSet("issue-token", flag.ContinueOnError)
	flags.SetOutput(out)
	userID := flags.Uint("user", 0, "user id to place in the token")
	email := flags.String("email", "", "optional email claim")
	ttl := flags.Duration("ttl", security.DefaultAccessTokenTTL, "token lifetime")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *userID == 0 {
		return errors.New("user id is required")
	}
	normalizedEmail := strings.ToLower(strings.TrimSpace(*email))
	if normalizedEmail != "" {
		if _, err := mail.ParseAddress(normalizedEmail); err != nil {
			return fmt.Errorf("invalid email address: %w", err)
		}
	}
	if *ttl <= 0 {
		return errors.New("ttl must be positive")
	}

	token, err := security.IssueAccessToken([]byte(secretKey), *userID, normalizedEmail, *ttl, now)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	fmt.Fprintln(out, token)
	return nil
}
