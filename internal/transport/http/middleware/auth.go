package middleware

import (
	"context"
	"errors"
	"strings"

	"radya-hi5/internal/entities"
	"radya-hi5/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	bearerPrefix = "Bearer "
	accountKey   = "account"
)

// TokenValidator validates a bearer token and returns the account ID it was issued for.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// AccountLoader loads the account behind a session.
type AccountLoader interface {
	Account(ctx context.Context, accountID string) (*entities.Account, error)
}

// Auth requires a valid bearer token and stores the session account in Locals.
func Auth(tokens TokenValidator, accounts AccountLoader, log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := extractBearer(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			return unauthorized(c)
		}
		accountID, err := tokens.Validate(raw)
		if err != nil {
			return unauthorized(c)
		}
		acc, err := accounts.Account(c.UserContext(), accountID)
		switch {
		case err == nil:
		case errors.Is(err, entities.ErrAccountNotFound):
			return unauthorized(c)
		default:
			log.Errorw("session account lookup", "account_id", accountID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
		}
		c.Locals(accountKey, acc)
		return c.Next()
	}
}

// AdminOnly rejects sessions whose account lacks the admin flag. It must run after Auth.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		acc, ok := AccountFrom(c)
		if !ok || !acc.IsAdmin {
			return unauthorized(c)
		}
		return c.Next()
	}
}

// AccountFrom returns the session account stored by Auth.
func AccountFrom(c *fiber.Ctx) (*entities.Account, bool) {
	acc, ok := c.Locals(accountKey).(*entities.Account)
	return acc, ok && acc != nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
}

func extractBearer(header string) string {
	v := strings.TrimSpace(header)
	if len(v) < len(bearerPrefix) || !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
