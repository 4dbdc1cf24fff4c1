package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"radya-hi5/internal/entities"
	"radya-hi5/internal/transport/http/dto"
	"radya-hi5/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		msg = "Unauthorized"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = strings.TrimPrefix(err.Error(), entities.ErrInvalidArgument.Error()+": ")
	case errors.Is(err, entities.ErrRecipientNotFound):
		status = http.StatusBadRequest
		msg = entities.ErrRecipientNotFound.Error()
	case errors.Is(err, entities.ErrAccountNotFound):
		status = http.StatusNotFound
		msg = "user not found"
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// sessionAccount returns the authenticated account or ErrUnauthorized.
func sessionAccount(c *fiber.Ctx) (*entities.Account, error) {
	acc, ok := middleware.AccountFrom(c)
	if !ok {
		return nil, entities.ErrUnauthorized
	}
	return acc, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", entities.ErrInvalidArgument, key)
	}
	return v, nil
}
