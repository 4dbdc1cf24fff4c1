package handlers_fiber

import (
	"net/http"

	"radya-hi5/internal/mapper"
	"radya-hi5/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetUsers returns everyone the session account can send kudos to.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	acc, err := sessionAccount(c)
	if err != nil {
		return writeError(c, err)
	}

	items, err := h.uc.ListAddressable(c.UserContext(), acc.ID)
	if err != nil {
		h.log.Errorw("failed to list users", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.UsersResponse{Users: mapper.ToAddressable(items)})
}
