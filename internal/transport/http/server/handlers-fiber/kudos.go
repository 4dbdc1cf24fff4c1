package handlers_fiber

import (
	"net/http"

	"radya-hi5/internal/mapper"
	"radya-hi5/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostKudos records a kudos from the session account.
func (h *Handler) PostKudos(c *fiber.Ctx) error {
	acc, err := sessionAccount(c)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.CreateKudosRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	k, err := h.uc.CreateKudos(c.UserContext(), mapper.FromCreateKudos(acc.ID, body))
	if err != nil {
		h.log.Errorw("failed to create kudos", "sender_id", acc.ID, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.CreateKudosResponse{
		Kudos:      mapper.ToKudos(*k),
		Unresolved: k.Unresolved,
	})
}

// GetKudosList pages through kudos sent by the session account.
func (h *Handler) GetKudosList(c *fiber.Ctx) error {
	acc, err := sessionAccount(c)
	if err != nil {
		return writeError(c, err)
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return writeError(c, err)
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return writeError(c, err)
	}

	page, err := h.uc.ListSentKudos(c.UserContext(), acc.ID, limit, offset)
	if err != nil {
		h.log.Errorw("failed to list kudos", "sender_id", acc.ID, "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToKudosList(page))
}

// GetValues returns the value tag catalog.
func (h *Handler) GetValues(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(dto.ValuesResponse{Values: mapper.ToValues(h.uc.Values())})
}
