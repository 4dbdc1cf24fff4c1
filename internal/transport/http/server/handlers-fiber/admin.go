package handlers_fiber

import (
	"net/http"

	"radya-hi5/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetAdminStats returns leaderboards over the last ?weeks= weeks.
func (h *Handler) GetAdminStats(c *fiber.Ctx) error {
	weeks, err := queryInt(c, "weeks", 0)
	if err != nil {
		return writeError(c, err)
	}

	dash, err := h.uc.Dashboard(c.UserContext(), weeks)
	if err != nil {
		h.log.Errorw("failed to get stats", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToStats(dash))
}

// PostAdminSyncUser links the session account to its roster entry.
func (h *Handler) PostAdminSyncUser(c *fiber.Ctx) error {
	acc, err := sessionAccount(c)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.uc.SyncAccount(c.UserContext(), acc.ID)
	if err != nil {
		h.log.Errorw("failed to sync user", "account_id", acc.ID, "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToSyncUser(*res))
}
