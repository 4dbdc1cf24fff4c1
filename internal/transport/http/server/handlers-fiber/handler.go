// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"radya-hi5/internal/transport/http/middleware"
	"radya-hi5/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the kudos HTTP API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http.handler"),
		uc:  usecase,
	}
}

// RegisterRoutes mounts the API. auth must authenticate the session; admin routes
// additionally require the admin flag.
func RegisterRoutes(r fiber.Router, h *Handler, auth fiber.Handler) {
	r.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	api := r.Group("", auth)
	api.Post("/kudos", h.PostKudos)
	api.Get("/kudos/list", h.GetKudosList)
	api.Get("/users", h.GetUsers)
	api.Get("/values", h.GetValues)
	api.Post("/admin/sync-user", h.PostAdminSyncUser)
	api.Get("/admin/stats", middleware.AdminOnly(), h.GetAdminStats)
}
