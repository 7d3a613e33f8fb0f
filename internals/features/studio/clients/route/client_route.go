package route

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/studio/clients/controller"
)

// Mounted under /api.
func ClientRoutes(r fiber.Router, h *controller.ClientController) {
	clients := r.Group("/clients")

	clients.Get("/", h.List)
	clients.Post("/", h.Create)
	clients.Get("/:id", h.Get)
	clients.Patch("/:id", h.Update)
}
