package route

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/studio/classes/controller"
)

// Mounted under /api.
func ClassRoutes(r fiber.Router, h *controller.ClassController) {
	classes := r.Group("/classes")

	classes.Get("/", h.List)
	classes.Post("/", h.Create)
	classes.Get("/:id", h.Get)
}
