package route

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/studio/courses/controller"
)

// Mounted under /api.
func CourseRoutes(r fiber.Router, h *controller.CourseController) {
	courses := r.Group("/courses")

	courses.Get("/", h.List)
	courses.Post("/", h.Create)
	courses.Get("/:id", h.Get)
	courses.Patch("/:id", h.Update)
}
