package route

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/studio/attendance/controller"
)

// Mounted under /api.
func AttendanceRoutes(r fiber.Router, h *controller.AttendanceController) {
	attendance := r.Group("/attendance")

	attendance.Get("/", h.List)
	attendance.Post("/", h.Create)
}
