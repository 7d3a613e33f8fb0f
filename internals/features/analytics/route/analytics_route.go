package route

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/analytics/controller"
)

// Mounted under /api.
func AnalyticsRoutes(r fiber.Router, h *controller.AnalyticsController) {
	analytics := r.Group("/analytics")

	analytics.Get("/revenue", h.Revenue)
	analytics.Get("/clients", h.Clients)
	analytics.Get("/courses", h.Courses)
	analytics.Get("/attendance", h.Attendance)
}
