package route

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/studio/enquiries/controller"
)

// Mounted under /api.
func EnquiryRoutes(r fiber.Router, h *controller.EnquiryController) {
	enquiries := r.Group("/enquiries")

	enquiries.Get("/", h.List)
	enquiries.Post("/", h.Create)
}
