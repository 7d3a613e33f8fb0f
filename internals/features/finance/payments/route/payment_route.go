package route

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/finance/payments/controller"
)

// Mounted under /api.
func PaymentRoutes(r fiber.Router, h *controller.PaymentController) {
	payments := r.Group("/payments")

	payments.Get("/", h.List)
	payments.Post("/", h.Create)
	payments.Post("/charge", h.Charge)
}
