package route

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/finance/orders/controller"
)

// Mounted under /api.
func OrderRoutes(r fiber.Router, h *controller.OrderController) {
	orders := r.Group("/orders")

	orders.Get("/", h.List)
	orders.Post("/", h.Create)
	orders.Get("/:id", h.Get)
	orders.Patch("/:id", h.Update)
}
