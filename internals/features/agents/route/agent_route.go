package route

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/agents/controller"
)

// Mounted under /api.
func AgentRoutes(r fiber.Router, h *controller.AgentController) {
	agents := r.Group("/agents")

	agents.Get("/status", h.Status)
	agents.Post("/support/query", h.Support)
	agents.Post("/dashboard/query", h.Dashboard)
}
