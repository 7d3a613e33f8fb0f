package details

import (
	"github.com/gofiber/fiber/v2"

	agentController "fitstudio_backend/internals/features/agents/controller"
	agentRoute "fitstudio_backend/internals/features/agents/route"
	analyticsController "fitstudio_backend/internals/features/analytics/controller"
	analyticsRoute "fitstudio_backend/internals/features/analytics/route"
)

// InsightRoutes mounts the reporting endpoints and the two agents.
func InsightRoutes(r fiber.Router, analytics *analyticsController.AnalyticsController, agents *agentController.AgentController) {
	analyticsRoute.AnalyticsRoutes(r, analytics)
	agentRoute.AgentRoutes(r, agents)
}
