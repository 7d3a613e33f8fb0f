package controller

import (
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/agents/service"
	helper "fitstudio_backend/internals/helpers"
)

type queryRequest struct {
	Query   string            `json:"query"`
	Context helper.Attributes `json:"context"`
}

type AgentController struct {
	svc            *service.Service
	maxQueryLength int
}

func NewAgentController(svc *service.Service, maxQueryLength int) *AgentController {
	return &AgentController{svc: svc, maxQueryLength: maxQueryLength}
}

// POST /api/agents/support/query
func (h *AgentController) Support(c *fiber.Ctx) error {
	return h.dispatch(c, service.AgentSupport)
}

// POST /api/agents/dashboard/query
func (h *AgentController) Dashboard(c *fiber.Ctx) error {
	return h.dispatch(c, service.AgentDashboard)
}

// GET /api/agents/status
func (h *AgentController) Status(c *fiber.Ctx) error {
	return c.JSON(h.svc.Status())
}

func (h *AgentController) dispatch(c *fiber.Ctx, agent string) error {
	var req queryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	if strings.TrimSpace(req.Query) == "" {
		return helper.BadRequest("Query is required")
	}
	if utf8.RuneCountInString(req.Query) > h.maxQueryLength {
		return helper.BadRequest("Query too long")
	}

	out, err := h.svc.Dispatch(c.UserContext(), agent, req.Query, req.Context)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
