package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fitstudio_backend/internals/features/analytics/service"
	helper "fitstudio_backend/internals/helpers"
)

type AnalyticsController struct {
	svc *service.Service
}

func NewAnalyticsController(svc *service.Service) *AnalyticsController {
	return &AnalyticsController{svc: svc}
}

// GET /api/analytics/revenue
func (h *AnalyticsController) Revenue(c *fiber.Ctx) error {
	out, err := h.svc.RevenueAnalytics(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/analytics/clients
func (h *AnalyticsController) Clients(c *fiber.Ctx) error {
	out, err := h.svc.ClientAnalytics(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/analytics/courses
func (h *AnalyticsController) Courses(c *fiber.Ctx) error {
	out, err := h.svc.CourseAnalytics(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/analytics/attendance?course_id=
func (h *AnalyticsController) Attendance(c *fiber.Ctx) error {
	var courseID *uuid.UUID
	if raw := c.Query("course_id"); raw != "" {
		id, err := helper.ParseID(raw, "course")
		if err != nil {
			return err
		}
		courseID = &id
	}
	out, err := h.svc.AttendanceStats(c.UserContext(), courseID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
