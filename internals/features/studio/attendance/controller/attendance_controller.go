package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/studio/attendance/dto"
	"fitstudio_backend/internals/features/studio/attendance/service"
	helper "fitstudio_backend/internals/helpers"
)

type AttendanceController struct {
	svc *service.Service
}

func NewAttendanceController(svc *service.Service) *AttendanceController {
	return &AttendanceController{svc: svc}
}

// GET /api/attendance?client_id=&class_id=&course_id=&status=
func (h *AttendanceController) List(c *fiber.Ctx) error {
	w := helper.ResolveWindow(c, helper.DefaultLimit, helper.MaxLimit)
	q := dto.ListAttendanceQuery{Status: c.Query("status")}

	if raw := c.Query("client_id"); raw != "" {
		id, err := helper.ParseID(raw, "client")
		if err != nil {
			return err
		}
		q.ClientID = &id
	}
	if raw := c.Query("class_id"); raw != "" {
		id, err := helper.ParseID(raw, "class")
		if err != nil {
			return err
		}
		q.ClassID = &id
	}
	if raw := c.Query("course_id"); raw != "" {
		id, err := helper.ParseID(raw, "course")
		if err != nil {
			return err
		}
		q.CourseID = &id
	}

	rows, total, err := h.svc.List(c.UserContext(), q, w)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "attendance", rows, total, w)
}

// POST /api/attendance
func (h *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	m, err := h.svc.Record(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":       "Attendance recorded successfully",
		"attendance_id": m.ID.String(),
	})
}
