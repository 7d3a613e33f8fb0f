package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/studio/classes/dto"
	"fitstudio_backend/internals/features/studio/classes/service"
	helper "fitstudio_backend/internals/helpers"
)

type ClassController struct {
	svc *service.Service
}

func NewClassController(svc *service.Service) *ClassController {
	return &ClassController{svc: svc}
}

// GET /api/classes?course_id=&status=&from=YYYY-MM-DD&to=YYYY-MM-DD
// "to" is inclusive: a bare date covers the whole day.
func (h *ClassController) List(c *fiber.Ctx) error {
	w := helper.ResolveWindow(c, helper.DefaultLimit, helper.MaxLimit)
	q := dto.ListClassesQuery{Status: c.Query("status")}

	if raw := c.Query("course_id"); raw != "" {
		id, err := helper.ParseID(raw, "course")
		if err != nil {
			return err
		}
		q.CourseID = &id
	}
	if raw := c.Query("from"); raw != "" {
		t, err := helper.ParseDate(raw)
		if err != nil {
			return helper.FieldError("from", "must be RFC3339 or YYYY-MM-DD")
		}
		q.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := helper.ParseDateEnd(raw)
		if err != nil {
			return helper.FieldError("to", "must be RFC3339 or YYYY-MM-DD")
		}
		q.To = &t
	}

	rows, total, err := h.svc.List(c.UserContext(), q, w)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "classes", rows, total, w)
}

func (h *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	m, err := h.svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":  "Class scheduled successfully",
		"class_id": m.ID.String(),
	})
}

func (h *ClassController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Params("id"), "class")
	if err != nil {
		return err
	}
	m, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(m)
}
