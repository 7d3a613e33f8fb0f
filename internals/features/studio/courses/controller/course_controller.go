package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/studio/courses/dto"
	"fitstudio_backend/internals/features/studio/courses/service"
	helper "fitstudio_backend/internals/helpers"
)

type CourseController struct {
	svc *service.Service
}

func NewCourseController(svc *service.Service) *CourseController {
	return &CourseController{svc: svc}
}

// GET /api/courses?status=&category=&instructor=&q=
func (h *CourseController) List(c *fiber.Ctx) error {
	w := helper.ResolveWindow(c, helper.DefaultLimit, helper.MaxLimit)
	q := dto.ListCoursesQuery{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Instructor: c.Query("instructor"),
		Search:     c.Query("q"),
	}
	rows, total, err := h.svc.List(c.UserContext(), q, w)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "courses", rows, total, w)
}

func (h *CourseController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Params("id"), "course")
	if err != nil {
		return err
	}
	course, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(course)
}

func (h *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	course, err := h.svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":   "Course created successfully",
		"course_id": course.ID.String(),
	})
}

func (h *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Params("id"), "course")
	if err != nil {
		return err
	}
	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	course, err := h.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Course updated successfully",
		"course":  course,
	})
}
