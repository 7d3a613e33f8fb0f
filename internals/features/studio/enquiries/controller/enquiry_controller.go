package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/studio/enquiries/dto"
	"fitstudio_backend/internals/features/studio/enquiries/service"
	helper "fitstudio_backend/internals/helpers"
)

type EnquiryController struct {
	svc *service.Service
}

func NewEnquiryController(svc *service.Service) *EnquiryController {
	return &EnquiryController{svc: svc}
}

// GET /api/enquiries?status=&enquiry_type=
func (h *EnquiryController) List(c *fiber.Ctx) error {
	w := helper.ResolveWindow(c, helper.DefaultLimit, helper.MaxLimit)
	q := dto.ListEnquiriesQuery{
		Status:      c.Query("status"),
		EnquiryType: c.Query("enquiry_type"),
	}
	rows, total, err := h.svc.List(c.UserContext(), q, w)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "enquiries", rows, total, w)
}

// POST /api/enquiries
func (h *EnquiryController) Create(c *fiber.Ctx) error {
	var req dto.CreateEnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	m, err := h.svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":    "Enquiry created successfully",
		"enquiry_id": m.ID.String(),
	})
}
