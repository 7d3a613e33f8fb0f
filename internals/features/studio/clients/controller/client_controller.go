package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/studio/clients/dto"
	"fitstudio_backend/internals/features/studio/clients/service"
	helper "fitstudio_backend/internals/helpers"
)

type ClientController struct {
	svc *service.Service
}

func NewClientController(svc *service.Service) *ClientController {
	return &ClientController{svc: svc}
}

// GET /api/clients?skip=&limit=&status=&q=
func (h *ClientController) List(c *fiber.Ctx) error {
	w := helper.ResolveWindow(c, helper.DefaultLimit, helper.MaxLimit)
	q := dto.ListClientsQuery{
		Status: c.Query("status"),
		Search: c.Query("q"),
	}

	rows, total, err := h.svc.List(c.UserContext(), q, w)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "clients", rows, total, w)
}

// POST /api/clients
func (h *ClientController) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}

	client, err := h.svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.ClientCreatedResponse{
		Message:  "Client created successfully",
		ClientID: client.ID.String(),
	})
}

// GET /api/clients/:id
func (h *ClientController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Params("id"), "client")
	if err != nil {
		return err
	}
	detail, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// PATCH /api/clients/:id
func (h *ClientController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Params("id"), "client")
	if err != nil {
		return err
	}
	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}

	client, err := h.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Client updated successfully",
		"client":  client,
	})
}
