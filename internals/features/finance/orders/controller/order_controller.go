package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/finance/orders/dto"
	"fitstudio_backend/internals/features/finance/orders/service"
	helper "fitstudio_backend/internals/helpers"
)

type OrderController struct {
	svc *service.Service
}

func NewOrderController(svc *service.Service) *OrderController {
	return &OrderController{svc: svc}
}

// GET /api/orders?skip=&limit=&status=&payment_status=&client_id=
func (h *OrderController) List(c *fiber.Ctx) error {
	w := helper.ResolveWindow(c, helper.DefaultLimit, helper.MaxLimit)
	q := dto.ListOrdersQuery{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
	}
	if raw := c.Query("client_id"); raw != "" {
		id, err := helper.ParseID(raw, "client")
		if err != nil {
			return err
		}
		q.ClientID = &id
	}

	rows, total, err := h.svc.List(c.UserContext(), q, w)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "orders", rows, total, w)
}

// POST /api/orders
func (h *OrderController) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}

	o, err := h.svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.OrderCreatedResponse{
		Message:     "Order created successfully",
		OrderID:     o.ID.String(),
		OrderNumber: o.OrderNumber,
	})
}

func (h *OrderController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Params("id"), "order")
	if err != nil {
		return err
	}
	o, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(o)
}

func (h *OrderController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c.Params("id"), "order")
	if err != nil {
		return err
	}
	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	o, err := h.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Order updated successfully",
		"order":   o,
	})
}
