package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/finance/payments/dto"
	"fitstudio_backend/internals/features/finance/payments/service"
	helper "fitstudio_backend/internals/helpers"
)

type PaymentController struct {
	svc *service.Service
}

func NewPaymentController(svc *service.Service) *PaymentController {
	return &PaymentController{svc: svc}
}

/* =========================================================
   GET /api/payments?status=&order_id=&client_id=
========================================================= */

func (h *PaymentController) List(c *fiber.Ctx) error {
	w := helper.ResolveWindow(c, helper.DefaultLimit, helper.MaxLimit)
	q := dto.ListPaymentsQuery{Status: c.Query("status")}
	if raw := c.Query("order_id"); raw != "" {
		id, err := helper.ParseID(raw, "order")
		if err != nil {
			return err
		}
		q.OrderID = &id
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
	return helper.JsonList(c, "payments", rows, total, w)
}

/* =========================================================
   POST /api/payments
========================================================= */

func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	p, err := h.svc.Record(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":    "Payment recorded successfully",
		"payment_id": p.ID.String(),
		"status":     p.Status,
	})
}

/* =========================================================
   POST /api/payments/charge
========================================================= */

func (h *PaymentController) Charge(c *fiber.Ctx) error {
	var req dto.ChargeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	p, err := h.svc.Charge(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":          "Payment processed",
		"payment_id":       p.ID.String(),
		"transaction_id":   p.TransactionID,
		"status":           p.Status,
		"gateway_response": p.GatewayResponse,
	})
}
