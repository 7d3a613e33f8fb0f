package dto

import (
	"strings"

	"github.com/google/uuid"

	helper "fitstudio_backend/internals/helpers"
)

/* ===============================
   REQUEST
=================================*/

type CreateOrderRequest struct {
	ClientID        string            `json:"client_id" validate:"required"`
	CourseID        string            `json:"course_id" validate:"required"`
	ServiceName     string            `json:"service_name" validate:"required,max=200"`
	Amount          float64           `json:"amount" validate:"gt=0,cents"`
	DiscountApplied *float64          `json:"discount_applied,omitempty" validate:"omitempty,gte=0,cents"`
	PaymentMethod   *string           `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	Notes           *string           `json:"notes,omitempty"`
	Metadata        helper.Attributes `json:"metadata,omitempty"`
}

// Discount is the applied discount, zero when omitted.
func (r CreateOrderRequest) Discount() float64 {
	if r.DiscountApplied == nil {
		return 0
	}
	return *r.DiscountApplied
}

func (r *CreateOrderRequest) Normalize() {
	r.ClientID = strings.TrimSpace(r.ClientID)
	r.CourseID = strings.TrimSpace(r.CourseID)
	r.ServiceName = strings.TrimSpace(r.ServiceName)
}

type UpdateOrderRequest struct {
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled refunded"`
	PaymentStatus *string `json:"payment_status,omitempty" validate:"omitempty,oneof=unpaid paid partial refunded"`
	PaymentMethod *string `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	Notes         *string `json:"notes,omitempty"`
}

func (r UpdateOrderRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.PaymentStatus != nil {
		u["payment_status"] = *r.PaymentStatus
	}
	if r.PaymentMethod != nil {
		u["payment_method"] = *r.PaymentMethod
	}
	if r.Notes != nil {
		u["notes"] = *r.Notes
	}
	return u
}

/* ===============================
   QUERY
=================================*/

type ListOrdersQuery struct {
	Status        string
	PaymentStatus string
	ClientID      *uuid.UUID
}

/* ===============================
   RESPONSE
=================================*/

type OrderCreatedResponse struct {
	Message     string `json:"message"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}
