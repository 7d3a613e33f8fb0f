package dto

import (
	"github.com/google/uuid"
)

/* ===============================
   REQUEST
=================================*/

// CreatePaymentRequest records a payment taken outside the gateway
// (cash at the desk, a bank transfer reference).
type CreatePaymentRequest struct {
	OrderID       string  `json:"order_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"gt=0,cents"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash card upi bank_transfer online"`
	TransactionID *string `json:"transaction_id,omitempty" validate:"omitempty,max=100"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=pending completed failed"`
	PaymentDate   *string `json:"payment_date,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ChargeRequest asks the payment gateway to collect for an order.
type ChargeRequest struct {
	OrderID       string  `json:"order_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"gt=0,cents"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash card upi bank_transfer online"`
}

/* ===============================
   QUERY
=================================*/

type ListPaymentsQuery struct {
	Status   string
	OrderID  *uuid.UUID
	ClientID *uuid.UUID
}
