package model

import (
	"time"

	"github.com/google/uuid"

	helper "fitstudio_backend/internals/helpers"
)

type PaymentStatus string
type PaymentMethod string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodOnline       PaymentMethod = "online"
)

type PaymentModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`

	OrderID  uuid.UUID `gorm:"column:order_id;type:uuid;not null;index:idx_payments_order_id" json:"order_id"`
	ClientID uuid.UUID `gorm:"column:client_id;type:uuid;not null;index:idx_payments_client_id" json:"client_id"`

	Amount          float64           `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	Currency        string            `gorm:"column:currency;size:3;not null;default:'INR'" json:"currency"`
	PaymentMethod   PaymentMethod     `gorm:"column:payment_method;size:20;not null" json:"payment_method"`
	TransactionID   *string           `gorm:"column:transaction_id;size:100" json:"transaction_id,omitempty"`
	GatewayResponse helper.Attributes `gorm:"column:gateway_response;type:jsonb;not null;default:'{}'" json:"gateway_response"`
	Status          PaymentStatus     `gorm:"column:status;size:20;not null;default:'pending';index:idx_payments_status" json:"status"`
	PaymentDate     time.Time         `gorm:"column:payment_date;not null;index:idx_payments_payment_date" json:"payment_date"`
	Notes           *string           `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }
