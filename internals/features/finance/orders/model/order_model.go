package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	helper "fitstudio_backend/internals/helpers"
)

type OrderStatus string
type OrderPaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

const (
	OrderPaymentUnpaid   OrderPaymentStatus = "unpaid"
	OrderPaymentPaid     OrderPaymentStatus = "paid"
	OrderPaymentPartial  OrderPaymentStatus = "partial"
	OrderPaymentRefunded OrderPaymentStatus = "refunded"
)

const DefaultCurrency = "INR"

type OrderModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	OrderNumber string    `gorm:"column:order_number;size:10;not null;uniqueIndex:uq_orders_order_number" json:"order_number"`

	ClientID    uuid.UUID `gorm:"column:client_id;type:uuid;not null;index:idx_orders_client_id" json:"client_id"`
	CourseID    uuid.UUID `gorm:"column:course_id;type:uuid;not null;index:idx_orders_course_id" json:"course_id"`
	ServiceName string    `gorm:"column:service_name;size:200;not null" json:"service_name"`

	Amount          float64            `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	Currency        string             `gorm:"column:currency;size:3;not null;default:'INR'" json:"currency"`
	Status          OrderStatus        `gorm:"column:status;size:20;not null;default:'pending';index:idx_orders_status" json:"status"`
	PaymentStatus   OrderPaymentStatus `gorm:"column:payment_status;size:20;not null;default:'unpaid'" json:"payment_status"`
	PaymentMethod   *string            `gorm:"column:payment_method;size:50" json:"payment_method,omitempty"`
	DiscountApplied float64            `gorm:"column:discount_applied;type:numeric(12,2);not null;default:0" json:"discount_applied"`
	FinalAmount     float64            `gorm:"column:final_amount;type:numeric(12,2);not null" json:"final_amount"`
	Notes           *string            `gorm:"column:notes" json:"notes,omitempty"`
	Metadata        helper.Attributes  `gorm:"column:metadata;type:jsonb;not null;default:'{}'" json:"metadata"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_orders_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderModel) TableName() string { return "orders" }

// FormatOrderNumber renders a sequence value as ORD-NNNNNN.
func FormatOrderNumber(seq int64) string {
	return fmt.Sprintf("ORD-%06d", seq)
}
