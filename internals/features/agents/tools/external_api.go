package tools

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fitstudio_backend/internals/features/agents/reasoner"
	orderDto "fitstudio_backend/internals/features/finance/orders/dto"
	orderModel "fitstudio_backend/internals/features/finance/orders/model"
	paymentDto "fitstudio_backend/internals/features/finance/payments/dto"
	paymentModel "fitstudio_backend/internals/features/finance/payments/model"
	clientModel "fitstudio_backend/internals/features/studio/clients/model"
	courseModel "fitstudio_backend/internals/features/studio/courses/model"
	enquiryDto "fitstudio_backend/internals/features/studio/enquiries/dto"
	enquiryModel "fitstudio_backend/internals/features/studio/enquiries/model"
	"fitstudio_backend/internals/helpers/logger"
)

const ExternalAPIName = "external_api"

type ClientRegistry interface {
	FindOrCreate(ctx context.Context, name, email, phone string) (*clientModel.ClientModel, bool, error)
}

type CourseFinder interface {
	FindByName(ctx context.Context, name string) (*courseModel.CourseModel, error)
}

type OrderCreator interface {
	Create(ctx context.Context, req orderDto.CreateOrderRequest) (*orderModel.OrderModel, error)
}

type EnquiryCreator interface {
	Create(ctx context.Context, req enquiryDto.CreateEnquiryRequest) (*enquiryModel.EnquiryModel, error)
}

type PaymentCharger interface {
	Charge(ctx context.Context, req paymentDto.ChargeRequest) (*paymentModel.PaymentModel, error)
}

type Messenger interface {
	SendEmail(ctx context.Context, to, subject, content string) (string, error)
	SendSMS(ctx context.Context, to, message string) (string, error)
}

// ExternalAPI is the write tool. It goes through the same services as the
// HTTP handlers, so orders, enquiries and payments obey the same rules.
type ExternalAPI struct {
	clients   ClientRegistry
	courses   CourseFinder
	orders    OrderCreator
	enquiries EnquiryCreator
	payments  PaymentCharger
	messenger Messenger
	log       *zap.Logger
}

type ExternalAPIDeps struct {
	Clients   ClientRegistry
	Courses   CourseFinder
	Orders    OrderCreator
	Enquiries EnquiryCreator
	Payments  PaymentCharger
	Messenger Messenger
}

func NewExternalAPI(d ExternalAPIDeps, log *zap.Logger) *ExternalAPI {
	return &ExternalAPI{
		clients:   d.Clients,
		courses:   d.Courses,
		orders:    d.Orders,
		enquiries: d.Enquiries,
		payments:  d.Payments,
		messenger: d.Messenger,
		log:       log.Named("tool.external_api"),
	}
}

var externalAPIActions = []string{
	"create_order",
	"create_client_enquiry",
	"send_email",
	"send_sms",
	"process_payment",
}

func (t *ExternalAPI) Spec() reasoner.ToolSpec {
	str := map[string]any{"type": "string"}
	num := map[string]any{"type": "number"}
	return reasoner.ToolSpec{
		Name: ExternalAPIName,
		Description: "Create orders and client enquiries, send email or SMS notifications, " +
			"and process payments for existing orders.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"action":         map[string]any{"type": "string", "enum": externalAPIActions},
				"client_name":    str,
				"client_email":   str,
				"service_name":   map[string]any{"type": "string", "description": "course name or part of it"},
				"amount":         num,
				"phone":          str,
				"discount":       num,
				"notes":          str,
				"metadata":       map[string]any{"type": "object"},
				"name":           str,
				"email":          str,
				"enquiry_type":   str,
				"message":        str,
				"source":         str,
				"to_email":       str,
				"subject":        str,
				"content":        str,
				"to_phone":       str,
				"order_id":       str,
				"payment_method": map[string]any{"type": "string", "enum": []string{"cash", "card", "upi", "bank_transfer", "online"}},
			},
			"required": []string{"action"},
		},
	}
}

func (t *ExternalAPI) Call(ctx context.Context, raw string) string {
	a, err := parseArgs(raw)
	if err != nil {
		return failure(err.Error()).encode()
	}
	return t.execute(ctx, a).encode()
}

func (t *ExternalAPI) execute(ctx context.Context, a args) Result {
	switch action := a.action(); action {
	case "create_order":
		return t.createOrder(ctx, a)
	case "create_client_enquiry":
		return t.createEnquiry(ctx, a)
	case "send_email":
		return t.sendEmail(ctx, a)
	case "send_sms":
		return t.sendSMS(ctx, a)
	case "process_payment":
		return t.processPayment(ctx, a)
	default:
		return unsupported(action)
	}
}

func (t *ExternalAPI) createOrder(ctx context.Context, a args) Result {
	const action = "create_order"
	if r := a.require("client_name", "client_email", "service_name", "amount"); r != nil {
		return *r
	}
	metadata, err := a.attributes("metadata")
	if err != nil {
		return failure("metadata must be an object")
	}

	client, created, err := t.clients.FindOrCreate(ctx, a.str("client_name"), a.str("client_email"), a.str("phone"))
	if err != nil {
		return errorResult(t.log, action, err)
	}
	serviceName := a.str("service_name")
	course, err := t.courses.FindByName(ctx, serviceName)
	if err != nil {
		return errorResult(t.log, action, err)
	}

	order, err := t.orders.Create(ctx, orderDto.CreateOrderRequest{
		ClientID:        client.ID.String(),
		CourseID:        course.ID.String(),
		ServiceName:     serviceName,
		Amount:          a.num("amount"),
		DiscountApplied: a.optNum("discount"),
		Notes:           a.optStr("notes"),
		Metadata:        metadata,
	})
	if err != nil {
		return errorResult(t.log, action, err)
	}

	if _, err := t.messenger.SendEmail(ctx, client.Email,
		"Order Confirmation - "+order.OrderNumber,
		fmt.Sprintf("Your order for %s has been created successfully.", serviceName),
	); err != nil {
		t.log.Warn("order confirmation email failed", zap.String(logger.FieldOrderID, order.ID.String()), zap.Error(err))
	}

	t.log.Info("order created by agent",
		zap.String(logger.FieldOrderID, order.ID.String()),
		zap.String(logger.FieldClientID, client.ID.String()),
		zap.Bool("client_created", created))
	return Result{
		"status":       "success",
		"message":      "Order created successfully",
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"client_id":    client.ID.String(),
		"amount":       order.FinalAmount,
	}
}

func (t *ExternalAPI) createEnquiry(ctx context.Context, a args) Result {
	if r := a.require("name", "email", "phone", "enquiry_type", "message"); r != nil {
		return *r
	}
	e, err := t.enquiries.Create(ctx, enquiryDto.CreateEnquiryRequest{
		Name:        a.str("name"),
		Email:       a.str("email"),
		Phone:       a.str("phone"),
		EnquiryType: a.str("enquiry_type"),
		Message:     a.str("message"),
		Source:      a.optStr("source"),
	})
	if err != nil {
		return errorResult(t.log, "create_client_enquiry", err)
	}
	return Result{
		"status":     "success",
		"message":    "Enquiry created successfully",
		"enquiry_id": e.ID.String(),
	}
}

func (t *ExternalAPI) sendEmail(ctx context.Context, a args) Result {
	if r := a.require("to_email"); r != nil {
		return *r
	}
	id, err := t.messenger.SendEmail(ctx, a.str("to_email"), a.str("subject"), a.str("content"))
	if err != nil {
		return failure(err.Error())
	}
	return Result{"status": "success", "message": "Email sent successfully", "email_id": id}
}

func (t *ExternalAPI) sendSMS(ctx context.Context, a args) Result {
	if r := a.require("to_phone", "message"); r != nil {
		return *r
	}
	id, err := t.messenger.SendSMS(ctx, a.str("to_phone"), a.str("message"))
	if err != nil {
		return failure(err.Error())
	}
	return Result{"status": "success", "message": "SMS sent successfully", "sms_id": id}
}

func (t *ExternalAPI) processPayment(ctx context.Context, a args) Result {
	if r := a.require("order_id", "amount", "payment_method"); r != nil {
		return *r
	}
	p, err := t.payments.Charge(ctx, paymentDto.ChargeRequest{
		OrderID:       a.str("order_id"),
		Amount:        a.num("amount"),
		PaymentMethod: a.str("payment_method"),
	})
	if err != nil {
		return errorResult(t.log, "process_payment", err)
	}

	msg := "Payment processed successfully"
	if p.Status != paymentModel.PaymentStatusCompleted {
		msg = "Payment initiated, awaiting gateway confirmation"
	}
	var txn string
	if p.TransactionID != nil {
		txn = *p.TransactionID
	}
	return Result{
		"status":         "success",
		"message":        msg,
		"transaction_id": txn,
		"amount":         p.Amount,
	}
}
