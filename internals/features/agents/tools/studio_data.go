package tools

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitstudio_backend/internals/features/agents/reasoner"
	analyticsDto "fitstudio_backend/internals/features/analytics/dto"
	orderModel "fitstudio_backend/internals/features/finance/orders/model"
	paymentModel "fitstudio_backend/internals/features/finance/payments/model"
	clientModel "fitstudio_backend/internals/features/studio/clients/model"
	helper "fitstudio_backend/internals/helpers"
)

const StudioDataName = "studio_data"

type ClientLookup interface {
	FindByEmail(ctx context.Context, email string) (*clientModel.ClientModel, error)
	FindByPhone(ctx context.Context, phone string) (*clientModel.ClientModel, error)
}

type OrderLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*orderModel.OrderModel, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]orderModel.OrderModel, error)
}

type PendingPayments interface {
	ListPending(ctx context.Context) ([]paymentModel.PaymentModel, error)
}

type Reports interface {
	RevenueMetrics(ctx context.Context, start, end *time.Time) (*analyticsDto.RevenueWindow, error)
	ClientAnalytics(ctx context.Context) (*analyticsDto.ClientReport, error)
	CourseAnalytics(ctx context.Context) (*analyticsDto.CourseReport, error)
	AttendanceStats(ctx context.Context, courseID *uuid.UUID) (*analyticsDto.AttendanceReport, error)
}

// StudioData is the read-only tool: client/order/payment lookups and the
// analytics reports.
type StudioData struct {
	clients  ClientLookup
	orders   OrderLookup
	payments PendingPayments
	reports  Reports
	log      *zap.Logger
}

func NewStudioData(clients ClientLookup, orders OrderLookup, payments PendingPayments, reports Reports, log *zap.Logger) *StudioData {
	return &StudioData{
		clients:  clients,
		orders:   orders,
		payments: payments,
		reports:  reports,
		log:      log.Named("tool.studio_data"),
	}
}

var studioDataActions = []string{
	"find_client_by_email",
	"find_client_by_phone",
	"get_order_by_id",
	"get_orders_by_client",
	"get_pending_payments",
	"get_revenue_metrics",
	"get_client_analytics",
	"get_course_performance",
	"get_attendance_stats",
}

func (t *StudioData) Spec() reasoner.ToolSpec {
	return reasoner.ToolSpec{
		Name: StudioDataName,
		Description: "Read studio records: find clients by email or phone, look up orders, " +
			"list pending payments, and compute revenue, client, course and attendance analytics.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"action":     map[string]any{"type": "string", "enum": studioDataActions},
				"email":      map[string]any{"type": "string"},
				"phone":      map[string]any{"type": "string"},
				"order_id":   map[string]any{"type": "string"},
				"client_id":  map[string]any{"type": "string"},
				"course_id":  map[string]any{"type": "string"},
				"start_date": map[string]any{"type": "string", "description": "RFC3339 or YYYY-MM-DD"},
				"end_date":   map[string]any{"type": "string", "description": "RFC3339 or YYYY-MM-DD"},
			},
			"required": []string{"action"},
		},
	}
}

func (t *StudioData) Call(ctx context.Context, raw string) string {
	a, err := parseArgs(raw)
	if err != nil {
		return failure(err.Error()).encode()
	}
	return t.execute(ctx, a).encode()
}

func (t *StudioData) execute(ctx context.Context, a args) Result {
	action := a.action()
	switch action {
	case "find_client_by_email":
		if r := a.require("email"); r != nil {
			return *r
		}
		return t.wrap(action, func() (any, error) { return t.clients.FindByEmail(ctx, a.str("email")) })

	case "find_client_by_phone":
		if r := a.require("phone"); r != nil {
			return *r
		}
		return t.wrap(action, func() (any, error) { return t.clients.FindByPhone(ctx, a.str("phone")) })

	case "get_order_by_id":
		id, err := helper.ParseID(a.str("order_id"), "order")
		if err != nil {
			return errorResult(t.log, action, err)
		}
		return t.wrap(action, func() (any, error) { return t.orders.Get(ctx, id) })

	case "get_orders_by_client":
		id, err := helper.ParseID(a.str("client_id"), "client")
		if err != nil {
			return errorResult(t.log, action, err)
		}
		return t.wrap(action, func() (any, error) { return t.orders.ListByClient(ctx, id) })

	case "get_pending_payments":
		return t.wrap(action, func() (any, error) { return t.payments.ListPending(ctx) })

	case "get_revenue_metrics":
		start, err := helper.ParseOptionalDate("start_date", a.optStr("start_date"))
		if err != nil {
			return errorResult(t.log, action, err)
		}
		end, err := helper.ParseOptionalDate("end_date", a.optStr("end_date"))
		if err != nil {
			return errorResult(t.log, action, err)
		}
		return t.wrap(action, func() (any, error) { return t.reports.RevenueMetrics(ctx, start, end) })

	case "get_client_analytics":
		return t.wrap(action, func() (any, error) { return t.reports.ClientAnalytics(ctx) })

	case "get_course_performance":
		return t.wrap(action, func() (any, error) { return t.reports.CourseAnalytics(ctx) })

	case "get_attendance_stats":
		var courseID *uuid.UUID
		if raw := a.str("course_id"); raw != "" {
			id, err := helper.ParseID(raw, "course")
			if err != nil {
				return errorResult(t.log, action, err)
			}
			courseID = &id
		}
		return t.wrap(action, func() (any, error) { return t.reports.AttendanceStats(ctx, courseID) })
	}
	return unsupported(action)
}

func (t *StudioData) wrap(action string, fn func() (any, error)) Result {
	data, err := fn()
	if err != nil {
		return errorResult(t.log, action, err)
	}
	return success(data)
}
