package tools

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	analyticsDto "fitstudio_backend/internals/features/analytics/dto"
	orderDto "fitstudio_backend/internals/features/finance/orders/dto"
	orderModel "fitstudio_backend/internals/features/finance/orders/model"
	paymentDto "fitstudio_backend/internals/features/finance/payments/dto"
	paymentModel "fitstudio_backend/internals/features/finance/payments/model"
	notifier "fitstudio_backend/internals/features/notifications/service"
	clientModel "fitstudio_backend/internals/features/studio/clients/model"
	courseModel "fitstudio_backend/internals/features/studio/courses/model"
	enquiryDto "fitstudio_backend/internals/features/studio/enquiries/dto"
	enquiryModel "fitstudio_backend/internals/features/studio/enquiries/model"
	helper "fitstudio_backend/internals/helpers"
)

/* ---------- fakes ---------- */

type fakeClients struct {
	byEmail map[string]*clientModel.ClientModel
	created []string
}

func (f *fakeClients) FindByEmail(_ context.Context, email string) (*clientModel.ClientModel, error) {
	if c, ok := f.byEmail[email]; ok {
		return c, nil
	}
	return nil, helper.NotFound("Client not found")
}

func (f *fakeClients) FindByPhone(context.Context, string) (*clientModel.ClientModel, error) {
	return nil, helper.NotFound("Client not found")
}

func (f *fakeClients) FindOrCreate(ctx context.Context, name, email, phone string) (*clientModel.ClientModel, bool, error) {
	if c, err := f.FindByEmail(ctx, email); err == nil {
		return c, false, nil
	}
	if phone == "" {
		return nil, false, helper.FieldError("phone", "is required")
	}
	c := &clientModel.ClientModel{ID: uuid.New(), Name: name, Email: email, Phone: phone}
	if f.byEmail == nil {
		f.byEmail = map[string]*clientModel.ClientModel{}
	}
	f.byEmail[email] = c
	f.created = append(f.created, email)
	return c, true, nil
}

type fakeCourses struct {
	courses []*courseModel.CourseModel
}

func (f *fakeCourses) FindByName(_ context.Context, name string) (*courseModel.CourseModel, error) {
	for _, c := range f.courses {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			return c, nil
		}
	}
	return nil, helper.NotFound("Course '" + name + "' not found")
}

type fakeOrders struct {
	last  orderDto.CreateOrderRequest
	order *orderModel.OrderModel
}

func (f *fakeOrders) Create(_ context.Context, req orderDto.CreateOrderRequest) (*orderModel.OrderModel, error) {
	f.last = req
	final := req.Amount - req.Discount()
	if final <= 0 {
		return nil, helper.FieldError("discount_applied", "must be less than amount")
	}
	f.order = &orderModel.OrderModel{
		ID:          uuid.New(),
		OrderNumber: "ORD-000042",
		ServiceName: req.ServiceName,
		Amount:      req.Amount,
		FinalAmount: final,
	}
	return f.order, nil
}

func (f *fakeOrders) Get(_ context.Context, id uuid.UUID) (*orderModel.OrderModel, error) {
	if f.order != nil && f.order.ID == id {
		return f.order, nil
	}
	return nil, helper.NotFound("Order not found")
}

func (f *fakeOrders) ListByClient(context.Context, uuid.UUID) ([]orderModel.OrderModel, error) {
	return []orderModel.OrderModel{}, nil
}

type fakeEnquiries struct{ last enquiryDto.CreateEnquiryRequest }

func (f *fakeEnquiries) Create(_ context.Context, req enquiryDto.CreateEnquiryRequest) (*enquiryModel.EnquiryModel, error) {
	f.last = req
	return &enquiryModel.EnquiryModel{ID: uuid.New(), Name: req.Name, Status: enquiryModel.EnquiryStatusNew}, nil
}

type fakePayments struct {
	settle bool
	err    error
}

func (f *fakePayments) Charge(_ context.Context, req paymentDto.ChargeRequest) (*paymentModel.PaymentModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	status := paymentModel.PaymentStatusPending
	if f.settle {
		status = paymentModel.PaymentStatusCompleted
	}
	txn := "txn_123"
	return &paymentModel.PaymentModel{ID: uuid.New(), Amount: req.Amount, Status: status, TransactionID: &txn}, nil
}

func (f *fakePayments) ListPending(context.Context) ([]paymentModel.PaymentModel, error) {
	return []paymentModel.PaymentModel{{Amount: 500, Status: paymentModel.PaymentStatusPending}}, nil
}

type fakeReports struct {
	start, end *time.Time
}

func (f *fakeReports) RevenueMetrics(_ context.Context, start, end *time.Time) (*analyticsDto.RevenueWindow, error) {
	f.start, f.end = start, end
	return &analyticsDto.RevenueWindow{RevenueSummary: analyticsDto.RevenueSummary{TotalRevenue: 250, TotalTransactions: 2}}, nil
}

func (f *fakeReports) ClientAnalytics(context.Context) (*analyticsDto.ClientReport, error) {
	return &analyticsDto.ClientReport{TotalClients: 3}, nil
}

func (f *fakeReports) CourseAnalytics(context.Context) (*analyticsDto.CourseReport, error) {
	return nil, errors.New("db down")
}

func (f *fakeReports) AttendanceStats(_ context.Context, courseID *uuid.UUID) (*analyticsDto.AttendanceReport, error) {
	return &analyticsDto.AttendanceReport{CourseID: courseID}, nil
}

type recordingMessenger struct {
	emails []string
}

func (m *recordingMessenger) SendEmail(_ context.Context, to, subject, _ string) (string, error) {
	m.emails = append(m.emails, to+"|"+subject)
	return "mock_email_1", nil
}

func (m *recordingMessenger) SendSMS(context.Context, string, string) (string, error) {
	return "mock_sms_1", nil
}

/* ---------- studio_data ---------- */

func newStudioData() (*StudioData, *fakeClients, *fakeReports) {
	clients := &fakeClients{byEmail: map[string]*clientModel.ClientModel{
		"priya@example.com": {ID: uuid.New(), Name: "Priya Sharma", Email: "priya@example.com"},
	}}
	reports := &fakeReports{}
	return NewStudioData(clients, &fakeOrders{}, &fakePayments{}, reports, zap.NewNop()), clients, reports
}

func TestStudioDataFindClientByEmail(t *testing.T) {
	tool, _, _ := newStudioData()

	out := tool.Call(context.Background(), `{"action":"find_client_by_email","email":"priya@example.com"}`)
	assert.Equal(t, "success", gjson.Get(out, "status").String())
	assert.Equal(t, "Priya Sharma", gjson.Get(out, "data.name").String())

	out = tool.Call(context.Background(), `{"action":"find_client_by_email","email":"nobody@example.com"}`)
	assert.Equal(t, "error", gjson.Get(out, "status").String())
	assert.Equal(t, "Client not found", gjson.Get(out, "message").String())
}

func TestStudioDataRequiresArguments(t *testing.T) {
	tool, _, _ := newStudioData()

	out := tool.Call(context.Background(), `{"action":"find_client_by_phone"}`)
	assert.Equal(t, "phone is required", gjson.Get(out, "message").String())

	out = tool.Call(context.Background(), `{"action":"get_order_by_id","order_id":"42"}`)
	assert.Equal(t, "Invalid order ID", gjson.Get(out, "message").String())
}

func TestStudioDataRevenueMetricsDates(t *testing.T) {
	tool, _, reports := newStudioData()

	out := tool.Call(context.Background(), `{"action":"get_revenue_metrics","start_date":"2024-03-01"}`)
	assert.Equal(t, "success", gjson.Get(out, "status").String())
	assert.Equal(t, 250.0, gjson.Get(out, "data.total_revenue").Float())
	require.NotNil(t, reports.start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), reports.start.UTC())
	assert.Nil(t, reports.end)

	out = tool.Call(context.Background(), `{"action":"get_revenue_metrics","end_date":"yesterday"}`)
	assert.Equal(t, "error", gjson.Get(out, "status").String())
	assert.Contains(t, gjson.Get(out, "message").String(), "end_date")
}

func TestStudioDataInternalErrorIsGeneric(t *testing.T) {
	tool, _, _ := newStudioData()

	out := tool.Call(context.Background(), `{"action":"get_course_performance"}`)
	assert.Equal(t, "error", gjson.Get(out, "status").String())
	assert.Equal(t, "Internal error while running get_course_performance", gjson.Get(out, "message").String())
}

func TestStudioDataUnsupportedAction(t *testing.T) {
	tool, _, _ := newStudioData()

	out := tool.Call(context.Background(), `{"action":"drop_tables"}`)
	assert.JSONEq(t, `{"status":"error","message":"Unsupported action: drop_tables"}`, out)

	out = tool.Call(context.Background(), `[1,2]`)
	assert.Equal(t, "arguments must be a JSON object", gjson.Get(out, "message").String())
}

/* ---------- external_api ---------- */

type externalFixture struct {
	tool      *ExternalAPI
	clients   *fakeClients
	orders    *fakeOrders
	enquiries *fakeEnquiries
	payments  *fakePayments
	messenger *recordingMessenger
}

func newExternalAPI() externalFixture {
	f := externalFixture{
		clients:   &fakeClients{},
		orders:    &fakeOrders{},
		enquiries: &fakeEnquiries{},
		payments:  &fakePayments{settle: true},
		messenger: &recordingMessenger{},
	}
	courses := &fakeCourses{courses: []*courseModel.CourseModel{{ID: uuid.New(), Name: "Yoga Beginner"}}}
	f.tool = NewExternalAPI(ExternalAPIDeps{
		Clients:   f.clients,
		Courses:   courses,
		Orders:    f.orders,
		Enquiries: f.enquiries,
		Payments:  f.payments,
		Messenger: f.messenger,
	}, zap.NewNop())
	return f
}

func TestCreateOrderCreatesClientAndConfirms(t *testing.T) {
	f := newExternalAPI()

	out := f.tool.Call(context.Background(), `{
		"action":"create_order","client_name":"Priya Sharma","client_email":"priya@example.com",
		"phone":"+919876543210","service_name":"yoga","amount":1000,"discount":100,
		"metadata":{"channel":"agent","sessions":8}}`)

	require.Equal(t, "success", gjson.Get(out, "status").String(), out)
	assert.Equal(t, "Order created successfully", gjson.Get(out, "message").String())
	assert.Equal(t, "ORD-000042", gjson.Get(out, "order_number").String())
	assert.Equal(t, 900.0, gjson.Get(out, "amount").Float())
	assert.Equal(t, []string{"priya@example.com"}, f.clients.created)

	assert.Equal(t, "yoga", f.orders.last.ServiceName)
	assert.Equal(t, helper.Attributes{"channel": "agent", "sessions": "8"}, f.orders.last.Metadata)
	assert.Equal(t, []string{"priya@example.com|Order Confirmation - ORD-000042"}, f.messenger.emails)
}

func TestCreateOrderUnknownCourse(t *testing.T) {
	f := newExternalAPI()

	out := f.tool.Call(context.Background(), `{
		"action":"create_order","client_name":"Priya Sharma","client_email":"priya@example.com",
		"phone":"+919876543210","service_name":"Zumba","amount":500}`)
	assert.Equal(t, "error", gjson.Get(out, "status").String())
	assert.Equal(t, "Course 'Zumba' not found", gjson.Get(out, "message").String())
	assert.Empty(t, f.messenger.emails)
}

func TestCreateOrderDiscountTooLarge(t *testing.T) {
	f := newExternalAPI()

	out := f.tool.Call(context.Background(), `{
		"action":"create_order","client_name":"Priya Sharma","client_email":"priya@example.com",
		"phone":"+919876543210","service_name":"Yoga","amount":500,"discount":500}`)
	assert.Equal(t, "error", gjson.Get(out, "status").String())
	assert.Contains(t, gjson.Get(out, "message").String(), "discount_applied must be less than amount")
}

func TestCreateClientEnquiry(t *testing.T) {
	f := newExternalAPI()

	out := f.tool.Call(context.Background(), `{
		"action":"create_client_enquiry","name":"Rahul","email":"rahul@example.com",
		"phone":"+919812345678","enquiry_type":"pilates","message":"Evening batches?"}`)
	assert.Equal(t, "success", gjson.Get(out, "status").String())
	assert.NotEmpty(t, gjson.Get(out, "enquiry_id").String())
	assert.Nil(t, f.enquiries.last.Source)
}

func TestSendEmailAndSMSUseMockIDs(t *testing.T) {
	f := newExternalAPI()
	f.tool.messenger = notifier.New("staff@fitness.com", zap.NewNop())

	out := f.tool.Call(context.Background(), `{"action":"send_email","to_email":"a@b.com","subject":"Hi","content":"Hello"}`)
	assert.Equal(t, "Email sent successfully", gjson.Get(out, "message").String())
	assert.True(t, strings.HasPrefix(gjson.Get(out, "email_id").String(), "mock_email_"))

	out = f.tool.Call(context.Background(), `{"action":"send_sms","to_phone":"+919812345678","message":"Class at 7"}`)
	assert.Equal(t, "SMS sent successfully", gjson.Get(out, "message").String())
	assert.True(t, strings.HasPrefix(gjson.Get(out, "sms_id").String(), "mock_sms_"))
}

func TestProcessPayment(t *testing.T) {
	f := newExternalAPI()
	orderID := uuid.NewString()

	out := f.tool.Call(context.Background(), `{"action":"process_payment","order_id":"`+orderID+`","amount":900,"payment_method":"upi"}`)
	assert.Equal(t, "Payment processed successfully", gjson.Get(out, "message").String())
	assert.Equal(t, "txn_123", gjson.Get(out, "transaction_id").String())
	assert.Equal(t, 900.0, gjson.Get(out, "amount").Float())

	f.payments.settle = false
	out = f.tool.Call(context.Background(), `{"action":"process_payment","order_id":"`+orderID+`","amount":900,"payment_method":"online"}`)
	assert.Equal(t, "success", gjson.Get(out, "status").String())
	assert.Contains(t, gjson.Get(out, "message").String(), "awaiting")

	f.payments.err = helper.NotFound("Order not found")
	out = f.tool.Call(context.Background(), `{"action":"process_payment","order_id":"`+orderID+`","amount":900,"payment_method":"upi"}`)
	assert.Equal(t, "Order not found", gjson.Get(out, "message").String())
}

func TestExternalAPIUnsupportedAction(t *testing.T) {
	f := newExternalAPI()
	out := f.tool.Call(context.Background(), `{"action":"refund"}`)
	assert.JSONEq(t, `{"status":"error","message":"Unsupported action: refund"}`, out)
}
