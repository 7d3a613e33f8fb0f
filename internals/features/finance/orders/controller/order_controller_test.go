package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/finance/orders/dto"
	"fitstudio_backend/internals/features/finance/orders/model"
	"fitstudio_backend/internals/features/finance/orders/service"
	clientModel "fitstudio_backend/internals/features/studio/clients/model"
	courseModel "fitstudio_backend/internals/features/studio/courses/model"
	helper "fitstudio_backend/internals/helpers"
)

type oneOrderStore struct {
	created *model.OrderModel
}

func (s *oneOrderStore) NextOrderNumber(context.Context) (string, error) {
	return model.FormatOrderNumber(1), nil
}

func (s *oneOrderStore) Create(_ context.Context, o *model.OrderModel) error {
	o.ID = uuid.New()
	s.created = o
	return nil
}

func (s *oneOrderStore) GetByID(context.Context, uuid.UUID) (*model.OrderModel, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *oneOrderStore) List(context.Context, dto.ListOrdersQuery, int, int) ([]model.OrderModel, int64, error) {
	return []model.OrderModel{}, 0, nil
}

func (s *oneOrderStore) ListByClient(context.Context, uuid.UUID) ([]model.OrderModel, error) {
	return nil, nil
}

func (s *oneOrderStore) Update(context.Context, uuid.UUID, map[string]any) (*model.OrderModel, error) {
	return nil, gorm.ErrRecordNotFound
}

type clientsByID map[uuid.UUID]bool

func (k clientsByID) GetByID(_ context.Context, id uuid.UUID) (*clientModel.ClientModel, error) {
	if k[id] {
		return &clientModel.ClientModel{ID: id}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type coursesByID map[uuid.UUID]bool

func (k coursesByID) GetByID(_ context.Context, id uuid.UUID) (*courseModel.CourseModel, error) {
	if k[id] {
		return &courseModel.CourseModel{ID: id}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newApp(store *oneOrderStore, clientID, courseID uuid.UUID) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.NewErrorHandler(zap.NewNop())})
	svc := service.New(store, clientsByID{clientID: true}, coursesByID{courseID: true}, zap.NewNop())
	h := NewOrderController(svc)
	app.Get("/api/orders", h.List)
	app.Post("/api/orders", h.Create)
	app.Get("/api/orders/:id", h.Get)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func orderBody(clientID, courseID string) string {
	return `{"client_id":"` + clientID + `","course_id":"` + courseID +
		`","service_name":"Yoga Beginner","amount":1500,"discount_applied":100,"metadata":{"source":"website","campaign":{"name":"summer"}}}`
}

func TestCreateOrderMissingCourse(t *testing.T) {
	clientID := uuid.New()
	app := newApp(&oneOrderStore{}, clientID, uuid.New())

	code, out := post(t, app, "/api/orders", orderBody(clientID.String(), uuid.NewString()))
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Course not found", gjson.Get(out, "message").String())
	assert.Equal(t, "NOT_FOUND", gjson.Get(out, "error_code").String())
}

func TestCreateOrder(t *testing.T) {
	store := &oneOrderStore{}
	clientID, courseID := uuid.New(), uuid.New()
	app := newApp(store, clientID, courseID)

	code, out := post(t, app, "/api/orders", orderBody(clientID.String(), courseID.String()))
	require.Equal(t, fiber.StatusOK, code, out)
	assert.Equal(t, "Order created successfully", gjson.Get(out, "message").String())
	assert.Equal(t, "ORD-000001", gjson.Get(out, "order_number").String())
	assert.Equal(t, store.created.ID.String(), gjson.Get(out, "order_id").String())

	assert.Equal(t, 1400.0, store.created.FinalAmount)
	assert.Equal(t, helper.Attributes{"source": "website", "campaign": `{"name":"summer"}`}, store.created.Metadata)
}

func TestCreateOrderMalformedIDs(t *testing.T) {
	app := newApp(&oneOrderStore{}, uuid.New(), uuid.New())

	code, out := post(t, app, "/api/orders", orderBody("123", uuid.NewString()))
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Invalid client ID", gjson.Get(out, "message").String())
}

func TestGetOrderNotFound(t *testing.T) {
	app := newApp(&oneOrderStore{}, uuid.New(), uuid.New())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/orders/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/orders/xyz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
