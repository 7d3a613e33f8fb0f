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

	orderModel "fitstudio_backend/internals/features/finance/orders/model"
	paymentModel "fitstudio_backend/internals/features/finance/payments/model"
	"fitstudio_backend/internals/features/studio/clients/dto"
	"fitstudio_backend/internals/features/studio/clients/model"
	"fitstudio_backend/internals/features/studio/clients/service"
	helper "fitstudio_backend/internals/helpers"
)

type emailStore struct {
	byEmail map[string]*model.ClientModel
}

func (s *emailStore) List(context.Context, dto.ListClientsQuery, int, int) ([]model.ClientModel, int64, error) {
	out := []model.ClientModel{}
	for _, c := range s.byEmail {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (s *emailStore) GetByID(_ context.Context, id uuid.UUID) (*model.ClientModel, error) {
	for _, c := range s.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *emailStore) GetByEmail(_ context.Context, email string) (*model.ClientModel, error) {
	if c, ok := s.byEmail[email]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *emailStore) GetByPhone(context.Context, string) (*model.ClientModel, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *emailStore) Create(_ context.Context, c *model.ClientModel) error {
	c.ID = uuid.New()
	s.byEmail[c.Email] = c
	return nil
}

func (s *emailStore) Update(context.Context, uuid.UUID, map[string]any) (*model.ClientModel, error) {
	return nil, gorm.ErrRecordNotFound
}

type emptyHistory struct{}

func (emptyHistory) ListByClient(context.Context, uuid.UUID) ([]orderModel.OrderModel, error) {
	return nil, nil
}

type emptyPayments struct{}

func (emptyPayments) ListByClient(context.Context, uuid.UUID) ([]paymentModel.PaymentModel, error) {
	return nil, nil
}

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.NewErrorHandler(zap.NewNop())})
	svc := service.New(&emailStore{byEmail: map[string]*model.ClientModel{}}, emptyHistory{}, emptyPayments{}, zap.NewNop())
	h := NewClientController(svc)
	app.Get("/api/clients", h.List)
	app.Post("/api/clients", h.Create)
	app.Get("/api/clients/:id", h.Get)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestCreateClientThenDuplicate(t *testing.T) {
	app := newApp()
	body := `{"name":"A B","email":"a@b.com","phone":"+911234567890"}`

	code, out := do(t, app, "POST", "/api/clients", body)
	require.Equal(t, fiber.StatusOK, code, out)
	assert.Equal(t, "Client created successfully", gjson.Get(out, "message").String())
	_, err := uuid.Parse(gjson.Get(out, "client_id").String())
	assert.NoError(t, err)

	code, out = do(t, app, "POST", "/api/clients", body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Email already exists", gjson.Get(out, "message").String())
	assert.False(t, gjson.Get(out, "success").Bool())
}

func TestCreateClientValidationErrors(t *testing.T) {
	app := newApp()

	code, out := do(t, app, "POST", "/api/clients", `{"name":"A","email":"a@b.com","phone":"+911234567890"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", gjson.Get(out, "error_code").String())
	assert.True(t, gjson.Get(out, "errors.name").Exists())

	code, out = do(t, app, "POST", "/api/clients", `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Invalid request body", gjson.Get(out, "message").String())
}

func TestGetClientIDErrors(t *testing.T) {
	app := newApp()

	code, out := do(t, app, "GET", "/api/clients/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Invalid client ID", gjson.Get(out, "message").String())

	code, out = do(t, app, "GET", "/api/clients/"+uuid.NewString(), "")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Client not found", gjson.Get(out, "message").String())
}

func TestListClientsWindow(t *testing.T) {
	app := newApp()
	_, _ = do(t, app, "POST", "/api/clients", `{"name":"A B","email":"a@b.com","phone":"+911234567890"}`)

	code, out := do(t, app, "GET", "/api/clients?limit=5000&skip=-3", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.EqualValues(t, 1, gjson.Get(out, "total").Int())
	assert.EqualValues(t, 0, gjson.Get(out, "skip").Int())
	assert.EqualValues(t, 1000, gjson.Get(out, "limit").Int())
	assert.Len(t, gjson.Get(out, "clients").Array(), 1)
}
