package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"fitstudio_backend/internals/features/users/auth/model"
	authService "fitstudio_backend/internals/features/users/auth/service"
	helper "fitstudio_backend/internals/helpers"
)

func newApp(tokens *authService.TokenService, required bool) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.NewErrorHandler(zap.NewNop())})
	api := app.Group("/api", Skip(Authenticate(tokens, required, zap.NewNop()), "/api/auth"))
	api.Get("/clients", func(c *fiber.Ctx) error {
		if claims := ClaimsFrom(c); claims != nil {
			return c.SendString(claims.Email)
		}
		return c.SendString("anonymous")
	})
	api.Get("/auth/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	api.Get("/admin", OnlyRoles(model.RoleAdmin), func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func call(t *testing.T, app *fiber.App, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func issue(t *testing.T, tokens *authService.TokenService, role model.StaffRole) string {
	t.Helper()
	tok, err := tokens.Issue(&model.StaffUserModel{ID: uuid.New(), Name: "Asha", Email: "asha@fitness.com", Role: role})
	require.NoError(t, err)
	return tok
}

func TestRequiredRejectsMissingToken(t *testing.T) {
	app := newApp(authService.NewTokenService("secret", time.Minute), true)

	code, body := call(t, app, "/api/clients", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Contains(t, gjson.Get(body, "message").String(), "no token provided")
}

func TestRequiredAcceptsValidToken(t *testing.T) {
	tokens := authService.NewTokenService("secret", time.Minute)
	app := newApp(tokens, true)

	code, body := call(t, app, "/api/clients", "Bearer "+issue(t, tokens, model.RoleStaff))
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "asha@fitness.com", body)

	code, _ = call(t, app, "/api/clients", "bearer  "+issue(t, tokens, model.RoleStaff))
	assert.Equal(t, fiber.StatusOK, code)
}

func TestAuthPathsSkipped(t *testing.T) {
	app := newApp(authService.NewTokenService("secret", time.Minute), true)
	code, body := call(t, app, "/api/auth/ping", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "pong", body)
}

func TestRejectsForeignSignatureAndExpiry(t *testing.T) {
	tokens := authService.NewTokenService("secret", time.Minute)
	app := newApp(tokens, true)

	other := authService.NewTokenService("other-secret", time.Minute)
	code, _ := call(t, app, "/api/clients", "Bearer "+issue(t, other, model.RoleStaff))
	assert.Equal(t, fiber.StatusUnauthorized, code)

	expired := authService.NewTokenService("secret", time.Nanosecond)
	tok := issue(t, expired, model.RoleStaff)
	time.Sleep(1100 * time.Millisecond)
	code, _ = call(t, app, "/api/clients", "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = call(t, app, "/api/clients", "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestOptionalPassesAnonymousButChecksPresentToken(t *testing.T) {
	app := newApp(authService.NewTokenService("secret", time.Minute), false)

	code, body := call(t, app, "/api/clients", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "anonymous", body)

	code, _ = call(t, app, "/api/clients", "Bearer garbage")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestOnlyRoles(t *testing.T) {
	tokens := authService.NewTokenService("secret", time.Minute)
	app := newApp(tokens, true)

	code, _ := call(t, app, "/api/admin", "Bearer "+issue(t, tokens, model.RoleStaff))
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = call(t, app, "/api/admin", "Bearer "+issue(t, tokens, model.RoleAdmin))
	assert.Equal(t, fiber.StatusOK, code)
}
