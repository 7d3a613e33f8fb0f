package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "fitstudio_backend/internals/helpers"
)

func TestMiddlewareCountsByRouteTemplate(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/api/clients/:id", func(c *fiber.Ctx) error {
		return helper.NotFound("Client not found")
	})
	app.Get("/metrics", Handler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/clients/:id", "404"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/clients/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/clients/:id", "404"))
	assert.Equal(t, before+1, after)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "fitstudio_http_requests_total"))
}

func TestRecordAgentAndToolCalls(t *testing.T) {
	before := testutil.ToFloat64(agentQueries.WithLabelValues("support", "success"))
	RecordAgentQuery("support", "success", 0)
	assert.Equal(t, before+1, testutil.ToFloat64(agentQueries.WithLabelValues("support", "success")))

	RecordToolCall("studio_data", "", "error")
	assert.Equal(t, float64(1), testutil.ToFloat64(toolCalls.WithLabelValues("studio_data", "unknown", "error")))

	RecordNotification("email")
	assert.GreaterOrEqual(t, testutil.ToFloat64(notifications.WithLabelValues("email")), float64(1))
}
