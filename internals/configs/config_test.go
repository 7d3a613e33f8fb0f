package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("AGENT_TIMEOUT", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Agent.MaxQueryLength)
	assert.Equal(t, 3, cfg.Agent.MaxIterations)
	assert.Equal(t, 30*time.Second, cfg.Agent.Timeout)
	assert.False(t, cfg.Agent.Configured())
	assert.False(t, cfg.Auth.Required)
	assert.Equal(t, "staff@fitness.com", cfg.Notify.StaffEmail)
}

func TestPlaceholderKeyIsNotConfigured(t *testing.T) {
	a := AgentConfig{APIKey: placeholderAPIKey}
	assert.False(t, a.Configured())
	a.APIKey = "sk-test"
	assert.True(t, a.Configured())
}

func TestAuthRequiredNeedsSecret(t *testing.T) {
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p@ss", Name: "studio", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/studio?application_name=fitstudio&sslmode=disable", d.DSN())

	d.URL = "postgres://override"
	assert.Equal(t, "postgres://override", d.DSN())
}
