package reasoner

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"fitstudio_backend/internals/configs"
)

var ErrNotConfigured = errors.New("reasoning provider not configured")

// ToolSpec describes a callable tool in function-calling terms.
// Parameters is a JSON Schema object.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Tool is a capability the reasoner may invoke. Call receives the raw JSON
// arguments chosen by the model and returns a JSON result object; failures
// are reported inside the result, never as a Go error.
type Tool interface {
	Spec() ToolSpec
	Call(ctx context.Context, args string) string
}

// Request is one unit of delegated reasoning.
type Request struct {
	Agent          string
	SystemPrompt   string
	Task           string
	ExpectedOutput string
	Tools          []Tool
}

type Reasoner interface {
	Reason(ctx context.Context, req Request) (string, error)
}

// New returns a ChatReasoner when an API key is configured, otherwise a
// reasoner that always fails with ErrNotConfigured.
func New(cfg configs.AgentConfig, log *zap.Logger) Reasoner {
	if !cfg.Configured() {
		log.Warn("OPENAI_API_KEY not set; agent queries will report an error")
		return unconfiguredReasoner{}
	}
	return NewChatReasoner(cfg, log)
}

type unconfiguredReasoner struct{}

func (unconfiguredReasoner) Reason(context.Context, Request) (string, error) {
	return "", ErrNotConfigured
}
