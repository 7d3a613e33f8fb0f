package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"fitstudio_backend/internals/features/agents/reasoner"
	helper "fitstudio_backend/internals/helpers"
	"fitstudio_backend/internals/helpers/logger"
	"fitstudio_backend/internals/metrics"
)

const (
	AgentSupport   = "support"
	AgentDashboard = "dashboard"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the reply envelope of an agent query. Delegation failures are
// reported here with Status "error", never as a Go error.
type Result struct {
	Status   string `json:"status"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
	Agent    string `json:"agent"`
	Query    string `json:"query"`
}

type AgentStatus struct {
	Status       string       `json:"status"`
	Capabilities Capabilities `json:"capabilities"`
}

type agent struct {
	persona      persona
	capabilities Capabilities
	tools        []reasoner.Tool
}

// Service dispatches queries to the support and dashboard agents. It holds
// no per-query state.
type Service struct {
	reasoner reasoner.Reasoner
	agents   map[string]agent
	log      *zap.Logger
}

// New binds the support agent to both tools and the dashboard agent to the
// read-only studio data tool.
func New(r reasoner.Reasoner, studioData, externalAPI reasoner.Tool, log *zap.Logger) *Service {
	return &Service{
		reasoner: r,
		agents: map[string]agent{
			AgentSupport: {
				persona:      supportPersona,
				capabilities: supportCapabilities,
				tools:        []reasoner.Tool{studioData, externalAPI},
			},
			AgentDashboard: {
				persona:      dashboardPersona,
				capabilities: dashboardCapabilities,
				tools:        []reasoner.Tool{studioData},
			},
		},
		log: log.Named("agents"),
	}
}

// Dispatch hands the query to the named agent's reasoner. The returned
// error is non-nil only for an unknown agent.
func (s *Service) Dispatch(ctx context.Context, name, query string, attrs helper.Attributes) (Result, error) {
	a, ok := s.agents[name]
	if !ok {
		return Result{}, helper.NotFound("Unknown agent: " + name)
	}

	start := time.Now()
	answer, err := s.reasoner.Reason(ctx, reasoner.Request{
		Agent:          name,
		SystemPrompt:   systemPrompt(a.persona),
		Task:           fmt.Sprintf(a.persona.TaskTemplate, query, RenderContext(attrs)),
		ExpectedOutput: a.persona.ExpectedOutput,
		Tools:          a.tools,
	})
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordAgentQuery(name, StatusError, elapsed)
		s.log.Warn("agent query failed",
			zap.String(logger.FieldAgent, name),
			zap.Duration("duration", elapsed),
			zap.Error(err))
		return Result{Status: StatusError, Error: err.Error(), Agent: name, Query: query}, nil
	}

	metrics.RecordAgentQuery(name, StatusSuccess, elapsed)
	s.log.Info("agent query answered",
		zap.String(logger.FieldAgent, name),
		zap.Duration("duration", elapsed))
	return Result{Status: StatusSuccess, Response: answer, Agent: name, Query: query}, nil
}

// Status reports every agent as active along with its capabilities.
func (s *Service) Status() map[string]AgentStatus {
	out := make(map[string]AgentStatus, len(s.agents))
	for name, a := range s.agents {
		out[name+"_agent"] = AgentStatus{Status: "active", Capabilities: a.capabilities}
	}
	return out
}

// RenderContext renders attributes as sorted "key: value" lines, "{}" when empty.
func RenderContext(attrs helper.Attributes) string {
	if len(attrs) == 0 {
		return "{}"
	}
	lines := make([]string, 0, len(attrs))
	for _, k := range attrs.Keys() {
		lines = append(lines, k+": "+attrs[k])
	}
	return strings.Join(lines, "\n")
}

func systemPrompt(p persona) string {
	return "You are a " + p.Role + ".\n\nGoal: " + p.Goal + "\n\n" + p.Backstory
}
