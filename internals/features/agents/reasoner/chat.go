package reasoner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"fitstudio_backend/internals/configs"
	"fitstudio_backend/internals/helpers/logger"
	"fitstudio_backend/internals/metrics"
)

type message map[string]any

// ChatReasoner drives an OpenAI-compatible chat-completions endpoint with
// function calling. Each turn either answers or asks for tool calls; tool
// results are fed back until an answer arrives or the turn budget is spent.
// The last turn is sent without tools so the model has to answer.
type ChatReasoner struct {
	endpoint      string
	apiKey        string
	model         string
	timeout       time.Duration
	maxIterations int
	limiter       *rate.Limiter
	log           *zap.Logger
}

func NewChatReasoner(cfg configs.AgentConfig, log *zap.Logger) *ChatReasoner {
	perSec := cfg.RatePerSecond
	if perSec <= 0 {
		perSec = 2
	}
	burst := int(perSec)
	if burst < 1 {
		burst = 1
	}
	return &ChatReasoner{
		endpoint:      strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		timeout:       cfg.Timeout,
		maxIterations: cfg.MaxIterations,
		limiter:       rate.NewLimiter(rate.Limit(perSec), burst),
		log:           log.Named("reasoner"),
	}
}

func (r *ChatReasoner) Reason(ctx context.Context, req Request) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	byName := make(map[string]Tool, len(req.Tools))
	toolDefs := make([]message, 0, len(req.Tools))
	for _, t := range req.Tools {
		spec := t.Spec()
		byName[spec.Name] = t
		toolDefs = append(toolDefs, message{
			"type": "function",
			"function": message{
				"name":        spec.Name,
				"description": spec.Description,
				"parameters":  spec.Parameters,
			},
		})
	}

	user := req.Task
	if req.ExpectedOutput != "" {
		user += "\n\nExpected output: " + req.ExpectedOutput
	}
	messages := []message{
		{"role": "system", "content": req.SystemPrompt},
		{"role": "user", "content": user},
	}

	for turn := 1; turn <= r.maxIterations; turn++ {
		payload := message{"model": r.model, "messages": messages}
		if len(toolDefs) > 0 && turn < r.maxIterations {
			payload["tools"] = toolDefs
		}

		reply, err := r.complete(ctx, payload)
		if err != nil {
			return "", err
		}
		choice := gjson.GetBytes(reply, "choices.0.message")
		if !choice.Exists() {
			return "", fmt.Errorf("reasoning provider returned no choices")
		}

		calls := choice.Get("tool_calls").Array()
		if len(calls) == 0 {
			return strings.TrimSpace(choice.Get("content").String()), nil
		}

		var assistant message
		if err := sonic.UnmarshalString(choice.Raw, &assistant); err != nil {
			return "", fmt.Errorf("decode assistant message: %w", err)
		}
		messages = append(messages, assistant)

		for _, call := range calls {
			name := call.Get("function.name").String()
			args := call.Get("function.arguments").String()
			result := r.invoke(ctx, byName, name, args)
			r.log.Debug("tool call",
				zap.String(logger.FieldAgent, req.Agent),
				zap.Int("turn", turn),
				zap.String("tool", name),
				zap.String("action", gjson.Get(args, "action").String()),
				zap.String("status", gjson.Get(result, "status").String()))
			messages = append(messages, message{
				"role":         "tool",
				"tool_call_id": call.Get("id").String(),
				"content":      result,
			})
		}
	}
	return "", fmt.Errorf("no answer after %d iterations", r.maxIterations)
}

func (r *ChatReasoner) invoke(ctx context.Context, tools map[string]Tool, name, args string) string {
	action := gjson.Get(args, "action").String()
	t, ok := tools[name]
	if !ok {
		metrics.RecordToolCall(name, action, "error")
		return fmt.Sprintf(`{"status":"error","message":%q}`, "Unknown tool: "+name)
	}
	result := t.Call(ctx, args)
	metrics.RecordToolCall(name, action, gjson.Get(result, "status").String())
	return result
}

// complete performs one throttled chat-completions round trip.
func (r *ChatReasoner) complete(ctx context.Context, payload message) ([]byte, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("reasoning provider throttled: %w", err)
	}
	body, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	a := fiber.Post(r.endpoint)
	a.Set(fiber.HeaderAuthorization, "Bearer "+r.apiKey)
	a.ContentType(fiber.MIMEApplicationJSON)
	a.Body(body)
	if deadline, ok := ctx.Deadline(); ok {
		a.Timeout(time.Until(deadline))
	}

	code, resp, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("reasoning provider request failed: %w", errs[0])
	}
	if code != fiber.StatusOK {
		msg := gjson.GetBytes(resp, "error.message").String()
		if msg == "" {
			msg = utils.StatusMessage(code)
		}
		return nil, fmt.Errorf("reasoning provider returned %d: %s", code, msg)
	}
	return resp, nil
}
