package reasoner

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"fitstudio_backend/internals/configs"
)

type echoTool struct {
	mu   sync.Mutex
	args []string
}

func (e *echoTool) Spec() ToolSpec {
	return ToolSpec{
		Name:        "studio_data",
		Description: "echo",
		Parameters:  map[string]any{"type": "object"},
	}
}

func (e *echoTool) Call(_ context.Context, args string) string {
	e.mu.Lock()
	e.args = append(e.args, args)
	e.mu.Unlock()
	return `{"status":"success","data":{"total_revenue":250}}`
}

// fakeLLM answers each chat-completions request with the next scripted body.
func fakeLLM(t *testing.T, replies ...string) (*httptest.Server, *[]string) {
	t.Helper()
	var (
		mu       sync.Mutex
		requests []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)

		mu.Lock()
		idx := len(requests)
		requests = append(requests, string(body))
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if idx >= len(replies) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"unexpected call"}}`))
			return
		}
		_, _ = w.Write([]byte(replies[idx]))
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func testConfig(baseURL string) configs.AgentConfig {
	return configs.AgentConfig{
		APIKey:        "sk-test",
		BaseURL:       baseURL + "/v1",
		Model:         "test-model",
		Timeout:       5 * time.Second,
		MaxIterations: 3,
		RatePerSecond: 100,
	}
}

const toolCallReply = `{"choices":[{"message":{"role":"assistant","content":null,"tool_calls":[
	{"id":"call_1","type":"function","function":{"name":"studio_data","arguments":"{\"action\":\"get_revenue_metrics\"}"}}]}}]}`

const answerReply = `{"choices":[{"message":{"role":"assistant","content":" Revenue this month is 250. "}}]}`

func TestChatReasonerRunsToolThenAnswers(t *testing.T) {
	srv, requests := fakeLLM(t, toolCallReply, answerReply)
	tool := &echoTool{}

	out, err := NewChatReasoner(testConfig(srv.URL), zap.NewNop()).Reason(context.Background(), Request{
		Agent:          "dashboard",
		SystemPrompt:   "You are an analyst.",
		Task:           "How much revenue?",
		ExpectedOutput: "A report.",
		Tools:          []Tool{tool},
	})
	require.NoError(t, err)
	assert.Equal(t, "Revenue this month is 250.", out)

	require.Len(t, tool.args, 1)
	assert.Equal(t, "get_revenue_metrics", gjson.Get(tool.args[0], "action").String())

	require.Len(t, *requests, 2)
	first := (*requests)[0]
	assert.Equal(t, "test-model", gjson.Get(first, "model").String())
	assert.Equal(t, "studio_data", gjson.Get(first, "tools.0.function.name").String())
	assert.Contains(t, gjson.Get(first, "messages.1.content").String(), "Expected output: A report.")

	second := (*requests)[1]
	assert.Equal(t, "tool", gjson.Get(second, "messages.3.role").String())
	assert.Equal(t, "call_1", gjson.Get(second, "messages.3.tool_call_id").String())
	assert.Contains(t, gjson.Get(second, "messages.3.content").String(), `"total_revenue":250`)
}

func TestChatReasonerLastTurnHasNoTools(t *testing.T) {
	srv, requests := fakeLLM(t, toolCallReply, toolCallReply, answerReply)
	cfg := testConfig(srv.URL)

	_, err := NewChatReasoner(cfg, zap.NewNop()).Reason(context.Background(), Request{
		Task:  "q",
		Tools: []Tool{&echoTool{}},
	})
	require.NoError(t, err)
	require.Len(t, *requests, 3)
	assert.True(t, gjson.Get((*requests)[1], "tools").Exists())
	assert.False(t, gjson.Get((*requests)[2], "tools").Exists())
}

func TestChatReasonerGivesUpAfterMaxIterations(t *testing.T) {
	srv, _ := fakeLLM(t, toolCallReply, toolCallReply, toolCallReply)

	_, err := NewChatReasoner(testConfig(srv.URL), zap.NewNop()).Reason(context.Background(), Request{
		Task:  "q",
		Tools: []Tool{&echoTool{}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no answer after 3 iterations")
}

func TestChatReasonerUnknownToolIsReportedToModel(t *testing.T) {
	reply := `{"choices":[{"message":{"role":"assistant","tool_calls":[
		{"id":"call_9","type":"function","function":{"name":"nope","arguments":"{}"}}]}}]}`
	srv, requests := fakeLLM(t, reply, answerReply)

	_, err := NewChatReasoner(testConfig(srv.URL), zap.NewNop()).Reason(context.Background(), Request{
		Task:  "q",
		Tools: []Tool{&echoTool{}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown tool: nope", gjson.Get(gjson.Get((*requests)[1], "messages.3.content").String(), "message").String())
}

func TestChatReasonerProviderError(t *testing.T) {
	srv, _ := fakeLLM(t)

	_, err := NewChatReasoner(testConfig(srv.URL), zap.NewNop()).Reason(context.Background(), Request{Task: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "unexpected call")
}

func TestNewWithoutKeyIsUnconfigured(t *testing.T) {
	for _, key := range []string{"", "  ", "Enter_your_API_here"} {
		r := New(configs.AgentConfig{APIKey: key}, zap.NewNop())
		_, err := r.Reason(context.Background(), Request{Task: "q"})
		assert.ErrorIs(t, err, ErrNotConfigured, "key %q", key)
	}
}
