package tools

import (
	"errors"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	helper "fitstudio_backend/internals/helpers"
)

// Result is the JSON object handed back to the reasoner. Every result
// carries "status" ("success" or "error").
type Result map[string]any

func (r Result) Status() string {
	s, _ := r["status"].(string)
	return s
}

func (r Result) encode() string {
	s, err := sonic.MarshalString(r)
	if err != nil {
		return `{"status":"error","message":"result could not be encoded"}`
	}
	return s
}

func success(data any) Result {
	return Result{"status": "success", "data": data}
}

func failure(msg string) Result {
	return Result{"status": "error", "message": msg}
}

func unsupported(action string) Result {
	return failure("Unsupported action: " + action)
}

// errorResult turns a service error into a result message. Internal
// failures are logged and reported generically.
func errorResult(log *zap.Logger, action string, err error) Result {
	var ae *helper.AppError
	if errors.As(err, &ae) && ae.Kind != helper.KindInternal {
		msg := ae.Message
		if len(ae.Fields) > 0 {
			msg += ": " + describeFields(ae.Fields)
		}
		return failure(msg)
	}
	log.Error("tool action failed", zap.String("action", action), zap.Error(err))
	return failure("Internal error while running " + action)
}

func describeFields(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, f+" "+strings.Join(fields[f], ", "))
	}
	return strings.Join(parts, "; ")
}

// args is a read view over the model-supplied JSON arguments.
type args struct {
	raw string
}

func parseArgs(raw string) (args, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "{}"
	}
	if !gjson.Valid(raw) || !gjson.Parse(raw).IsObject() {
		return args{}, errors.New("arguments must be a JSON object")
	}
	return args{raw: raw}, nil
}

func (a args) action() string { return strings.TrimSpace(gjson.Get(a.raw, "action").String()) }

func (a args) str(key string) string { return strings.TrimSpace(gjson.Get(a.raw, key).String()) }

func (a args) has(key string) bool {
	v := gjson.Get(a.raw, key)
	return v.Exists() && v.Type != gjson.Null
}

func (a args) optStr(key string) *string {
	if !a.has(key) {
		return nil
	}
	s := a.str(key)
	if s == "" {
		return nil
	}
	return &s
}

func (a args) num(key string) float64 { return gjson.Get(a.raw, key).Float() }

func (a args) optNum(key string) *float64 {
	if !a.has(key) {
		return nil
	}
	f := a.num(key)
	return &f
}

func (a args) attributes(key string) (helper.Attributes, error) {
	v := gjson.Get(a.raw, key)
	if !v.Exists() {
		return nil, nil
	}
	var out helper.Attributes
	if err := out.UnmarshalJSON([]byte(v.Raw)); err != nil {
		return nil, err
	}
	return out, nil
}

// require returns a failure naming the first missing argument.
func (a args) require(keys ...string) *Result {
	for _, k := range keys {
		if !a.has(k) || a.str(k) == "" {
			r := failure(k + " is required")
			return &r
		}
	}
	return nil
}
