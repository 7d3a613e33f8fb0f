package helper

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"
)

// Attributes is the typed stand-in for free-form request context and
// order/payment metadata: a flat string map.
//
// Decoding accepts any JSON object. Strings keep their value, numbers and
// booleans keep their literal text, nested objects/arrays are kept as compact
// JSON text and nulls are dropped. Encoding always yields an object of strings.
type Attributes map[string]string

// sorted keys and json.Number keep compacted nested values stable
var compactAPI = sonic.Config{SortMapKeys: true, UseNumber: true}.Froze()

var errAttributesNotObject = errors.New("attributes: expected a JSON object")

func (a *Attributes) UnmarshalJSON(b []byte) error {
	if !gjson.ValidBytes(b) {
		return errAttributesNotObject
	}
	res := gjson.ParseBytes(b)
	if res.Type == gjson.Null {
		*a = nil
		return nil
	}
	if !res.IsObject() {
		return errAttributesNotObject
	}
	out := Attributes{}
	res.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.Null:
		case gjson.String:
			out[key.String()] = value.Str
		case gjson.JSON:
			out[key.String()] = compactJSON(value.Raw)
		default:
			out[key.String()] = value.Raw
		}
		return true
	})
	*a = out
	return nil
}

func compactJSON(raw string) string {
	var v any
	if err := compactAPI.UnmarshalFromString(raw, &v); err != nil {
		return strings.TrimSpace(raw)
	}
	s, err := compactAPI.MarshalToString(v)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return s
}

// Keys returns the keys in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders "{k: v, ...}" with sorted keys, "{}" when empty.
func (a Attributes) String() string {
	if len(a) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range a.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", k, a[k])
	}
	b.WriteByte('}')
	return b.String()
}

// Value stores the attributes as a jsonb object.
func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	return sonic.MarshalString(map[string]string(a))
}

func (a *Attributes) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("attributes: unsupported scan type %T", src)
	}
	return a.UnmarshalJSON(raw)
}

func (Attributes) GormDataType() string { return "jsonb" }
