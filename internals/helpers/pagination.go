package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Window is a skip/limit slice of a list.
type Window struct {
	Skip  int
	Limit int
}

// ResolveWindow reads ?skip= and ?limit= (alias ?per_page=) and clamps them.
// Bad values fall back to defaults rather than failing the request.
func ResolveWindow(c *fiber.Ctx, defaultLimit, maxLimit int) Window {
	skip, _ := strconv.Atoi(strings.TrimSpace(c.Query("skip", "0")))
	if skip < 0 {
		skip = 0
	}

	limitStr := strings.TrimSpace(c.Query("limit"))
	if limitStr == "" {
		limitStr = strings.TrimSpace(c.Query("per_page"))
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Window{Skip: skip, Limit: limit}
}

func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
