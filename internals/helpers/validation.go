package helper

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	PhonePattern       = regexp.MustCompile(`^\+?1?\d{9,15}$`)
	OrderNumberPattern = regexp.MustCompile(`^ORD-\d{6}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// field names in errors follow the JSON payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return PhonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "order_number", func(fl validator.FieldLevel) bool {
		return OrderNumberPattern.MatchString(fl.Field().String())
	})
	// money columns are numeric(12,2)
	mustRegister(v, "cents", func(fl validator.FieldLevel) bool {
		return IsWholeCents(fl.Field().Float())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// ValidateStruct runs the struct tag rules and returns a KindValidation
// AppError naming every offending field.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Internal("validator misuse", err)
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		name := fe.Field()
		fields[name] = append(fields[name], describe(fe))
	}
	return NewValidationError(fields)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must match " + PhonePattern.String()
	case "order_number":
		return "must match " + OrderNumberPattern.String()
	case "cents":
		return "must have at most 2 decimal places"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}

// ParseDate accepts RFC3339 or YYYY-MM-DD (UTC midnight).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseDateEnd turns an inclusive "to" bound into an exclusive one. A bare
// YYYY-MM-DD covers that whole day; an RFC3339 instant covers itself, one
// timestamptz tick (1µs) being the smallest step past it.
func ParseDateEnd(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Add(time.Microsecond), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want RFC3339 or YYYY-MM-DD", s)
	}
	return t.AddDate(0, 0, 1), nil
}

// StartOfMonth is 00:00 UTC on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// BindAndValidate parses the JSON body into dst and validates it.
func BindAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return BadRequest("Invalid request body")
	}
	return ValidateStruct(dst)
}

// ParseOptionalDate parses an optional date field, naming it on failure.
func ParseOptionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := ParseDate(*raw)
	if err != nil {
		return nil, FieldError(field, "must be RFC3339 or YYYY-MM-DD")
	}
	return &t, nil
}
