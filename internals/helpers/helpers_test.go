package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name   string  `json:"name" validate:"required,min=2,max=100"`
	Email  string  `json:"email" validate:"required,email"`
	Phone  string  `json:"phone" validate:"required,phone"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Amount float64 `json:"amount" validate:"gt=0"`
}

func TestValidateStructNamesJSONFields(t *testing.T) {
	bad := "gone"
	err := ValidateStruct(sampleInput{Name: "A", Email: "nope", Phone: "12", Status: &bad})
	require.Error(t, err)

	var ae *AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, KindValidation, ae.Kind)
	assert.Contains(t, ae.Fields, "name")
	assert.Contains(t, ae.Fields, "email")
	assert.Contains(t, ae.Fields, "phone")
	assert.Contains(t, ae.Fields, "status")
	assert.Contains(t, ae.Fields, "amount")
	assert.Equal(t, []string{"must be one of: active, inactive"}, ae.Fields["status"])
}

func TestValidateStructAccepts(t *testing.T) {
	err := ValidateStruct(sampleInput{Name: "A B", Email: "a@b.com", Phone: "+911234567890", Amount: 1})
	assert.NoError(t, err)
}

func TestPatterns(t *testing.T) {
	assert.True(t, PhonePattern.MatchString("+911234567890"))
	assert.True(t, PhonePattern.MatchString("9876543210"))
	assert.False(t, PhonePattern.MatchString("+91 9876543210"))
	assert.True(t, OrderNumberPattern.MatchString("ORD-000042"))
	assert.False(t, OrderNumberPattern.MatchString("ORD-42"))
}

func TestErrorKindStatus(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, KindValidation.HTTPStatus())
	assert.Equal(t, fiber.StatusBadRequest, KindInvalidID.HTTPStatus())
	assert.Equal(t, fiber.StatusBadRequest, KindConflict.HTTPStatus())
	assert.Equal(t, fiber.StatusNotFound, KindNotFound.HTTPStatus())
	assert.Equal(t, fiber.StatusUnauthorized, KindUnauthorized.HTTPStatus())
	assert.Equal(t, fiber.StatusForbidden, KindForbidden.HTTPStatus())
	assert.Equal(t, fiber.StatusInternalServerError, KindInternal.HTTPStatus())
}

func TestParseIDKeepsCause(t *testing.T) {
	_, err := ParseID("not-a-uuid", "client")
	require.Error(t, err)
	assert.Equal(t, KindInvalidID, KindOf(err))
	assert.Equal(t, "Invalid client ID", err.(*AppError).Message)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestKindOfWrapped(t *testing.T) {
	err := NotFound("Course not found")
	wrapped := errors.Join(errors.New("ctx"), err)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestAttributesDecode(t *testing.T) {
	var a Attributes
	err := sonic.Unmarshal([]byte(`{"source":"website","count":3,"vip":true,"skip":null,"tags":{"b":1,"a":2}}`), &a)
	require.NoError(t, err)
	assert.Equal(t, Attributes{
		"source": "website",
		"count":  "3",
		"vip":    "true",
		"tags":   `{"a":2,"b":1}`,
	}, a)
	assert.Equal(t, "{count: 3, source: website, tags: {\"a\":2,\"b\":1}, vip: true}", a.String())
}

func TestAttributesRejectsNonObject(t *testing.T) {
	var a Attributes
	assert.Error(t, a.UnmarshalJSON([]byte(`[1,2]`)))
	assert.Error(t, a.UnmarshalJSON([]byte(`{broken`)))
	require.NoError(t, a.UnmarshalJSON([]byte(`null`)))
	assert.Nil(t, a)
	assert.Equal(t, "{}", a.String())
}

func TestAttributesScanValue(t *testing.T) {
	in := Attributes{"campaign": "summer"}
	v, err := in.Value()
	require.NoError(t, err)

	var out Attributes
	require.NoError(t, out.Scan([]byte(v.(string))))
	assert.Equal(t, in, out)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/03/2025")
	assert.Error(t, err)
}

func TestParseDateEnd(t *testing.T) {
	day, err := ParseDateEnd("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), day)

	instant, err := ParseDateEnd("2025-03-01T18:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 13, 0, 0, 1000, time.UTC), instant)

	_, err = ParseDateEnd("tomorrow")
	assert.Error(t, err)
}

func TestStartOfMonth(t *testing.T) {
	now := time.Date(2026, 10, 15, 13, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(now))
}

func TestWholeCents(t *testing.T) {
	for _, v := range []float64{1, 0.01, 0.1 + 0.2, 99.99, 12345678.9} {
		assert.True(t, IsWholeCents(v), "%v", v)
	}
	for _, v := range []float64{0.001, 10.006, 0.004, 1.999} {
		assert.False(t, IsWholeCents(v), "%v", v)
	}
	assert.Equal(t, int64(1001), ToCents(10.005+0.0000001))
	assert.Equal(t, 9.9, FromCents(ToCents(10.1)-ToCents(0.2)))
}
