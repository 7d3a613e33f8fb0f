package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrorKind classifies failures so the HTTP boundary can map them once.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindInvalidID
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidID:
		return "invalid_id"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// HTTPStatus: duplicates answer 400 to keep the public contract
// ("Email already exists" has always been a bad request).
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation, KindInvalidID, KindConflict:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(fields map[string][]string) *AppError {
	return &AppError{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// FieldError is a single-field validation failure.
func FieldError(field, msg string) *AppError {
	return NewValidationError(map[string][]string{field: {msg}})
}

func BadRequest(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func InvalidID(entity string, err error) *AppError {
	return &AppError{Kind: KindInvalidID, Message: "Invalid " + entity + " ID", Err: err}
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string, err error) *AppError {
	return &AppError{Kind: KindConflict, Message: msg, Err: err}
}

func Unauthorized(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

// Forbidden: the caller is authenticated but lacks the role.
func Forbidden(msg string) *AppError {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func Internal(msg string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of the first AppError in err's chain.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// ParseID parses a path/body identifier. entity is used in the message,
// e.g. "client" -> "Invalid client ID".
func ParseID(raw, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, InvalidID(entity, err)
	}
	return id, nil
}

// FromStore classifies a repository error. notFound is used for
// gorm.ErrRecordNotFound; duplicates become Conflict("Duplicate record").
func FromStore(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict("Duplicate record", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return NotFound(notFound)
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return err
	}
	return Internal("store failure", err)
}
