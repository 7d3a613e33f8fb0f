package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: any non-validation failure.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonValidationError: field errors, answered as 400.
func JsonValidationError(c *fiber.Ctx, message string, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	if strings.TrimSpace(message) == "" {
		message = "validation failed"
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fieldErrors,
	})
}

// FromError maps any error to the JSON envelope. Internal causes are logged,
// never echoed to the caller.
func FromError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var ae *AppError
	if errors.As(err, &ae) {
		switch {
		case ae.Kind == KindValidation && len(ae.Fields) > 0:
			return JsonValidationError(c, ae.Message, ae.Fields)
		case ae.Kind == KindInternal:
			log.Error("request failed",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.Error(err))
			return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		default:
			return JsonError(c, ae.Kind.HTTPStatus(), ae.Message)
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Error("unhandled error",
		zap.String("path", c.Path()),
		zap.String("method", c.Method()),
		zap.Error(err))
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

// NewErrorHandler plugs FromError into fiber.Config.ErrorHandler.
func NewErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return FromError(c, log, err)
	}
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonOK wraps a single payload in the success envelope.
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonList renders the list shape the dashboard consumes:
// {<key>: items, total, skip, limit}.
func JsonList(c *fiber.Ctx, key string, items any, total int64, w Window) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		key:     items,
		"total": total,
		"skip":  w.Skip,
		"limit": w.Limit,
	})
}
