package logger

// Standard field names for consistent logging.
const (
	FieldService   = "service"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldRequestID = "request_id"
	FieldAgent     = "agent"
	FieldClientID  = "client_id"
	FieldOrderID   = "order_id"
)
