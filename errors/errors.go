package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
)

// Reason — стабильный машинный код (для фронта/аналитики/локализации).
// Примеры: "invalid_choice", "validation_failed".
type Reason string

// FieldViolation — структурированная ошибка для конкретного поля.
type FieldViolation struct {
	Field       string `json:"field"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse — унифицированная ошибка для gRPC/HTTP/логов.
type ErrorResponse struct {
	Code       codes.Code        `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

// New — базовый конструктор.
func New(message string, code codes.Code, details map[string]string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, Details: details}
}

func (e ErrorResponse) WithReason(r string) ErrorResponse { e.Reason = Reason(r); return e }

func (e ErrorResponse) WithDetail(k, v string) ErrorResponse {
	if e.Details == nil {
		e.Details = map[string]string{}
	}
	e.Details[k] = v
	return e
}

func (e ErrorResponse) WithViolations(v []FieldViolation) ErrorResponse {
	if len(v) == 0 {
		return e
	}
	e.Violations = append([]FieldViolation(nil), v...)
	return e
}

// ToString — JSON-представление (Code как строка).
func (e ErrorResponse) ToString() string {
	type out struct {
		Code       string            `json:"code"`
		Reason     Reason            `json:"reason,omitempty"`
		Message    string            `json:"message"`
		Details    map[string]string `json:"details,omitempty"`
		Violations []FieldViolation  `json:"violations,omitempty"`
	}
	b, _ := json.Marshal(out{
		Code:       e.Code.String(),
		Reason:     e.Reason,
		Message:    e.Message,
		Details:    e.Details,
		Violations: e.Violations,
	})
	return string(b)
}

// Error — реализует error.
func (e ErrorResponse) Error() string { return e.ToString() }

var (
	UnknownError = ErrorResponse{
		Code:    codes.Unknown,
		Message: "Unknown error occurred",
	}

	InvalidArgumentError = ErrorResponse{
		Code:    codes.InvalidArgument,
		Message: "Invalid argument",
	}

	InternalError = ErrorResponse{
		Code:    codes.Internal,
		Message: "Internal error",
	}
)

func Unknown() ErrorResponse { return UnknownError }

// UnsupportedError — недопустимое значение закрытого множества
// (например, неизвестный период). Всегда InvalidArgument.
func UnsupportedError(name, value string) ErrorResponse {
	return ErrorResponse{
		Code:    codes.InvalidArgument,
		Message: "Unsupported " + name,
		Reason:  "invalid_choice",
		Details: map[string]string{
			name: value,
		},
	}
}

// ValidationError — InvalidArgument с плоскими парами поле→код.
func ValidationError(fields map[string]string) ErrorResponse {
	return ErrorResponse{
		Code:    codes.InvalidArgument,
		Message: "Validation failed",
		Reason:  "validation_failed",
		Details: fields,
	}
}

// ValidationViolations — InvalidArgument со структурированными нарушениями.
func ValidationViolations(violations []FieldViolation) ErrorResponse {
	return ErrorResponse{
		Code:    codes.InvalidArgument,
		Message: "Validation failed",
		Reason:  "validation_failed",
	}.WithViolations(violations)
}
