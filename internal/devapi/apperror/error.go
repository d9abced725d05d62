// Package apperror carries the devapi's typed failures and shapes them into
// the JSON bodies the HRMS client expects.
package apperror

import "fmt"

type AppError struct {
	Code       string       // Error code (e.g., NOT_FOUND)
	Message    string       // Sent to the client as detail
	HTTPStatus int          // HTTP status code
	Err        error        // Wrapped original error (optional)
	Fields     []FieldError // Per-field failures, validation errors only
}

// FieldError is one entry of a validation failure. Field is the location
// joined with " -> ", e.g. "body -> date".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError that wraps an existing error. A nil err yields nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
