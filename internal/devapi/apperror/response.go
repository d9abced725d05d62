package apperror

import "errors"

// Body is the JSON error payload.
type Body struct {
	Detail  string       `json:"detail"`
	Errors  []FieldError `json:"errors,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Response maps any error to its status code and body. Errors that are not
// an AppError are reported as a generic 500.
func Response(err error) (int, Body) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}
	body := Body{Detail: appErr.Message, Errors: appErr.Fields}
	switch appErr.Code {
	case CodeDatabase:
		body.Message = "An error occurred while processing your request. Please try again."
	case CodeInternal:
		body.Message = "An unexpected error occurred. Please try again later."
	}
	return appErr.HTTPStatus, body
}
