package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

const ValidationMessage = "Validation Error"

// Validation reports request payload or parameter failures as 422.
func Validation(fields ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    ValidationMessage,
		HTTPStatus: http.StatusUnprocessableEntity,
		Fields:     fields,
	}
}

// Loc joins location parts the way field errors report them.
func Loc(parts ...string) string {
	return strings.Join(parts, " -> ")
}

// ValueError is a custom rule failure on one body field.
func ValueError(field, msg string) FieldError {
	return FieldError{Field: Loc("body", field), Message: "Value error, " + msg, Type: "value_error"}
}

func EmployeeNotFound() *AppError {
	return New(CodeNotFound, "Employee not found", http.StatusNotFound)
}

func DuplicateEmployeeCode(code string) *AppError {
	return New(CodeConflict, fmt.Sprintf("Employee with ID '%s' already exists", code), http.StatusBadRequest)
}

func DuplicateEmail(email string) *AppError {
	return New(CodeConflict, fmt.Sprintf("Employee with email '%s' already exists", email), http.StatusBadRequest)
}

func DuplicateAttendance(date string) *AppError {
	return New(CodeConflict, fmt.Sprintf("Attendance for employee on %s already exists", date), http.StatusBadRequest)
}

func Database(err error) *AppError {
	return Wrap(err, CodeDatabase, "Database error occurred", http.StatusInternalServerError)
}

func TooManyRequests() *AppError {
	return New(CodeRateLimited, "Too many requests from this IP", http.StatusTooManyRequests)
}

// Internal is the generic 500 for failures that carry no AppError of their
// own. err may be nil.
func Internal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
