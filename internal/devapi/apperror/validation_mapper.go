package apperror

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MapValidationError turns a binding failure into a 422 listing every
// offending body field.
func MapValidationError(err error) *AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, e := range verrs {
			fields = append(fields, fieldError(e))
		}
		return Validation(fields...)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return Validation(FieldError{Field: Loc("body", typeErr.Field), Message: "Input should be a valid " + typeErr.Type.String(), Type: "type_error"})
	case errors.As(err, &syntaxErr):
		return Validation(FieldError{Field: "body", Message: "JSON decode error", Type: "json_invalid"})
	default:
		return Validation(FieldError{Field: "body", Message: "Invalid request body", Type: "value_error"})
	}
}

func fieldError(e validator.FieldError) FieldError {
	loc := Loc("body", e.Field())
	switch e.Tag() {
	case "required":
		return FieldError{Field: loc, Message: "Field required", Type: "missing"}
	case "email":
		return FieldError{Field: loc, Message: "value is not a valid email address", Type: "value_error"}
	case "max":
		return FieldError{Field: loc, Message: fmt.Sprintf("String should have at most %s characters", e.Param()), Type: "string_too_long"}
	case "uuid":
		return FieldError{Field: loc, Message: "Input should be a valid UUID", Type: "uuid_parsing"}
	case "datetime":
		return FieldError{Field: loc, Message: "Input should be a valid date", Type: "date_parsing"}
	case "oneof":
		return FieldError{Field: loc, Message: "Input should be 'Present' or 'Absent'", Type: "enum"}
	default:
		return FieldError{Field: loc, Message: "Invalid value", Type: "value_error"}
	}
}
