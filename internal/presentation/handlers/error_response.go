package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError carries validation detail for a single request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationErrorResponse unpacks a binding error into field-level detail.
// Non-validator errors (malformed JSON, wrong types) fall through to the
// generic shape.
func validationErrorResponse(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: fieldErrorMessage(fe),
		})
	}

	return ErrorResponse{
		Error:   "validation_failed",
		Message: "Request validation failed",
		Fields:  fields,
	}
}

// fieldErrorMessage renders a human-readable message for a validator tag
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
