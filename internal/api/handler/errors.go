package handler

import (
	"net/http"

	"github.com/mcoot/mysquad-go/internal/api/apierr"
	"github.com/mcoot/mysquad-go/internal/validate"
)

// Re-export from apierr for convenience

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewValidationError creates a 400 carrying field errors
func NewValidationError(errs []validate.FieldError) error {
	return apierr.NewValidationError(errs)
}

// NewForbiddenError creates a 403 with a message
func NewForbiddenError(message string) error {
	return apierr.NewForbiddenError(message)
}
