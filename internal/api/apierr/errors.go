package apierr

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/mysquad-go/internal/model"
	"github.com/mcoot/mysquad-go/internal/services/auth"
	"github.com/mcoot/mysquad-go/internal/validate"
)

// ErrorResponse is the body of every error response. Error is either a
// single message string or a list of field errors for validation
// failures.
type ErrorResponse struct {
	Error any `json:"error"`
}

// httpError combines an HTTP status code with a response body
type httpError struct {
	status int
	body   any
}

// Error implements error interface
func (e *httpError) Error() string {
	if msg, ok := e.body.(string); ok {
		return msg
	}
	return "validation failed"
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.body})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Model errors
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, "User not found"}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, "Player not found"}
	case errors.Is(err, model.ErrNotPlayerOwner):
		return &httpError{http.StatusForbidden, "You can only edit players you created"}
	case errors.Is(err, model.ErrNotAccountOwner):
		return &httpError{http.StatusForbidden, "You can only manage your own account"}

	// Auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "Invalid login"}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusForbidden, "Invalid or expired token"}
	case errors.Is(err, auth.ErrEmailExists):
		return &httpError{http.StatusConflict, "User with this email already exists"}

	default:
		// Unexpected failure: log the cause, return a generic 500
		slog.Error("unhandled error in request", "error", err)
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewValidationError creates a 400 carrying field errors
func NewValidationError(errs []validate.FieldError) error {
	return &httpError{http.StatusBadRequest, errs}
}

// NewInvalidRequestError creates a 400 with a message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewForbiddenError creates a 403 with a message
func NewForbiddenError(message string) error {
	return &httpError{http.StatusForbidden, message}
}

// NewNoTokenError creates the 401 returned when a request carries no token
func NewNoTokenError() error {
	return &httpError{http.StatusUnauthorized, "No token found"}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
