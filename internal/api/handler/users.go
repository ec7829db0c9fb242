package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mysquad-go/internal/api/middleware"
	"github.com/mcoot/mysquad-go/internal/api/request"
	"github.com/mcoot/mysquad-go/internal/api/response"
	"github.com/mcoot/mysquad-go/internal/model"
	"github.com/mcoot/mysquad-go/internal/services/auth"
	"github.com/mcoot/mysquad-go/internal/validate"
)

// UserHandler handles account endpoints
type UserHandler struct {
	authService *auth.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Register handles POST /api/v1/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if errs := validate.Credentials(req.Email, req.Password); len(errs) > 0 {
		WriteError(w, NewValidationError(errs))
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated,
		response.NewAuthResponse("User registered successfully", user, token))
}

// Login handles POST /api/v1/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if errs := validate.Credentials(req.Email, req.Password); len(errs) > 0 {
		WriteError(w, NewValidationError(errs))
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK,
		response.NewAuthResponse("Login successful", user, token))
}

// Get handles GET /api/v1/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownUserID(w, r)
	if !ok {
		return
	}

	user, err := h.authService.GetUser(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// Update handles PUT /api/v1/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownUserID(w, r)
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if errs := validate.UserUpdate(req); len(errs) > 0 {
		WriteError(w, NewValidationError(errs))
		return
	}

	user, err := h.authService.UpdateUser(r.Context(), id, auth.UserUpdate{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// Delete handles DELETE /api/v1/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownUserID(w, r)
	if !ok {
		return
	}

	if err := h.authService.DeleteUser(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "User deleted successfully"})
}

// ownUserID extracts the path user ID and rejects callers targeting an
// account other than their own. The ownership check runs before any
// lookup so callers cannot probe which account IDs exist.
func (h *UserHandler) ownUserID(w http.ResponseWriter, r *http.Request) (model.UserID, bool) {
	id := model.UserID(mux.Vars(r)["id"])
	identity := middleware.MustGetIdentity(r.Context())

	if identity.UserID != id {
		WriteError(w, model.ErrNotAccountOwner)
		return "", false
	}

	return id, true
}
