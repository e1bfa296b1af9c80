package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/regional-site-backend/internal/domain"
	"github.com/heartmarshall/regional-site-backend/internal/service/user"
)

type userService interface {
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, input user.CreateInput) (*domain.User, error)
	Update(ctx context.Context, input user.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserHandler serves admin account management. Every endpoint requires a
// super admin; the service enforces it.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	Password        string   `json:"password"`
	Role            string   `json:"role"`
	AssignedRegions []string `json:"assigned_regions"`
}

type updateUserRequest struct {
	Email           *string   `json:"email"`
	Name            *string   `json:"name"`
	Password        *string   `json:"password"`
	Role            *string   `json:"role"`
	AssignedRegions *[]string `json:"assigned_regions"`
	IsActive        *bool     `json:"is_active"`
}

// List handles GET /api/admin/users?role=&active=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var f domain.UserFilter
	if v := r.URL.Query().Get("role"); v != "" {
		role := domain.UserRole(v)
		f.Role = &role
	}
	if v := r.URL.Query().Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("active", "must be a boolean"))
			return
		}
		f.ActiveOnly = active
	}

	users, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUser(&users[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/admin/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// Create handles POST /api/admin/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	u, err := h.svc.Create(r.Context(), user.CreateInput{
		Username:        req.Username,
		Email:           req.Email,
		Name:            req.Name,
		Password:        req.Password,
		Role:            domain.UserRole(req.Role),
		AssignedRegions: req.AssignedRegions,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUser(u))
}

// Update handles PUT /api/admin/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	input := user.UpdateInput{
		ID:              id,
		Email:           req.Email,
		Name:            req.Name,
		Password:        req.Password,
		AssignedRegions: req.AssignedRegions,
		IsActive:        req.IsActive,
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		input.Role = &role
	}

	u, err := h.svc.Update(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// Delete handles DELETE /api/admin/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathUUID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}
