// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/disease-registry/middleware"
	"github.com/danielhkuo/disease-registry/models"
	"github.com/danielhkuo/disease-registry/store"
)

type UserHandler struct {
	pool *store.Pool
}

func NewUserHandler(pool *store.Pool) *UserHandler {
	return &UserHandler{pool: pool}
}

// ListUsers handles GET /api/user
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.User, error) {
		return s.ListUsers(ctx)
	})
	if err != nil {
		storeError(w, r, err, "User")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, users)
}

// CreateUser handles POST /api/user
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, ok := parseBody[models.CreateUserRequest](w, r)
	if !ok {
		return
	}

	user, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.User, error) {
		return s.CreateUser(ctx, req.User())
	})
	if err != nil {
		storeError(w, r, err, "User")
		return
	}

	slog.Info("user created", "email", user.Email, "cname", user.CName)
	middleware.JSONResponse(w, http.StatusCreated, user)
}

// GetUser handles GET /api/user/{email}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	user, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.User, error) {
		return s.GetUser(ctx, email)
	})
	if err != nil {
		storeError(w, r, err, "User")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, user)
}

// GetUserRole handles GET /api/user/{email}/role
// Returns the user together with the role it holds.
func (h *UserHandler) GetUserRole(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	profile, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.UserProfile, error) {
		return s.GetUserProfile(ctx, email)
	})
	if err != nil {
		storeError(w, r, err, "User")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, profile)
}

// UpdateUser handles PUT /api/user/{email}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	patch, ok := parsePatch[models.UserUpdate](w, r)
	if !ok {
		return
	}

	user, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.User, error) {
		return s.UpdateUser(ctx, email, patch)
	})
	if err != nil {
		storeError(w, r, err, "User")
		return
	}

	slog.Info("user updated", "email", email)
	middleware.JSONResponse(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/user/{email}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	user, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.User, error) {
		return s.DeleteUser(ctx, email)
	})
	if err != nil {
		storeError(w, r, err, "User")
		return
	}

	slog.Info("user deleted", "email", email)
	middleware.JSONResponse(w, http.StatusOK, user)
}
