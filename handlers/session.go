// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/disease-registry/middleware"
	"github.com/danielhkuo/disease-registry/store"
)

// inSession runs fn in a fresh session scoped to the request and returns
// its result once the session has been committed or rolled back.
func inSession[T any](r *http.Request, pool *store.Pool, fn func(ctx context.Context, s *store.Session) (T, error)) (T, error) {
	var out T
	err := pool.WithSession(r.Context(), func(s *store.Session) error {
		var err error
		out, err = fn(r.Context(), s)
		return err
	})
	return out, err
}

// storeError maps a store error onto a JSON error response. entity names
// the resource in the not-found message ("User not found").
func storeError(w http.ResponseWriter, r *http.Request, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, store.ErrRoleConflict), errors.Is(err, store.ErrRoleRequired):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrConstraint):
		slog.Warn("constraint violation", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("database operation failed", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// parseBody decodes and validates a create request, writing a 400 on
// failure.
func parseBody[T interface{ Validate() error }](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return req, false
	}
	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

// parsePatch decodes a partial update body, writing a 400 on failure.
func parsePatch[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var patch T
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return patch, false
	}
	return patch, true
}

// pathID reads an integer path value, writing a 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
