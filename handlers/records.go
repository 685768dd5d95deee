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

type RecordHandler struct {
	pool *store.Pool
}

func NewRecordHandler(pool *store.Pool) *RecordHandler {
	return &RecordHandler{pool: pool}
}

// ListRecords handles GET /api/record
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.Record, error) {
		return s.ListRecords(ctx)
	})
	if err != nil {
		storeError(w, r, err, "Record")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, records)
}

// CreateRecord handles POST /api/record
func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	req, ok := parseBody[models.CreateRecordRequest](w, r)
	if !ok {
		return
	}

	record, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Record, error) {
		return s.CreateRecord(ctx, req.Record())
	})
	if err != nil {
		storeError(w, r, err, "Record")
		return
	}

	slog.Info("record created", "email", record.Email, "disease_code", record.DiseaseCode)
	middleware.JSONResponse(w, http.StatusCreated, record)
}

// ListRecordsByEmail handles GET /api/record/email/{email}
func (h *RecordHandler) ListRecordsByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	records, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.Record, error) {
		return s.ListRecordsByEmail(ctx, email)
	})
	if err != nil {
		storeError(w, r, err, "Record")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, records)
}

// ListRecordsByDisease handles GET /api/record/disease/{code}
func (h *RecordHandler) ListRecordsByDisease(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	records, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.Record, error) {
		return s.ListRecordsByDisease(ctx, code)
	})
	if err != nil {
		storeError(w, r, err, "Record")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, records)
}

// UpdateRecord handles PUT /api/record/{email}
func (h *RecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	patch, ok := parsePatch[models.RecordUpdate](w, r)
	if !ok {
		return
	}

	record, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Record, error) {
		return s.UpdateRecord(ctx, email, patch)
	})
	if err != nil {
		storeError(w, r, err, "Record")
		return
	}

	slog.Info("record updated", "email", email, "new_email", record.Email)
	middleware.JSONResponse(w, http.StatusOK, record)
}

// DeleteRecord handles DELETE /api/record/{email}
func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	record, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Record, error) {
		return s.DeleteRecord(ctx, email)
	})
	if err != nil {
		storeError(w, r, err, "Record")
		return
	}

	slog.Info("record deleted", "email", email)
	middleware.JSONResponse(w, http.StatusOK, record)
}
