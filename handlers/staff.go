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

// PublicServantHandler and DoctorHandler manage the two user roles. A user
// holds at most one of them; the store refuses the second.

type PublicServantHandler struct {
	pool *store.Pool
}

func NewPublicServantHandler(pool *store.Pool) *PublicServantHandler {
	return &PublicServantHandler{pool: pool}
}

// ListPublicServants handles GET /api/publicservant
func (h *PublicServantHandler) ListPublicServants(w http.ResponseWriter, r *http.Request) {
	servants, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.PublicServant, error) {
		return s.ListPublicServants(ctx)
	})
	if err != nil {
		storeError(w, r, err, "Public servant")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, servants)
}

// CreatePublicServant handles POST /api/publicservant
func (h *PublicServantHandler) CreatePublicServant(w http.ResponseWriter, r *http.Request) {
	req, ok := parseBody[models.CreatePublicServantRequest](w, r)
	if !ok {
		return
	}

	ps, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.PublicServant, error) {
		return s.CreatePublicServant(ctx, models.PublicServant{Email: req.Email, Department: req.Department})
	})
	if err != nil {
		storeError(w, r, err, "Public servant")
		return
	}

	slog.Info("public servant created", "email", ps.Email, "department", ps.Department)
	middleware.JSONResponse(w, http.StatusCreated, ps)
}

// GetPublicServant handles GET /api/publicservant/{email}
func (h *PublicServantHandler) GetPublicServant(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	ps, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.PublicServant, error) {
		return s.GetPublicServant(ctx, email)
	})
	if err != nil {
		storeError(w, r, err, "Public servant")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, ps)
}

// UpdatePublicServant handles PUT /api/publicservant/{email}
func (h *PublicServantHandler) UpdatePublicServant(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	patch, ok := parsePatch[models.PublicServantUpdate](w, r)
	if !ok {
		return
	}

	ps, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.PublicServant, error) {
		return s.UpdatePublicServant(ctx, email, patch)
	})
	if err != nil {
		storeError(w, r, err, "Public servant")
		return
	}

	slog.Info("public servant updated", "email", email)
	middleware.JSONResponse(w, http.StatusOK, ps)
}

// DeletePublicServant handles DELETE /api/publicservant/{email}
func (h *PublicServantHandler) DeletePublicServant(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	ps, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.PublicServant, error) {
		return s.DeletePublicServant(ctx, email)
	})
	if err != nil {
		storeError(w, r, err, "Public servant")
		return
	}

	slog.Info("public servant deleted", "email", email)
	middleware.JSONResponse(w, http.StatusOK, ps)
}

type DoctorHandler struct {
	pool *store.Pool
}

func NewDoctorHandler(pool *store.Pool) *DoctorHandler {
	return &DoctorHandler{pool: pool}
}

// ListDoctors handles GET /api/doctor
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.Doctor, error) {
		return s.ListDoctors(ctx)
	})
	if err != nil {
		storeError(w, r, err, "Doctor")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, doctors)
}

// CreateDoctor handles POST /api/doctor
func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	req, ok := parseBody[models.CreateDoctorRequest](w, r)
	if !ok {
		return
	}

	doctor, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Doctor, error) {
		return s.CreateDoctor(ctx, models.Doctor{Email: req.Email, Degree: req.Degree})
	})
	if err != nil {
		storeError(w, r, err, "Doctor")
		return
	}

	slog.Info("doctor created", "email", doctor.Email, "degree", doctor.Degree)
	middleware.JSONResponse(w, http.StatusCreated, doctor)
}

// GetDoctor handles GET /api/doctor/{email}
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	doctor, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Doctor, error) {
		return s.GetDoctor(ctx, email)
	})
	if err != nil {
		storeError(w, r, err, "Doctor")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, doctor)
}

// UpdateDoctor handles PUT /api/doctor/{email}
func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	patch, ok := parsePatch[models.DoctorUpdate](w, r)
	if !ok {
		return
	}

	doctor, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Doctor, error) {
		return s.UpdateDoctor(ctx, email, patch)
	})
	if err != nil {
		storeError(w, r, err, "Doctor")
		return
	}

	slog.Info("doctor updated", "email", email)
	middleware.JSONResponse(w, http.StatusOK, doctor)
}

// DeleteDoctor handles DELETE /api/doctor/{email}
// The doctor's specializations go with it.
func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	doctor, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Doctor, error) {
		return s.DeleteDoctor(ctx, email)
	})
	if err != nil {
		storeError(w, r, err, "Doctor")
		return
	}

	slog.Info("doctor deleted", "email", email)
	middleware.JSONResponse(w, http.StatusOK, doctor)
}

// ListSpecializations handles GET /api/specialize
func (h *DoctorHandler) ListSpecializations(w http.ResponseWriter, r *http.Request) {
	specs, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.Specialize, error) {
		return s.ListSpecializations(ctx)
	})
	if err != nil {
		storeError(w, r, err, "Specialization")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, specs)
}

// CreateSpecialize handles POST /api/specialize
func (h *DoctorHandler) CreateSpecialize(w http.ResponseWriter, r *http.Request) {
	req, ok := parseBody[models.CreateSpecializeRequest](w, r)
	if !ok {
		return
	}

	spec, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Specialize, error) {
		return s.CreateSpecialize(ctx, models.Specialize{ID: *req.ID, Email: req.Email})
	})
	if err != nil {
		storeError(w, r, err, "Specialization")
		return
	}

	slog.Info("specialization created", "email", spec.Email, "disease_type", spec.ID)
	middleware.JSONResponse(w, http.StatusCreated, spec)
}

// DeleteSpecialize handles DELETE /api/specialize/{id}/{email}
func (h *DoctorHandler) DeleteSpecialize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	email := r.PathValue("email")

	spec, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Specialize, error) {
		return s.DeleteSpecialize(ctx, id, email)
	})
	if err != nil {
		storeError(w, r, err, "Specialization")
		return
	}

	slog.Info("specialization deleted", "email", email, "disease_type", id)
	middleware.JSONResponse(w, http.StatusOK, spec)
}
