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

// CatalogHandler serves the reference data: countries, disease types,
// diseases and where each disease was first encountered.
type CatalogHandler struct {
	pool *store.Pool
}

func NewCatalogHandler(pool *store.Pool) *CatalogHandler {
	return &CatalogHandler{pool: pool}
}

// Countries

func (h *CatalogHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.Country, error) {
		return s.ListCountries(ctx)
	})
	if err != nil {
		storeError(w, r, err, "Country")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, countries)
}

func (h *CatalogHandler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	req, ok := parseBody[models.CreateCountryRequest](w, r)
	if !ok {
		return
	}

	country, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Country, error) {
		return s.CreateCountry(ctx, req.Country())
	})
	if err != nil {
		storeError(w, r, err, "Country")
		return
	}

	slog.Info("country created", "cname", country.CName)
	middleware.JSONResponse(w, http.StatusCreated, country)
}

func (h *CatalogHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	cname := r.PathValue("cname")

	country, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Country, error) {
		return s.GetCountry(ctx, cname)
	})
	if err != nil {
		storeError(w, r, err, "Country")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, country)
}

func (h *CatalogHandler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	cname := r.PathValue("cname")
	patch, ok := parsePatch[models.CountryUpdate](w, r)
	if !ok {
		return
	}

	country, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Country, error) {
		return s.UpdateCountry(ctx, cname, patch)
	})
	if err != nil {
		storeError(w, r, err, "Country")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, country)
}

func (h *CatalogHandler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	cname := r.PathValue("cname")

	country, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Country, error) {
		return s.DeleteCountry(ctx, cname)
	})
	if err != nil {
		storeError(w, r, err, "Country")
		return
	}

	slog.Info("country deleted", "cname", cname)
	middleware.JSONResponse(w, http.StatusOK, country)
}

// Disease types

func (h *CatalogHandler) ListDiseaseTypes(w http.ResponseWriter, r *http.Request) {
	types, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.DiseaseType, error) {
		return s.ListDiseaseTypes(ctx)
	})
	if err != nil {
		storeError(w, r, err, "Disease type")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, types)
}

func (h *CatalogHandler) CreateDiseaseType(w http.ResponseWriter, r *http.Request) {
	req, ok := parseBody[models.CreateDiseaseTypeRequest](w, r)
	if !ok {
		return
	}

	dt, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.DiseaseType, error) {
		return s.CreateDiseaseType(ctx, req.DiseaseType())
	})
	if err != nil {
		storeError(w, r, err, "Disease type")
		return
	}

	slog.Info("disease type created", "id", dt.ID)
	middleware.JSONResponse(w, http.StatusCreated, dt)
}

func (h *CatalogHandler) GetDiseaseType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	dt, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.DiseaseType, error) {
		return s.GetDiseaseType(ctx, id)
	})
	if err != nil {
		storeError(w, r, err, "Disease type")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, dt)
}

func (h *CatalogHandler) UpdateDiseaseType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	patch, ok := parsePatch[models.DiseaseTypeUpdate](w, r)
	if !ok {
		return
	}

	dt, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.DiseaseType, error) {
		return s.UpdateDiseaseType(ctx, id, patch)
	})
	if err != nil {
		storeError(w, r, err, "Disease type")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, dt)
}

func (h *CatalogHandler) DeleteDiseaseType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	dt, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.DiseaseType, error) {
		return s.DeleteDiseaseType(ctx, id)
	})
	if err != nil {
		storeError(w, r, err, "Disease type")
		return
	}

	slog.Info("disease type deleted", "id", id)
	middleware.JSONResponse(w, http.StatusOK, dt)
}

// Diseases

func (h *CatalogHandler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	diseases, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.Disease, error) {
		return s.ListDiseases(ctx)
	})
	if err != nil {
		storeError(w, r, err, "Disease")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, diseases)
}

func (h *CatalogHandler) CreateDisease(w http.ResponseWriter, r *http.Request) {
	req, ok := parseBody[models.CreateDiseaseRequest](w, r)
	if !ok {
		return
	}

	disease, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Disease, error) {
		return s.CreateDisease(ctx, req.Disease())
	})
	if err != nil {
		storeError(w, r, err, "Disease")
		return
	}

	slog.Info("disease created", "disease_code", disease.DiseaseCode)
	middleware.JSONResponse(w, http.StatusCreated, disease)
}

func (h *CatalogHandler) GetDisease(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	disease, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Disease, error) {
		return s.GetDisease(ctx, code)
	})
	if err != nil {
		storeError(w, r, err, "Disease")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, disease)
}

func (h *CatalogHandler) UpdateDisease(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	patch, ok := parsePatch[models.DiseaseUpdate](w, r)
	if !ok {
		return
	}

	disease, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Disease, error) {
		return s.UpdateDisease(ctx, code, patch)
	})
	if err != nil {
		storeError(w, r, err, "Disease")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, disease)
}

func (h *CatalogHandler) DeleteDisease(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	disease, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Disease, error) {
		return s.DeleteDisease(ctx, code)
	})
	if err != nil {
		storeError(w, r, err, "Disease")
		return
	}

	slog.Info("disease deleted", "disease_code", code)
	middleware.JSONResponse(w, http.StatusOK, disease)
}

// Discoveries, keyed by (cname, disease_code)

func (h *CatalogHandler) ListDiscoveries(w http.ResponseWriter, r *http.Request) {
	discoveries, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.Discover, error) {
		return s.ListDiscoveries(ctx)
	})
	if err != nil {
		storeError(w, r, err, "Discovery")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, discoveries)
}

func (h *CatalogHandler) CreateDiscover(w http.ResponseWriter, r *http.Request) {
	req, ok := parseBody[models.CreateDiscoverRequest](w, r)
	if !ok {
		return
	}

	d, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Discover, error) {
		return s.CreateDiscover(ctx, req.Discover())
	})
	if err != nil {
		storeError(w, r, err, "Discovery")
		return
	}

	slog.Info("discovery created", "cname", d.CName, "disease_code", d.DiseaseCode)
	middleware.JSONResponse(w, http.StatusCreated, d)
}

func (h *CatalogHandler) GetDiscover(w http.ResponseWriter, r *http.Request) {
	cname, code := r.PathValue("cname"), r.PathValue("code")

	d, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Discover, error) {
		return s.GetDiscover(ctx, cname, code)
	})
	if err != nil {
		storeError(w, r, err, "Discovery")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, d)
}

func (h *CatalogHandler) UpdateDiscover(w http.ResponseWriter, r *http.Request) {
	cname, code := r.PathValue("cname"), r.PathValue("code")
	patch, ok := parsePatch[models.DiscoverUpdate](w, r)
	if !ok {
		return
	}

	d, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Discover, error) {
		return s.UpdateDiscover(ctx, cname, code, patch)
	})
	if err != nil {
		storeError(w, r, err, "Discovery")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, d)
}

func (h *CatalogHandler) DeleteDiscover(w http.ResponseWriter, r *http.Request) {
	cname, code := r.PathValue("cname"), r.PathValue("code")

	d, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Discover, error) {
		return s.DeleteDiscover(ctx, cname, code)
	})
	if err != nil {
		storeError(w, r, err, "Discovery")
		return
	}

	slog.Info("discovery deleted", "cname", cname, "disease_code", code)
	middleware.JSONResponse(w, http.StatusOK, d)
}
