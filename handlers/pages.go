// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/disease-registry/middleware"
	"github.com/danielhkuo/disease-registry/models"
	"github.com/danielhkuo/disease-registry/store"
	"github.com/danielhkuo/disease-registry/views"
)

// Status codes carried in ?message= after a form post
const (
	messageCreate = "create"
	messageUpdate = "update"
	messageDelete = "delete"
)

// statusMessage turns a ?message= code into the banner shown on a page.
// Unknown codes are shown as given.
func statusMessage(entity, code string) string {
	switch code {
	case messageUpdate:
		return "Changes were made successfully"
	case messageCreate:
		return entity + " was created"
	case messageDelete:
		return entity + " was deleted"
	}
	return code
}

// PageHandler serves the browser pages and their form posts. Every
// successful post redirects back to the listing with a status message.
type PageHandler struct {
	pool   *store.Pool
	render *views.Renderer
}

func NewPageHandler(pool *store.Pool, render *views.Renderer) *PageHandler {
	return &PageHandler{pool: pool, render: render}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	users, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.User, error) {
		return s.ListUsers(ctx)
	})
	if err != nil {
		h.pageError(w, r, err, "")
		return
	}
	h.page(w, r, views.PageIndex, views.IndexPage{Users: users})
}

// Users handles GET /users
func (h *PageHandler) Users(w http.ResponseWriter, r *http.Request) {
	data, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (views.UsersPage, error) {
		var (
			page views.UsersPage
			err  error
		)
		if page.Users, err = s.ListUsers(ctx); err != nil {
			return page, err
		}
		page.Countries, err = s.ListCountries(ctx)
		return page, err
	})
	if err != nil {
		h.pageError(w, r, err, "")
		return
	}
	data.Message = statusMessage("User", r.URL.Query().Get("message"))
	h.page(w, r, views.PageUsers, data)
}

// GetUserByEmail handles GET /user/get_by_email?email=
func (h *PageHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	user, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.User, error) {
		return s.GetUser(ctx, email)
	})
	if err != nil {
		h.pageError(w, r, err, "No such user")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, user)
}

// CreateUser handles POST /user/post
func (h *PageHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	salary, err := formInt(r, "salary")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req := models.CreateUserRequest{
		Email:   formValue(r, "email"),
		Name:    formValue(r, "name"),
		Surname: formValue(r, "surname"),
		Salary:  salary,
		Phone:   formValue(r, "phone"),
		CName:   formValue(r, "country"),
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.User, error) {
		return s.CreateUser(ctx, req.User())
	}); err != nil {
		h.pageError(w, r, err, "")
		return
	}

	slog.Info("user created", "email", req.Email, "cname", req.CName)
	redirect(w, r, "/users", messageCreate)
}

// UpdateUser handles POST /user/update/{email}
// Blank form fields leave the stored value untouched.
func (h *PageHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	salary, err := formInt(r, "salary")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	patch := models.UserUpdate{
		Name:    formOptional(r, "name"),
		Surname: formOptional(r, "surname"),
		Salary:  salary,
		Phone:   formOptional(r, "phone"),
		CName:   formOptional(r, "country"),
	}

	if _, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.User, error) {
		return s.UpdateUser(ctx, email, patch)
	}); err != nil {
		h.pageError(w, r, err, "No such user")
		return
	}

	slog.Info("user updated", "email", email)
	redirect(w, r, "/users", messageUpdate)
}

// DeleteUser handles GET /user/delete/{email}
func (h *PageHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	if _, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.User, error) {
		return s.DeleteUser(ctx, email)
	}); err != nil {
		h.pageError(w, r, err, "No such user")
		return
	}

	slog.Info("user deleted", "email", email)
	redirect(w, r, "/users", messageDelete)
}

// Records handles GET /records
func (h *PageHandler) Records(w http.ResponseWriter, r *http.Request) {
	records, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.Record, error) {
		return s.ListRecords(ctx)
	})
	if err != nil {
		h.pageError(w, r, err, "")
		return
	}
	h.page(w, r, views.PageRecords, views.RecordsPage{
		Message: statusMessage("Record", r.URL.Query().Get("message")),
		Records: records,
	})
}

// CreateRecord handles POST /record/post
func (h *PageHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	deaths, err := formInt(r, "totaldeaths")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	patients, err := formInt(r, "totalpatients")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req := models.CreateRecordRequest{
		Email:         formValue(r, "email"),
		CName:         formValue(r, "country"),
		DiseaseCode:   formValue(r, "diseasecode"),
		TotalDeaths:   deaths,
		TotalPatients: patients,
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Record, error) {
		return s.CreateRecord(ctx, req.Record())
	}); err != nil {
		h.pageError(w, r, err, "")
		return
	}

	slog.Info("record created", "email", req.Email, "disease_code", req.DiseaseCode)
	redirect(w, r, "/records", messageCreate)
}

// DeleteRecord handles GET /record/delete/{email}
func (h *PageHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	if _, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.Record, error) {
		return s.DeleteRecord(ctx, email)
	}); err != nil {
		h.pageError(w, r, err, "No such record found")
		return
	}

	slog.Info("record deleted", "email", email)
	redirect(w, r, "/records", messageDelete)
}

// PublicServants handles GET /publicservants
func (h *PageHandler) PublicServants(w http.ResponseWriter, r *http.Request) {
	servants, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) ([]models.PublicServant, error) {
		return s.ListPublicServants(ctx)
	})
	if err != nil {
		h.pageError(w, r, err, "")
		return
	}
	h.page(w, r, views.PagePublicServants, views.PublicServantsPage{
		Message:        statusMessage("Public Servant", r.URL.Query().Get("message")),
		PublicServants: servants,
	})
}

// GetPublicServant handles GET /publicservant/{email}
func (h *PageHandler) GetPublicServant(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	ps, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.PublicServant, error) {
		return s.GetPublicServant(ctx, email)
	})
	if err != nil {
		h.pageError(w, r, err, "No such public servant")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, ps)
}

// CreatePublicServant handles POST /publicservant/post
func (h *PageHandler) CreatePublicServant(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := models.CreatePublicServantRequest{
		Email:      formValue(r, "email"),
		Department: formValue(r, "department"),
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.PublicServant, error) {
		return s.CreatePublicServant(ctx, models.PublicServant{Email: req.Email, Department: req.Department})
	}); err != nil {
		h.pageError(w, r, err, "")
		return
	}

	slog.Info("public servant created", "email", req.Email)
	redirect(w, r, "/publicservants", messageCreate)
}

// UpdatePublicServant handles POST /publicservant/update/{email}
func (h *PageHandler) UpdatePublicServant(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	patch := models.PublicServantUpdate{Department: formOptional(r, "department")}

	if _, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.PublicServant, error) {
		return s.UpdatePublicServant(ctx, email, patch)
	}); err != nil {
		h.pageError(w, r, err, "No such public servant")
		return
	}

	slog.Info("public servant updated", "email", email)
	redirect(w, r, "/publicservants", messageUpdate)
}

// DeletePublicServant handles GET /publicservant/delete/{email}
func (h *PageHandler) DeletePublicServant(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	if _, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (models.PublicServant, error) {
		return s.DeletePublicServant(ctx, email)
	}); err != nil {
		h.pageError(w, r, err, "No such public servant")
		return
	}

	slog.Info("public servant deleted", "email", email)
	redirect(w, r, "/publicservants", messageDelete)
}

// Diseases handles GET /diseases
func (h *PageHandler) Diseases(w http.ResponseWriter, r *http.Request) {
	data, err := inSession(r, h.pool, func(ctx context.Context, s *store.Session) (views.DiseasesPage, error) {
		var (
			page views.DiseasesPage
			err  error
		)
		if page.Diseases, err = s.ListDiseases(ctx); err != nil {
			return page, err
		}
		if page.DiseaseTypes, err = s.ListDiseaseTypes(ctx); err != nil {
			return page, err
		}
		page.Discoveries, err = s.ListDiscoveries(ctx)
		return page, err
	})
	if err != nil {
		h.pageError(w, r, err, "")
		return
	}
	data.Message = statusMessage("Disease", r.URL.Query().Get("message"))
	h.page(w, r, views.PageDiseases, data)
}

func (h *PageHandler) page(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.render.Render(w, http.StatusOK, name, data); err != nil {
		slog.Error("failed to render page", "page", name, "error", err, "request_id", middleware.RequestID(r.Context()))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// pageError answers a failed form post or page load. A missing key gets a
// 404 {"message": notFound} body.
func (h *PageHandler) pageError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, store.ErrNotFound) && notFound != "":
		middleware.MessageResponse(w, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrConstraint), errors.Is(err, store.ErrRoleConflict), errors.Is(err, store.ErrRoleRequired):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("database operation failed", "error", err, "request_id", middleware.RequestID(r.Context()))
		http.Error(w, "Database error", http.StatusInternalServerError)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, path, message string) {
	http.Redirect(w, r, path+"?message="+message, http.StatusFound)
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostForm.Get(key))
}

// formOptional returns nil for a blank field
func formOptional(r *http.Request, key string) *string {
	v := formValue(r, key)
	if v == "" {
		return nil
	}
	return &v
}

// formInt returns nil for a blank field and an error when the field is not
// an integer.
func formInt(r *http.Request, key string) (*int64, error) {
	v := formValue(r, key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &n, nil
}
