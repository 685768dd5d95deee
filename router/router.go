// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/disease-registry/handlers"
	"github.com/danielhkuo/disease-registry/metrics"
	"github.com/danielhkuo/disease-registry/middleware"
	"github.com/danielhkuo/disease-registry/store"
	"github.com/danielhkuo/disease-registry/views"
)

func NewRouter(pool *store.Pool, render *views.Renderer) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	pages := handlers.NewPageHandler(pool, render)
	users := handlers.NewUserHandler(pool)
	records := handlers.NewRecordHandler(pool)
	servants := handlers.NewPublicServantHandler(pool)
	doctors := handlers.NewDoctorHandler(pool)
	catalog := handlers.NewCatalogHandler(pool)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /static/", views.Static())

	// HTML pages and form posts
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pages.Index))
	mux.HandleFunc("GET /users", middleware.WithLogging(pages.Users))
	mux.HandleFunc("GET /user/get_by_email", middleware.WithLogging(pages.GetUserByEmail))
	mux.HandleFunc("POST /user/post", middleware.WithLogging(pages.CreateUser))
	mux.HandleFunc("POST /user/update/{email}", middleware.WithLogging(pages.UpdateUser))
	mux.HandleFunc("GET /user/delete/{email}", middleware.WithLogging(pages.DeleteUser))
	mux.HandleFunc("GET /records", middleware.WithLogging(pages.Records))
	mux.HandleFunc("POST /record/post", middleware.WithLogging(pages.CreateRecord))
	mux.HandleFunc("GET /record/delete/{email}", middleware.WithLogging(pages.DeleteRecord))
	mux.HandleFunc("GET /publicservants", middleware.WithLogging(pages.PublicServants))
	mux.HandleFunc("POST /publicservant/post", middleware.WithLogging(pages.CreatePublicServant))
	mux.HandleFunc("POST /publicservant/update/{email}", middleware.WithLogging(pages.UpdatePublicServant))
	mux.HandleFunc("GET /publicservant/delete/{email}", middleware.WithLogging(pages.DeletePublicServant))
	mux.HandleFunc("GET /publicservant/{email}", middleware.WithLogging(pages.GetPublicServant))
	mux.HandleFunc("GET /diseases", middleware.WithLogging(pages.Diseases))

	// Users
	mux.HandleFunc("GET /api/user", middleware.WithLogging(users.ListUsers))
	mux.HandleFunc("POST /api/user", middleware.WithLogging(users.CreateUser))
	mux.HandleFunc("GET /api/user/{email}", middleware.WithLogging(users.GetUser))
	mux.HandleFunc("PUT /api/user/{email}", middleware.WithLogging(users.UpdateUser))
	mux.HandleFunc("DELETE /api/user/{email}", middleware.WithLogging(users.DeleteUser))
	mux.HandleFunc("GET /api/user/{email}/role", middleware.WithLogging(users.GetUserRole))

	// Records
	mux.HandleFunc("GET /api/record", middleware.WithLogging(records.ListRecords))
	mux.HandleFunc("POST /api/record", middleware.WithLogging(records.CreateRecord))
	mux.HandleFunc("GET /api/record/email/{email}", middleware.WithLogging(records.ListRecordsByEmail))
	mux.HandleFunc("GET /api/record/disease/{code}", middleware.WithLogging(records.ListRecordsByDisease))
	mux.HandleFunc("PUT /api/record/{email}", middleware.WithLogging(records.UpdateRecord))
	mux.HandleFunc("DELETE /api/record/{email}", middleware.WithLogging(records.DeleteRecord))

	// Roles
	mux.HandleFunc("GET /api/publicservant", middleware.WithLogging(servants.ListPublicServants))
	mux.HandleFunc("POST /api/publicservant", middleware.WithLogging(servants.CreatePublicServant))
	mux.HandleFunc("GET /api/publicservant/{email}", middleware.WithLogging(servants.GetPublicServant))
	mux.HandleFunc("PUT /api/publicservant/{email}", middleware.WithLogging(servants.UpdatePublicServant))
	mux.HandleFunc("DELETE /api/publicservant/{email}", middleware.WithLogging(servants.DeletePublicServant))

	mux.HandleFunc("GET /api/doctor", middleware.WithLogging(doctors.ListDoctors))
	mux.HandleFunc("POST /api/doctor", middleware.WithLogging(doctors.CreateDoctor))
	mux.HandleFunc("GET /api/doctor/{email}", middleware.WithLogging(doctors.GetDoctor))
	mux.HandleFunc("PUT /api/doctor/{email}", middleware.WithLogging(doctors.UpdateDoctor))
	mux.HandleFunc("DELETE /api/doctor/{email}", middleware.WithLogging(doctors.DeleteDoctor))

	mux.HandleFunc("GET /api/specialize", middleware.WithLogging(doctors.ListSpecializations))
	mux.HandleFunc("POST /api/specialize", middleware.WithLogging(doctors.CreateSpecialize))
	mux.HandleFunc("DELETE /api/specialize/{id}/{email}", middleware.WithLogging(doctors.DeleteSpecialize))

	// Catalog
	mux.HandleFunc("GET /api/country", middleware.WithLogging(catalog.ListCountries))
	mux.HandleFunc("POST /api/country", middleware.WithLogging(catalog.CreateCountry))
	mux.HandleFunc("GET /api/country/{cname}", middleware.WithLogging(catalog.GetCountry))
	mux.HandleFunc("PUT /api/country/{cname}", middleware.WithLogging(catalog.UpdateCountry))
	mux.HandleFunc("DELETE /api/country/{cname}", middleware.WithLogging(catalog.DeleteCountry))

	mux.HandleFunc("GET /api/diseasetype", middleware.WithLogging(catalog.ListDiseaseTypes))
	mux.HandleFunc("POST /api/diseasetype", middleware.WithLogging(catalog.CreateDiseaseType))
	mux.HandleFunc("GET /api/diseasetype/{id}", middleware.WithLogging(catalog.GetDiseaseType))
	mux.HandleFunc("PUT /api/diseasetype/{id}", middleware.WithLogging(catalog.UpdateDiseaseType))
	mux.HandleFunc("DELETE /api/diseasetype/{id}", middleware.WithLogging(catalog.DeleteDiseaseType))

	mux.HandleFunc("GET /api/disease", middleware.WithLogging(catalog.ListDiseases))
	mux.HandleFunc("POST /api/disease", middleware.WithLogging(catalog.CreateDisease))
	mux.HandleFunc("GET /api/disease/{code}", middleware.WithLogging(catalog.GetDisease))
	mux.HandleFunc("PUT /api/disease/{code}", middleware.WithLogging(catalog.UpdateDisease))
	mux.HandleFunc("DELETE /api/disease/{code}", middleware.WithLogging(catalog.DeleteDisease))

	mux.HandleFunc("GET /api/discover", middleware.WithLogging(catalog.ListDiscoveries))
	mux.HandleFunc("POST /api/discover", middleware.WithLogging(catalog.CreateDiscover))
	mux.HandleFunc("GET /api/discover/{cname}/{code}", middleware.WithLogging(catalog.GetDiscover))
	mux.HandleFunc("PUT /api/discover/{cname}/{code}", middleware.WithLogging(catalog.UpdateDiscover))
	mux.HandleFunc("DELETE /api/discover/{cname}/{code}", middleware.WithLogging(catalog.DeleteDiscover))

	// The metrics middleware must see the mux directly so it can read the
	// matched pattern after dispatch.
	return middleware.CORS(metrics.InstrumentHandler(mux))
}
