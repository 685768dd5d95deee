// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the disease registry.

# Handler Types

Each handler is a struct holding the shared *store.Pool:

  - PageHandler: HTML pages and form posts (needs a *views.Renderer too)
  - UserHandler: Users and the role each one holds
  - RecordHandler: Reported death and patient counts
  - PublicServantHandler, DoctorHandler: The two user roles, plus doctor
    specializations
  - CatalogHandler: Countries, disease types, diseases and discoveries

Handlers are created via constructor functions:

	users := handlers.NewUserHandler(pool)
	pages := handlers.NewPageHandler(pool, renderer)

# Sessions

Every handler runs its store calls inside one pool.WithSession call, so a
request is one transaction that commits on success and rolls back on any
error.

# Error Mapping

JSON handlers map store errors onto status codes:

	store.ErrNotFound                      → 404
	store.ErrConstraint                    → 409
	store.ErrRoleConflict, ErrRoleRequired → 409
	malformed JSON, missing field          → 400
	anything else                          → 500 "Database error"

The HTML handlers answer a missing key with a 404 {"message": "No such
user"} body and redirect every successful post back to its listing with
?message=create, update or delete.
*/
package handlers
