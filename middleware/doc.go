// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /users", middleware.WithLogging(pages.ListUsers))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request carries an ID: an incoming X-Request-ID is kept,
otherwise a UUID is generated. The ID is echoed in the response header and
available to handlers via RequestID(r.Context()).

# CORS Middleware

Enable cross-origin requests for browser clients:

	handler := middleware.CORS(mux)

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.MessageResponse(w, http.StatusNotFound, "No such user")

Parse JSON request bodies:

	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
