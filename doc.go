// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the disease registry server.

The registry tracks countries, diseases and their discoveries, users with
their doctor or public servant roles, and per-user death and patient counts.
It serves HTML pages with forms at the root paths and a JSON API under /api.

# Starting the Server

The server reads flags, then the environment (and a .env file), then
defaults:

	DATABASE_URL=registry.db go run .

Or with flags against Postgres:

	go run . -p 8000 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string or SQLite file path

Optional settings:

  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): Server port (default: 8000)
  - LOG_FORMAT (-log-format): text (default) or json
  - LOG_LEVEL (-log-level): debug, info (default), warn or error
  - -env-file: dotenv file to load (default: .env, may be absent)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTML and JSON request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging with request IDs, JSON helpers
  - store: Connection pool and per-request sessions with CRUD operations
  - models: Entities, create requests and partial updates
  - views: Embedded templates and static assets
  - metrics: Prometheus collectors
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
