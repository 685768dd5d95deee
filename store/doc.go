// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data access layer: a process-wide Pool and short-lived
Sessions that carry the CRUD operations for every entity.

# Sessions

A Session is one transaction. Handlers never hold one beyond a request:

	err := pool.WithSession(ctx, func(s *store.Session) error {
		user, err := s.GetUser(ctx, email)
		...
	})

WithSession commits when the callback returns nil and rolls back on an error
or a panic. Postgres sessions run at READ COMMITTED.

# Operations

Every entity has the same five operations:

	CreateX(ctx, entity)     → inserted row, re-read
	ListX(ctx)               → all rows, never nil
	GetX(ctx, key)           → row or ErrNotFound
	UpdateX(ctx, key, patch) → read, patch.Apply, write, re-read
	DeleteX(ctx, key)        → removed row or ErrNotFound

Specialize has no update. Records can also be listed by email or by disease
code, and GetUserRole reports which role a user holds.

# Errors

	ErrNotFound      key does not exist
	ErrConstraint    key, foreign key or not-null violation (*ConstraintError
	                 wraps the driver error)
	ErrRoleConflict  user already holds the other role
	ErrRoleRequired  specialization for a user who is not a doctor

Queries are written with ? placeholders and rebound for the driver, so the
same SQL runs on Postgres and SQLite.
*/
package store
