// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"

	"github.com/danielhkuo/disease-registry/metrics"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConstraint   = errors.New("constraint violation")
	ErrRoleConflict = errors.New("user already holds another role")
	ErrRoleRequired = errors.New("user does not hold the required role")
)

// Primary result code shared by every SQLite constraint failure; extended
// codes keep it in the low byte.
const sqliteConstraint = 19

// ConstraintError is a key, foreign key, unique or not-null violation
// reported by the database. It matches ErrConstraint with errors.Is and
// unwraps to the driver error.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string {
	return "constraint violation: " + e.Err.Error()
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraint
}

// classify marks driver constraint errors; everything else passes through.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return &ConstraintError{Err: err}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code()&0xff == sqliteConstraint {
		return &ConstraintError{Err: err}
	}

	return err
}

// Pool is the process-wide connection pool. It is built once in main and
// handed to every handler.
type Pool struct {
	db        *sqlx.DB
	isolation sql.IsolationLevel
}

func NewPool(db *sqlx.DB, isolation sql.IsolationLevel) *Pool {
	return &Pool{db: db, isolation: isolation}
}

// DB returns the underlying handle
func (p *Pool) DB() *sqlx.DB {
	return p.db
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Pool) Close() error {
	return p.db.Close()
}

// WithSession runs fn inside one transaction. The transaction commits when
// fn returns nil and rolls back otherwise; the connection is released
// before WithSession returns either way.
func (p *Pool) WithSession(ctx context.Context, fn func(*Session) error) error {
	start := time.Now()

	tx, err := p.db.BeginTxx(ctx, &sql.TxOptions{Isolation: p.isolation})
	if err != nil {
		metrics.RecordSession(metrics.SessionFailed, time.Since(start))
		return fmt.Errorf("failed to begin session: %w", err)
	}

	outcome := metrics.SessionRolledBack
	defer func() {
		if outcome != metrics.SessionCommitted {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				slog.Error("failed to roll back session", "error", rbErr)
			}
		}
		metrics.RecordSession(outcome, time.Since(start))
	}()

	if err := fn(&Session{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		outcome = metrics.SessionFailed
		return fmt.Errorf("failed to commit session: %w", classify(err))
	}
	outcome = metrics.SessionCommitted

	return nil
}

// Session is one scoped unit of work. It is only valid inside the
// WithSession callback that produced it.
type Session struct {
	tx *sqlx.Tx
}

func get[T any](ctx context.Context, s *Session, query string, args ...any) (T, error) {
	var v T
	err := s.tx.GetContext(ctx, &v, s.tx.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return v, ErrNotFound
	}
	if err != nil {
		return v, classify(err)
	}
	return v, nil
}

func list[T any](ctx context.Context, s *Session, query string, args ...any) ([]T, error) {
	out := []T{}
	if err := s.tx.SelectContext(ctx, &out, s.tx.Rebind(query), args...); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (s *Session) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.tx.ExecContext(ctx, s.tx.Rebind(query), args...)
	if err != nil {
		return 0, classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Session) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var n int
	if err := s.tx.GetContext(ctx, &n, s.tx.Rebind(query), args...); err != nil {
		return false, classify(err)
	}
	return n > 0, nil
}
