// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernc.org/sqlite"
)

func newMockPool(t *testing.T) (*Pool, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewPool(sqlx.NewDb(mockDB, "sqlmock"), sql.LevelReadCommitted), mock
}

func TestWithSession_CommitsOnSuccess(t *testing.T) {
	pool, mock := newMockPool(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM record").WithArgs("a@x.com").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := pool.WithSession(context.Background(), func(s *Session) error {
		_, err := s.exec(context.Background(), `DELETE FROM record WHERE email = ?`, "a@x.com")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithSession_RollsBackOnCallbackError(t *testing.T) {
	pool, mock := newMockPool(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := pool.WithSession(context.Background(), func(s *Session) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithSession_RollsBackOnPanic(t *testing.T) {
	pool, mock := newMockPool(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = pool.WithSession(context.Background(), func(s *Session) error {
			panic("handler bug")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithSession_BeginFailure(t *testing.T) {
	pool, mock := newMockPool(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	called := false
	err := pool.WithSession(context.Background(), func(s *Session) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithSession_CommitFailure(t *testing.T) {
	pool, mock := newMockPool(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "23503", Message: "deferred foreign key"})

	err := pool.WithSession(context.Background(), func(s *Session) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrConstraint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	pool, mock := newMockPool(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"email", "name", "surname", "salary", "phone", "cname"}))
	mock.ExpectRollback()

	err := pool.WithSession(context.Background(), func(s *Session) error {
		_, err := s.GetUser(context.Background(), "ghost@x.com")
		return err
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassify(t *testing.T) {
	plain := errors.New("connection reset")

	testCases := []struct {
		name       string
		err        error
		constraint bool
	}{
		{"nil", nil, false},
		{"plain error", plain, false},
		{"postgres unique violation", &pq.Error{Code: "23505"}, true},
		{"postgres foreign key violation", fmt.Errorf("insert: %w", &pq.Error{Code: "23503"}), true},
		{"postgres syntax error", &pq.Error{Code: "42601"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)
			assert.Equal(t, tc.constraint, errors.Is(got, ErrConstraint))
			if tc.err != nil {
				assert.ErrorIs(t, got, tc.err)
			}
		})
	}

	var liteErr *sqlite.Error
	assert.False(t, errors.As(classify(plain), &liteErr))
}
