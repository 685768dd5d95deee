// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/disease-registry/cliparse"
	"github.com/danielhkuo/disease-registry/db"
	"github.com/danielhkuo/disease-registry/models"
	"github.com/danielhkuo/disease-registry/store"
)

func TestStorePostgresIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, cliparse.DatabasePostgres, dsn)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, db.DropSchema(conn.DB))
	require.NoError(t, db.CreateSchema(conn.DB))

	pool := store.NewPool(conn, db.Isolation(cliparse.DatabasePostgres))

	require.NoError(t, pool.WithSession(ctx, func(s *store.Session) error {
		if _, err := s.CreateCountry(ctx, models.Country{CName: "KZ", Population: 100}); err != nil {
			return err
		}
		_, err := s.CreateUser(ctx, models.User{Email: "a@x.com", Name: "A", Surname: "B", Salary: 1000, Phone: "123", CName: "KZ"})
		return err
	}))

	err = pool.WithSession(ctx, func(s *store.Session) error {
		_, err := s.CreateUser(ctx, models.User{Email: "b@x.com", Name: "A", Surname: "B", Salary: 1, Phone: "1", CName: "XX"})
		return err
	})
	assert.ErrorIs(t, err, store.ErrConstraint)

	require.NoError(t, pool.WithSession(ctx, func(s *store.Session) error {
		salary := int64(2000)
		u, err := s.UpdateUser(ctx, "a@x.com", models.UserUpdate{Salary: &salary})
		if err != nil {
			return err
		}
		assert.Equal(t, "A", u.Name)
		assert.Equal(t, int64(2000), u.Salary)
		return nil
	}))
}
