// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/disease-registry/cliparse"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx may not know
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects to the configured database and verifies the connection.
// SQLite connections always run with foreign key enforcement.
func Open(ctx context.Context, dbType, url string) (*sqlx.DB, error) {
	var dsn string
	switch dbType {
	case cliparse.DatabasePostgres:
		dsn = url
	case cliparse.DatabaseSQLite:
		dsn = sqliteDSN(url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sqlx.Open(dbType, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dbType == cliparse.DatabaseSQLite {
		// One writer; also keeps an in-memory database alive on one connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// Isolation returns the transaction isolation level sessions use.
// Postgres gets read committed; SQLite only offers serialized access.
func Isolation(dbType string) sql.IsolationLevel {
	if dbType == cliparse.DatabasePostgres {
		return sql.LevelReadCommitted
	}
	return sql.LevelDefault
}

func sqliteDSN(url string) string {
	if strings.Contains(url, "foreign_keys") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}
