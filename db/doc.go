// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open picks the driver from the configured type (lib/pq for postgres,
modernc.org/sqlite for sqlite) and pings before returning:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

SQLite DSNs get _pragma=foreign_keys(1) appended unless they already set it,
and the pool is limited to one connection.

Isolation reports the level sessions should request: read committed on
Postgres, the driver default on SQLite.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn.DB); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL is portable between Postgres and SQLite.

# Tables

	country, diseasetype, disease, discover, users,
	doctor, publicservant, specialize, record

# Relationships

	country 1──* users
	country 1──* discover *──1 disease
	diseasetype 1──* disease
	diseasetype 1──* specialize *──1 users
	users 1──0..1 doctor
	users 1──0..1 publicservant
	users 1──0..1 record (record is keyed by email)
	record *──1 country, record *──1 disease

Foreign keys use the default NO ACTION, so deleting a referenced row fails
while dependents exist.
*/
package db
