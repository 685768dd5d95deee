// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Tables lists every table in dependency order (referenced tables first).
var Tables = []string{
	"country",
	"diseasetype",
	"disease",
	"discover",
	"users",
	"doctor",
	"publicservant",
	"specialize",
	"record",
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema (statement %d): %w", i+1, err)
		}
	}

	return nil
}

// DropSchema removes every table, dependents first.
func DropSchema(db *sql.DB) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + Tables[i]); err != nil {
			return fmt.Errorf("failed to drop %s: %w", Tables[i], err)
		}
	}

	return nil
}

// One statement per entry: lib/pq accepts multi-statement strings but
// SQLite's Exec only runs the first.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS country (
    cname TEXT PRIMARY KEY,
    population INTEGER NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS diseasetype (
    id INTEGER PRIMARY KEY,
    description TEXT NOT NULL
)`,

	// "id" is the disease type, kept under the original column name
	`CREATE TABLE IF NOT EXISTS disease (
    disease_code TEXT PRIMARY KEY,
    pathogen TEXT NOT NULL,
    description TEXT NOT NULL,
    id INTEGER REFERENCES diseasetype(id)
)`,

	`CREATE INDEX IF NOT EXISTS idx_disease_type ON disease(id)`,

	`CREATE TABLE IF NOT EXISTS discover (
    cname TEXT NOT NULL REFERENCES country(cname),
    disease_code TEXT NOT NULL REFERENCES disease(disease_code),
    first_enc_date DATE NOT NULL,
    PRIMARY KEY (cname, disease_code)
)`,

	`CREATE TABLE IF NOT EXISTS users (
    email TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    surname TEXT NOT NULL,
    salary INTEGER NOT NULL,
    phone TEXT NOT NULL,
    cname TEXT NOT NULL REFERENCES country(cname)
)`,

	`CREATE INDEX IF NOT EXISTS idx_users_cname ON users(cname)`,

	`CREATE TABLE IF NOT EXISTS doctor (
    email TEXT PRIMARY KEY REFERENCES users(email),
    degree TEXT NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS publicservant (
    email TEXT PRIMARY KEY REFERENCES users(email),
    department TEXT NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS specialize (
    id INTEGER NOT NULL REFERENCES diseasetype(id),
    email TEXT NOT NULL REFERENCES users(email),
    PRIMARY KEY (id, email)
)`,

	// A record is keyed by email alone, so each user holds at most one.
	`CREATE TABLE IF NOT EXISTS record (
    email TEXT PRIMARY KEY REFERENCES users(email),
    cname TEXT NOT NULL REFERENCES country(cname),
    disease_code TEXT NOT NULL REFERENCES disease(disease_code),
    total_deaths INTEGER NOT NULL,
    total_patients INTEGER NOT NULL
)`,

	`CREATE INDEX IF NOT EXISTS idx_record_disease_code ON record(disease_code)`,
}
