// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/disease-registry/cliparse"
	"github.com/danielhkuo/disease-registry/db"
	"github.com/danielhkuo/disease-registry/store"
)

// TestDBURL is a private in-memory SQLite database; every SetupTestDB call
// gets a fresh one.
const TestDBURL = "file::memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *store.Pool {
	t.Helper()

	conn, err := db.Open(context.Background(), cliparse.DatabaseSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn.DB); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store.NewPool(conn, db.Isolation(cliparse.DatabaseSQLite))
}

// CreateTestCountry inserts a country directly
func CreateTestCountry(t *testing.T, pool *store.Pool, cname string, population int64) {
	t.Helper()

	_, err := pool.DB().Exec(`INSERT INTO country (cname, population) VALUES (?, ?)`, cname, population)
	if err != nil {
		t.Fatalf("Failed to create test country: %v", err)
	}
}

// CreateTestDisease inserts a disease type (when typeID > 0) and a disease
func CreateTestDisease(t *testing.T, pool *store.Pool, code string, typeID int64) {
	t.Helper()

	var typeRef *int64
	if typeID > 0 {
		_, err := pool.DB().Exec(`
			INSERT INTO diseasetype (id, description) VALUES (?, ?)
			ON CONFLICT (id) DO NOTHING
		`, typeID, "type")
		if err != nil {
			t.Fatalf("Failed to create test disease type: %v", err)
		}
		typeRef = &typeID
	}

	_, err := pool.DB().Exec(`
		INSERT INTO disease (disease_code, pathogen, description, id)
		VALUES (?, 'virus', 'test disease', ?)
	`, code, typeRef)
	if err != nil {
		t.Fatalf("Failed to create test disease: %v", err)
	}
}

// CreateTestUser inserts a user with fixed name fields in the given country
func CreateTestUser(t *testing.T, pool *store.Pool, email, cname string, salary int64) {
	t.Helper()

	_, err := pool.DB().Exec(`
		INSERT INTO users (email, name, surname, salary, phone, cname)
		VALUES (?, 'Test', 'User', ?, '555', ?)
	`, email, salary, cname)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestRecord inserts a record
func CreateTestRecord(t *testing.T, pool *store.Pool, email, cname, code string, deaths, patients int64) {
	t.Helper()

	_, err := pool.DB().Exec(`
		INSERT INTO record (email, cname, disease_code, total_deaths, total_patients)
		VALUES (?, ?, ?, ?, ?)
	`, email, cname, code, deaths, patients)
	if err != nil {
		t.Fatalf("Failed to create test record: %v", err)
	}
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, pool *store.Pool, table string) int {
	t.Helper()

	var n int
	if err := pool.DB().Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertRedirect checks for a 302 to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusFound)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}
