// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/disease-registry/models"
	"github.com/danielhkuo/disease-registry/testutil"
)

// TestConcurrentUserCreation verifies that simultaneous requests each get
// their own session and all commit.
func TestConcurrentUserCreation(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	handler := NewUserHandler(pool)
	testutil.CreateTestCountry(t, pool, "KZ", 100)

	numUsers := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numUsers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/user", models.CreateUserRequest{
				Email:   fmt.Sprintf("user%d@x.com", i),
				Name:    "N",
				Surname: "S",
				Salary:  ptr(int64(i)),
				Phone:   "1",
				CName:   "KZ",
			}, nil)
			w := httptest.NewRecorder()
			handler.CreateUser(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			} else {
				t.Errorf("User %d: expected 201, got %d: %s", i, w.Code, w.Body.String())
			}
		}(i)
	}
	wg.Wait()

	if int(successCount.Load()) != numUsers {
		t.Errorf("Expected %d successful creates, got %d", numUsers, successCount.Load())
	}
	if n := testutil.CountRows(t, pool, "users"); n != numUsers {
		t.Errorf("Expected %d users, got %d", numUsers, n)
	}
}

// TestConcurrentDuplicateCreation verifies that exactly one of several
// creates for the same email wins and the rest see a conflict.
func TestConcurrentDuplicateCreation(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	handler := NewUserHandler(pool)
	testutil.CreateTestCountry(t, pool, "KZ", 100)

	attempts := 5
	var created, conflicts atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/user", models.CreateUserRequest{
				Email: "same@x.com", Name: "N", Surname: "S", Salary: ptr(int64(1)), Phone: "1", CName: "KZ",
			}, nil)
			w := httptest.NewRecorder()
			handler.CreateUser(w, req)

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly 1 create, got %d", created.Load())
	}
	if conflicts.Load() != int32(attempts-1) {
		t.Errorf("Expected %d conflicts, got %d", attempts-1, conflicts.Load())
	}
}
