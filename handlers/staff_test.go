// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/disease-registry/models"
	"github.com/danielhkuo/disease-registry/store"
	"github.com/danielhkuo/disease-registry/testutil"
)

func setupStaff(t *testing.T) *store.Pool {
	t.Helper()

	pool := testutil.SetupTestDB(t)
	testutil.CreateTestCountry(t, pool, "KZ", 100)
	testutil.CreateTestDisease(t, pool, "covid-19", 1)
	testutil.CreateTestUser(t, pool, "doc@x.com", "KZ", 5000)
	testutil.CreateTestUser(t, pool, "ps@x.com", "KZ", 3000)
	return pool
}

func TestPublicServantLifecycle(t *testing.T) {
	pool := setupStaff(t)
	handler := NewPublicServantHandler(pool)

	w := httptest.NewRecorder()
	handler.CreatePublicServant(w, testutil.MakeRequest("POST", "/api/publicservant",
		models.CreatePublicServantRequest{Email: "ps@x.com", Department: "Health"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	req := testutil.MakeRequest("PUT", "/api/publicservant/ps@x.com", map[string]string{"department": "Statistics"}, nil)
	req.SetPathValue("email", "ps@x.com")
	w = httptest.NewRecorder()
	handler.UpdatePublicServant(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = httptest.NewRequest("GET", "/api/publicservant/ps@x.com", nil)
	req.SetPathValue("email", "ps@x.com")
	w = httptest.NewRecorder()
	handler.GetPublicServant(w, req)

	var ps models.PublicServant
	testutil.AssertJSON(t, w, &ps)
	if ps.Department != "Statistics" {
		t.Errorf("Expected department 'Statistics', got %q", ps.Department)
	}

	req = httptest.NewRequest("DELETE", "/api/publicservant/ps@x.com", nil)
	req.SetPathValue("email", "ps@x.com")
	w = httptest.NewRecorder()
	handler.DeletePublicServant(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if n := testutil.CountRows(t, pool, "publicservant"); n != 0 {
		t.Errorf("Expected no public servants, got %d", n)
	}
}

func TestRolesAreExclusive(t *testing.T) {
	pool := setupStaff(t)
	doctors := NewDoctorHandler(pool)
	servants := NewPublicServantHandler(pool)

	w := httptest.NewRecorder()
	doctors.CreateDoctor(w, testutil.MakeRequest("POST", "/api/doctor",
		models.CreateDoctorRequest{Email: "doc@x.com", Degree: "MD"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// A doctor cannot also be a public servant
	w = httptest.NewRecorder()
	servants.CreatePublicServant(w, testutil.MakeRequest("POST", "/api/publicservant",
		models.CreatePublicServantRequest{Email: "doc@x.com", Department: "Health"}, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	w = httptest.NewRecorder()
	servants.CreatePublicServant(w, testutil.MakeRequest("POST", "/api/publicservant",
		models.CreatePublicServantRequest{Email: "ps@x.com", Department: "Health"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Nor the other way round
	w = httptest.NewRecorder()
	doctors.CreateDoctor(w, testutil.MakeRequest("POST", "/api/doctor",
		models.CreateDoctorRequest{Email: "ps@x.com", Degree: "PhD"}, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestCreateDoctor_UnknownUser(t *testing.T) {
	pool := setupStaff(t)
	handler := NewDoctorHandler(pool)

	w := httptest.NewRecorder()
	handler.CreateDoctor(w, testutil.MakeRequest("POST", "/api/doctor",
		models.CreateDoctorRequest{Email: "ghost@x.com", Degree: "MD"}, nil))

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestSpecializations(t *testing.T) {
	pool := setupStaff(t)
	handler := NewDoctorHandler(pool)

	// Only doctors may specialize
	w := httptest.NewRecorder()
	handler.CreateSpecialize(w, testutil.MakeRequest("POST", "/api/specialize",
		models.CreateSpecializeRequest{ID: ptr(int64(1)), Email: "doc@x.com"}, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	w = httptest.NewRecorder()
	handler.CreateDoctor(w, testutil.MakeRequest("POST", "/api/doctor",
		models.CreateDoctorRequest{Email: "doc@x.com", Degree: "MD"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	handler.CreateSpecialize(w, testutil.MakeRequest("POST", "/api/specialize",
		models.CreateSpecializeRequest{ID: ptr(int64(1)), Email: "doc@x.com"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	handler.ListSpecializations(w, httptest.NewRequest("GET", "/api/specialize", nil))
	var specs []models.Specialize
	testutil.AssertJSON(t, w, &specs)
	if len(specs) != 1 || specs[0].ID != 1 || specs[0].Email != "doc@x.com" {
		t.Errorf("Unexpected specializations: %+v", specs)
	}

	// Deleting the doctor takes the specialization with it
	req := httptest.NewRequest("DELETE", "/api/doctor/doc@x.com", nil)
	req.SetPathValue("email", "doc@x.com")
	w = httptest.NewRecorder()
	handler.DeleteDoctor(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if n := testutil.CountRows(t, pool, "specialize"); n != 0 {
		t.Errorf("Expected specializations removed with doctor, got %d", n)
	}
}

func TestDeleteSpecialize_BadID(t *testing.T) {
	pool := setupStaff(t)
	handler := NewDoctorHandler(pool)

	req := httptest.NewRequest("DELETE", "/api/specialize/abc/doc@x.com", nil)
	req.SetPathValue("id", "abc")
	req.SetPathValue("email", "doc@x.com")
	w := httptest.NewRecorder()

	handler.DeleteSpecialize(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestDeleteSpecialize_Missing(t *testing.T) {
	pool := setupStaff(t)
	handler := NewDoctorHandler(pool)

	req := httptest.NewRequest("DELETE", "/api/specialize/1/doc@x.com", nil)
	req.SetPathValue("id", "1")
	req.SetPathValue("email", "doc@x.com")
	w := httptest.NewRecorder()

	handler.DeleteSpecialize(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
