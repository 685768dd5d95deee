// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/disease-registry/models"
)

func render(t *testing.T, page string, data any) string {
	t.Helper()

	r, err := New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Render(w, http.StatusOK, page, data))
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	return w.Body.String()
}

func TestRender_UsersPage(t *testing.T) {
	body := render(t, PageUsers, UsersPage{
		Message:   "User was created",
		Users:     []models.User{{Email: "a@x.com", Name: "Aigerim", Surname: "B", Salary: 1250000, Phone: "123", CName: "KZ"}},
		Countries: []models.Country{{CName: "KZ", Population: 19000000}},
	})

	assert.Contains(t, body, `<p class="banner">User was created</p>`)
	assert.Contains(t, body, "Aigerim")
	assert.Contains(t, body, "1,250,000")
	assert.Contains(t, body, `<option value="KZ">KZ</option>`)
	assert.Contains(t, body, `action="/user/update/a@x.com"`)
	assert.Contains(t, body, `href="/user/delete/a@x.com"`)
}

func TestRender_NoBannerWithoutMessage(t *testing.T) {
	body := render(t, PageRecords, RecordsPage{})

	assert.NotContains(t, body, `class="banner"`)
	assert.Contains(t, body, "No records yet.")
}

func TestRender_EscapesUserInput(t *testing.T) {
	body := render(t, PagePublicServants, PublicServantsPage{
		Message:        "<script>alert(1)</script>",
		PublicServants: []models.PublicServant{{Email: "p@x.com", Department: "Health & Care"}},
	})

	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "Health &amp; Care")
}

func TestRender_DiseasesPage(t *testing.T) {
	typeID := int64(7)
	body := render(t, PageDiseases, DiseasesPage{
		Diseases: []models.Disease{
			{DiseaseCode: "covid-19", Pathogen: "virus", Description: "coronavirus", DiseaseTypeID: &typeID},
			{DiseaseCode: "hepB", Pathogen: "virus", Description: "hepatitis B"},
		},
		DiseaseTypes: []models.DiseaseType{{ID: 7, Description: "infectious"}},
		Discoveries:  []models.Discover{{CName: "China", DiseaseCode: "covid-19", FirstEncDate: models.NewDate(2019, 12, 1)}},
	})

	assert.Contains(t, body, "<td>7</td>")
	assert.Contains(t, body, "hepatitis B")
	assert.Contains(t, body, "2019-12-01")
}

func TestRender_IndexPage(t *testing.T) {
	body := render(t, PageIndex, IndexPage{Users: []models.User{{Email: "a@x.com"}}})

	assert.Contains(t, body, "1 registered users.")
	assert.Contains(t, body, "<title>Disease Registry</title>")
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	assert.Error(t, r.Render(w, http.StatusOK, "missing.html", nil))
	assert.Equal(t, 0, w.Body.Len())
}

func TestStatic(t *testing.T) {
	req := httptest.NewRequest("GET", "/static/style.css", nil)
	w := httptest.NewRecorder()

	Static().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".banner")
}

func TestStatic_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/static/app.js", nil)
	w := httptest.NewRecorder()

	Static().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
