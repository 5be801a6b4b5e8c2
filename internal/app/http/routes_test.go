package routes_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"mybooks-app/internal/api/apitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	r := apitest.Setup(t)

	w := apitest.Do(t, r, http.MethodGet, "/health", "", nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	var body map[string]string
	apitest.DecodeJSON(t, w, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestSchemaIsServed(t *testing.T) {
	r := apitest.Setup(t)

	w := apitest.Do(t, r, http.MethodGet, "/schema", "", nil)
	apitest.AssertStatus(t, w, http.StatusOK)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc["swagger"])

	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/api/books/")
	assert.Contains(t, paths, "/api/reviews/")
}

func TestDocsPagesAreServed(t *testing.T) {
	r := apitest.Setup(t)

	w := apitest.Do(t, r, http.MethodGet, "/docs/index.html", "", nil)
	apitest.AssertStatus(t, w, http.StatusOK)

	w = apitest.Do(t, r, http.MethodGet, "/redoc", "", nil)
	apitest.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "redoc")
}

func TestUnauthenticatedAPIRequestsAre401(t *testing.T) {
	r := apitest.Setup(t)

	for _, path := range []string{"/api/books", "/api/reviews", "/api/authors", "/api/browse", "/api/genres", "/api/me"} {
		w := apitest.Do(t, r, http.MethodGet, path, "", nil)
		apitest.AssertStatus(t, w, http.StatusUnauthorized)
	}
}
