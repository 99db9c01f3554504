package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hamzahey/algorithm-ai/internal/model"
	"github.com/hamzahey/algorithm-ai/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/jobs/search", NewSearchHandler(service.NewJobService(store)).Search)
	return r
}

func doSearch(t *testing.T, r *gin.Engine, rawQuery string) []model.PublicJob {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs/search?"+rawQuery, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var results []model.PublicJob
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	return results
}

func TestSearchEndpoint_TagModes(t *testing.T) {
	store := newStubStore()
	owner := uuid.New()
	both := store.addJob(owner, "both", []string{"react", "remote"}, true)
	reactOnly := store.addJob(owner, "react only", []string{"react"}, true)
	store.addJob(owner, "unapproved", []string{"react", "remote"}, false)

	r := searchRouter(store)

	// Default mode is and.
	and := doSearch(t, r, "tags=react,remote")
	require.Len(t, and, 1)
	assert.Equal(t, both.ID, and[0].ID)

	or := doSearch(t, r, "tags=react,remote&mode=or")
	require.Len(t, or, 2)
	assert.Equal(t, reactOnly.ID, or[0].ID)
	assert.Equal(t, both.ID, or[1].ID)
}

func TestSearchEndpoint_TextFilter(t *testing.T) {
	store := newStubStore()
	owner := uuid.New()
	match := store.addJob(owner, "Backend Engineer", []string{"go"}, true)
	store.addJob(owner, "Designer", []string{"figma"}, true)

	results := doSearch(t, searchRouter(store), "search=backend")
	require.Len(t, results, 1)
	assert.Equal(t, match.ID, results[0].ID)
}

func TestSearchEndpoint_NoFilters(t *testing.T) {
	store := newStubStore()
	owner := uuid.New()
	store.addJob(owner, "a", []string{"go"}, true)
	store.addJob(owner, "b", []string{"go"}, true)
	store.addJob(owner, "hidden", []string{"go"}, false)

	results := doSearch(t, searchRouter(store), "")
	assert.Len(t, results, 2)
}

func TestSearchEndpoint_ProjectionOmitsOwnerAndApproval(t *testing.T) {
	store := newStubStore()
	store.addJob(uuid.New(), "visible", []string{"go"}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs/search", nil)
	searchRouter(store).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw, 1)
	assert.NotContains(t, raw[0], "userId")
	assert.NotContains(t, raw[0], "approved")
}
