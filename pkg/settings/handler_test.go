package settings

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T) (*Handler, *RepositoryStub, func()) {
	repo := NewStubSettingsRepo()
	handler := NewSettingsHandler(NewSettingsService(repo))
	return handler, repo, func() {
		repo.Cleanup()
	}
}

func TestSettingsHandler(t *testing.T) {
	t.Run("should return the raw mapping", func(t *testing.T) {
		handler, _, teardown := setupHandler(t)
		defer teardown()

		// given
		put := httptest.NewRequest(http.MethodPut, "/api/settings/budget", strings.NewReader(`{"budget": 1500}`))
		handler.SetBudget(httptest.NewRecorder(), put)

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
		rec := httptest.NewRecorder()
		handler.GetAll(rec, req)

		// then
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"monthly_budget": "1500"}`, rec.Body.String())
	})

	t.Run("should return 204 after setting a category limit", func(t *testing.T) {
		handler, repo, teardown := setupHandler(t)
		defer teardown()

		// when
		req := httptest.NewRequest(http.MethodPut, "/api/settings/limit",
			strings.NewReader(`{"category": "Food", "limit": 300}`))
		rec := httptest.NewRecorder()
		handler.SetCategoryLimit(rec, req)

		// then
		assert.Equal(t, http.StatusNoContent, rec.Code)
		loaded, err := repo.Load(req.Context())
		require.NoError(t, err)
		limit, ok := loaded.CategoryLimit("Food")
		assert.True(t, ok)
		assert.Equal(t, 300.0, limit)
	})

	t.Run("should reject a limit without a category", func(t *testing.T) {
		handler, _, teardown := setupHandler(t)
		defer teardown()

		// when
		req := httptest.NewRequest(http.MethodPut, "/api/settings/limit", strings.NewReader(`{"limit": 300}`))
		rec := httptest.NewRecorder()
		handler.SetCategoryLimit(rec, req)

		// then
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_input")
	})

	t.Run("should reject a malformed body", func(t *testing.T) {
		handler, _, teardown := setupHandler(t)
		defer teardown()

		// when
		req := httptest.NewRequest(http.MethodPut, "/api/settings/budget", strings.NewReader(`{"budget": "oops"}`))
		rec := httptest.NewRecorder()
		handler.SetBudget(rec, req)

		// then
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should toggle block mode", func(t *testing.T) {
		handler, repo, teardown := setupHandler(t)
		defer teardown()

		// when
		req := httptest.NewRequest(http.MethodPut, "/api/settings/blockmode", strings.NewReader(`{"enabled": true}`))
		rec := httptest.NewRecorder()
		handler.SetBlockMode(rec, req)

		// then
		assert.Equal(t, http.StatusNoContent, rec.Code)
		loaded, err := repo.Load(req.Context())
		require.NoError(t, err)
		assert.True(t, loaded.BlockModeEnabled)
	})
}
