package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upb/authgate/app"
	"github.com/upb/authgate/middleware"
	"go.uber.org/zap"
)

func TestGetCurrentUserHandler(t *testing.T) {
	deps := &app.Dependencies{Logger: zap.NewNop()}

	t.Run("returns 200 with the attached identity", func(t *testing.T) {
		identity := map[string]interface{}{"id": float64(42)}

		handler := GetCurrentUserHandler(deps)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), identity))
		rec := httptest.NewRecorder()

		handler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body struct {
			Data struct {
				User map[string]interface{} `json:"user"`
			} `json:"data"`
		}
		err := json.NewDecoder(rec.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, identity, body.Data.User)
	})

	t.Run("nil identity is echoed as null", func(t *testing.T) {
		handler := GetCurrentUserHandler(deps)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), nil))
		rec := httptest.NewRecorder()

		handler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"user":null}}`, rec.Body.String())
	})

	t.Run("returns 401 when identity missing in context", func(t *testing.T) {
		handler := GetCurrentUserHandler(deps)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Access denied. No token provided."}`, rec.Body.String())
	})
}
