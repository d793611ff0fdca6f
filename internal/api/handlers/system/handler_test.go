package system

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpid/internal/api/handlers/common"
	"smartpid/internal/domain/catalog"
	apperrors "smartpid/server/errors"
	"smartpid/server/middleware"
)

func TestHandleHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := catalog.NewStore("", nil)
	h := NewHandler(common.NewBaseHandler(), store, StorageStatus{Backend: "memory"}, "test")

	router := gin.New()
	router.GET("/health", h.HandleHealth)

	check := func() HealthResponse {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	resp := check()
	assert.Equal(t, "degraded", resp.Status)
	assert.False(t, resp.CatalogLoaded)
	assert.Equal(t, "memory", resp.Storage)

	require.True(t, store.Load(context.Background()).IsSuccess)
	resp = check()
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "test", resp.Version)
	assert.False(t, resp.StorageFallback)
}

func TestHandleHealthStorageFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := catalog.NewStore("", nil)
	require.True(t, store.Load(context.Background()).IsSuccess)
	h := NewHandler(common.NewBaseHandler(), store, StorageStatus{Backend: "redis", Degraded: true}, "test")

	router := gin.New()
	router.GET("/health", h.HandleHealth)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.True(t, resp.CatalogLoaded)
	assert.True(t, resp.StorageFallback)
	assert.Equal(t, "redis", resp.Storage)
}

func TestHandleReady(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		load    bool
		storage StorageStatus
		code    int
		message string
	}{
		{"ready", true, StorageStatus{Backend: "sqlite"}, http.StatusNoContent, ""},
		{"catalog missing", false, StorageStatus{Backend: "sqlite"}, http.StatusServiceUnavailable, "catalog not loaded"},
		{"storage fallback", true, StorageStatus{Backend: "redis", Degraded: true}, http.StatusServiceUnavailable, "storage unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := catalog.NewStore("", nil)
			if tt.load {
				require.True(t, store.Load(context.Background()).IsSuccess)
			}
			h := NewHandler(common.NewBaseHandler(), store, tt.storage, "test")

			router := gin.New()
			router.GET("/ready", h.HandleReady)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
			require.Equal(t, tt.code, w.Code)
			if tt.message == "" {
				return
			}

			var resp middleware.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestErrorMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := common.NewBaseHandler()
	h := NewHandler(base, nil, StorageStatus{Backend: "memory"}, "test")

	router := gin.New()
	router.GET("/api/system/errors", h.HandleErrorMetrics)
	router.DELETE("/api/system/errors", h.HandleResetErrorMetrics)
	router.GET("/missing", func(c *gin.Context) { base.NotFound(c, "nothing here") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/system/errors", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/system/errors", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot apperrors.MetricsSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, int64(1), snapshot.TotalErrors)
	assert.Equal(t, int64(1), snapshot.ErrorsByCode[http.StatusNotFound])
	require.Len(t, snapshot.LastErrors, 1)
	assert.Equal(t, "nothing here", snapshot.LastErrors[0].UserMessage)
}
