package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "smartpid/server/errors"
)

func setupGinTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinRequestIDMiddleware(), GinRecoveryMiddleware())
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleHTTPError(t *testing.T) {
	router := setupGinTestRouter()
	router.GET("/missing", func(c *gin.Context) {
		HandleHTTPError(c, apperrors.NewNotFoundError("block not found", nil))
	})
	router.GET("/plain", func(c *gin.Context) {
		HandleHTTPError(c, errors.New("secret detail"))
	})

	t.Run("app error keeps status and message", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "block not found", resp.Error)
		assert.Equal(t, "req-1", resp.RequestID)
		assert.NotEmpty(t, resp.Timestamp)
	})

	t.Run("plain error hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Internal server error", resp.Error)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader), "request id is generated")
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	router := setupGinTestRouter()
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeError(t, w).Error)
}

func TestCORSPreflight(t *testing.T) {
	router := setupGinTestRouter()
	router.Use(GinCORSMiddleware())
	router.GET("/api/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	router := setupGinTestRouter()
	router.Use(GinRateLimitMiddleware(0.001, 2))
	router.POST("/act", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/act", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitDisabled(t *testing.T) {
	router := setupGinTestRouter()
	router.Use(GinRateLimitMiddleware(0, 0))
	router.POST("/act", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/act", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
