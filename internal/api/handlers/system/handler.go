// Package system служебные обработчики: проверка здоровья и метрики ошибок.
package system

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartpid/internal/api/handlers/common"
	"smartpid/internal/domain/catalog"
	apperrors "smartpid/server/errors"
	"smartpid/server/middleware"
)

// StorageStatus настроенный бэкенд и признак отката на память
type StorageStatus struct {
	Backend  string
	Degraded bool
}

// Handler системный обработчик
type Handler struct {
	baseHandler *common.BaseHandler
	catalog     *catalog.Store
	storage     StorageStatus
	version     string
	startTime   time.Time
}

// NewHandler создает системный обработчик
func NewHandler(baseHandler *common.BaseHandler, catalogStore *catalog.Store, storage StorageStatus, version string) *Handler {
	return &Handler{
		baseHandler: baseHandler,
		catalog:     catalogStore,
		storage:     storage,
		version:     version,
		startTime:   time.Now(),
	}
}

// HealthResponse состояние сервиса
type HealthResponse struct {
	Status          string    `json:"status"`
	Time            time.Time `json:"time"`
	Version         string    `json:"version"`
	CatalogLoaded   bool      `json:"catalog_loaded"`
	Storage         string    `json:"storage"`
	StorageFallback bool      `json:"storage_fallback"`
	UptimeSeconds   float64   `json:"uptime_seconds"`
}

// HandleHealth проверка здоровья.
// Незагруженный каталог или откат хранилища на память дают статус degraded, но не ошибку.
// @Summary Проверка здоровья
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) HandleHealth(c *gin.Context) {
	resp := HealthResponse{
		Status:          "healthy",
		Time:            time.Now().UTC(),
		Version:         h.version,
		CatalogLoaded:   h.catalog != nil && h.catalog.IsLoaded(),
		Storage:         h.storage.Backend,
		StorageFallback: h.storage.Degraded,
		UptimeSeconds:   time.Since(h.startTime).Seconds(),
	}
	if !resp.CatalogLoaded || resp.StorageFallback {
		resp.Status = "degraded"
	}
	h.baseHandler.WriteJSON(c, http.StatusOK, resp)
}

// HandleReady готовность к трафику для балансировщика.
// В отличие от /health отвечает 503, пока сервис деградирован.
// @Summary Проверка готовности
// @Tags system
// @Success 204
// @Failure 503 {object} middleware.ErrorResponse
// @Router /ready [get]
func (h *Handler) HandleReady(c *gin.Context) {
	if h.catalog == nil || !h.catalog.IsLoaded() {
		middleware.HandleHTTPError(c, apperrors.NewServiceUnavailableError("catalog not loaded", nil).WithContext("catalog"))
		return
	}
	if h.storage.Degraded {
		middleware.HandleHTTPError(c, apperrors.NewServiceUnavailableError("storage unavailable", nil).WithContext("storage"))
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleErrorMetrics накопленные метрики ошибок HTTP слоя
// @Summary Метрики ошибок
// @Tags system
// @Produce json
// @Success 200 {object} errors.MetricsSnapshot
// @Router /system/errors [get]
func (h *Handler) HandleErrorMetrics(c *gin.Context) {
	h.baseHandler.WriteJSON(c, http.StatusOK, middleware.GetErrorMetrics().Snapshot())
}

// HandleResetErrorMetrics сброс метрик ошибок
// @Summary Сбросить метрики ошибок
// @Tags system
// @Success 204
// @Router /system/errors [delete]
func (h *Handler) HandleResetErrorMetrics(c *gin.Context) {
	middleware.GetErrorMetrics().Reset()
	c.Status(http.StatusNoContent)
}
