// Package session HTTP обработчики сохраненных конфигураций блоков.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpid/internal/api/handlers/common"
	domain "smartpid/internal/domain/session"
)

// Handler обработчик сессии
type Handler struct {
	baseHandler *common.BaseHandler
	store       *domain.Store
}

// NewHandler создает обработчик сессии
func NewHandler(baseHandler *common.BaseHandler, store *domain.Store) *Handler {
	return &Handler{baseHandler: baseHandler, store: store}
}

// SessionResponse сохраненные конфигурации и прогресс по выбранным блокам
type SessionResponse struct {
	Configurations   map[string]domain.BlockConfiguration `json:"configurations"`
	ConfiguredBlocks int                                  `json:"configuredBlocks"`
	TotalBlocks      int                                  `json:"totalBlocks"`
	AllConfigured    bool                                 `json:"allConfigured"`
	NextPendingBlock string                               `json:"nextPendingBlock,omitempty"`
}

// GetSession сохраненные конфигурации
// @Summary Получить конфигурации блоков
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session [get]
func (h *Handler) GetSession(c *gin.Context) {
	resp := SessionResponse{
		Configurations:   h.store.All(),
		ConfiguredBlocks: h.store.ConfiguredBlockCount(),
		TotalBlocks:      h.store.TotalBlockCount(),
		AllConfigured:    h.store.AllBlocksConfigured(),
	}
	if next, ok := h.store.NextPendingBlockID(); ok {
		resp.NextPendingBlock = next
	}
	h.baseHandler.WriteJSON(c, http.StatusOK, resp)
}

// GetBlock конфигурация одного блока
// @Summary Получить конфигурацию блока
// @Tags session
// @Produce json
// @Param blockId path string true "ID блока"
// @Success 200 {object} session.BlockConfiguration
// @Failure 404 {object} middleware.ErrorResponse
// @Router /session/blocks/{blockId} [get]
func (h *Handler) GetBlock(c *gin.Context) {
	blockID := c.Param("blockId")
	cfg, ok := h.store.BlockConfiguration(blockID)
	if !ok {
		h.baseHandler.NotFound(c, "block "+blockID+" is not configured")
		return
	}
	h.baseHandler.WriteJSON(c, http.StatusOK, cfg)
}

// ClearSession удаляет все сохраненные конфигурации
// @Summary Очистить конфигурации
// @Tags session
// @Success 204
// @Router /session [delete]
func (h *Handler) ClearSession(c *gin.Context) {
	h.store.ClearAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}
