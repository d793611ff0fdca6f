// Package revision HTTP обработчики ревизий конфигурации.
package revision

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpid/internal/api/handlers/common"
	domain "smartpid/internal/domain/revision"
)

// Handler обработчик ревизий
type Handler struct {
	baseHandler *common.BaseHandler
	store       *domain.Store
}

// NewHandler создает обработчик ревизий
func NewHandler(baseHandler *common.BaseHandler, store *domain.Store) *Handler {
	return &Handler{baseHandler: baseHandler, store: store}
}

// RevisionsResponse список ревизий и активная
type RevisionsResponse struct {
	Revisions []domain.Revision `json:"revisions"`
	ActiveID  string            `json:"activeId"`
}

// CreateRevisionRequest запрос новой ревизии. Пустые поля заполняются по умолчанию.
type CreateRevisionRequest struct {
	Description string `json:"description"`
	Author      string `json:"author"`
}

// ActivateRequest запрос смены активной ревизии
type ActivateRequest struct {
	ID string `json:"id" binding:"required"`
}

// UpdateDescriptionRequest запрос изменения описания
type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

// GetRevisions список ревизий
// @Summary Получить ревизии
// @Tags revisions
// @Produce json
// @Success 200 {object} RevisionsResponse
// @Router /revisions [get]
func (h *Handler) GetRevisions(c *gin.Context) {
	h.baseHandler.WriteJSON(c, http.StatusOK, RevisionsResponse{
		Revisions: h.store.Revisions(),
		ActiveID:  h.store.ActiveID(),
	})
}

// CreateRevision новая активная ревизия, прежние черновики выпускаются
// @Summary Создать ревизию
// @Tags revisions
// @Accept json
// @Produce json
// @Param request body CreateRevisionRequest false "Описание и автор"
// @Success 201 {object} revision.Revision
// @Failure 400 {object} middleware.ErrorResponse
// @Router /revisions [post]
func (h *Handler) CreateRevision(c *gin.Context) {
	var req CreateRevisionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.baseHandler.BadRequest(c, "invalid request body", err)
			return
		}
	}

	rev := h.store.CreateRevision(c.Request.Context(), req.Description, req.Author)
	h.baseHandler.WriteJSON(c, http.StatusCreated, rev)
}

// ActivateRevision смена активной ревизии
// @Summary Сделать ревизию активной
// @Tags revisions
// @Accept json
// @Produce json
// @Param request body ActivateRequest true "ID ревизии"
// @Success 200 {object} RevisionsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /revisions/active [put]
func (h *Handler) ActivateRevision(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.baseHandler.BadRequest(c, "invalid request body", err)
		return
	}
	if err := h.store.SetActiveRevision(c.Request.Context(), req.ID); err != nil {
		h.baseHandler.HandleError(c, err)
		return
	}
	h.GetRevisions(c)
}

// UpdateDescription изменение описания ревизии
// @Summary Изменить описание ревизии
// @Tags revisions
// @Accept json
// @Produce json
// @Param id path string true "ID ревизии"
// @Param request body UpdateDescriptionRequest true "Описание"
// @Success 200 {object} RevisionsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /revisions/{id} [patch]
func (h *Handler) UpdateDescription(c *gin.Context) {
	var req UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.baseHandler.BadRequest(c, "invalid request body", err)
		return
	}
	if err := h.store.UpdateRevisionDescription(c.Request.Context(), c.Param("id"), req.Description); err != nil {
		h.baseHandler.HandleError(c, err)
		return
	}
	h.GetRevisions(c)
}
