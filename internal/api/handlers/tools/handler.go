// Package tools HTTP обработчики вычислительных утилит без состояния:
// перевод координат, сопоставление позиций и классификация тегов.
package tools

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpid/internal/api/handlers/common"
	"smartpid/internal/domain/geometry"
	"smartpid/internal/domain/mandatory"
	"smartpid/internal/domain/matching"
)

// Handler обработчик утилит
type Handler struct {
	baseHandler *common.BaseHandler
	classifier  *mandatory.Classifier
}

// NewHandler создает обработчик. nil classifier заменяется стандартным.
func NewHandler(baseHandler *common.BaseHandler, classifier *mandatory.Classifier) *Handler {
	if classifier == nil {
		classifier = mandatory.Default()
	}
	return &Handler{baseHandler: baseHandler, classifier: classifier}
}

// MapRequest рамка и размеры документа
type MapRequest struct {
	BoundingBox *geometry.BoundingBox `json:"boundingBox"`
	DocWidth    float64               `json:"docWidth"`
	DocHeight   float64               `json:"docHeight"`
	Zoom        float64               `json:"zoom"`
}

// MatchRequest позиции листа и результат распознавания
type MatchRequest struct {
	Items     []matching.SpreadsheetItem `json:"items"`
	Detection *matching.DetectionResult  `json:"detection"`
}

// ClassifyRequest тексты для классификации и дополнительные шаблоны.
// ExtraPatterns добавляются к настроенным, а не заменяют их.
type ClassifyRequest struct {
	Texts         []string `json:"texts" binding:"required"`
	ExtraPatterns []string `json:"extraPatterns"`
}

// Classification результат для одного текста
type Classification struct {
	Text        string `json:"text"`
	IsMandatory bool   `json:"isMandatory"`
}

// ClassifyResponse результаты классификации
type ClassifyResponse struct {
	Results        []Classification `json:"results"`
	MandatoryCount int              `json:"mandatoryCount"`
}

// PatternsResponse активные шаблоны
type PatternsResponse struct {
	Patterns []string `json:"patterns"`
}

// MapCoordinates нормализованная рамка в пиксели области просмотра
// @Summary Перевести рамку в координаты
// @Description Нулевой результат для пустой рамки или неположительных размеров
// @Tags tools
// @Accept json
// @Produce json
// @Param request body MapRequest true "Рамка и размеры"
// @Success 200 {object} geometry.ViewerCoordinates
// @Failure 400 {object} middleware.ErrorResponse
// @Router /tools/map [post]
func (h *Handler) MapCoordinates(c *gin.Context) {
	var req MapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.baseHandler.BadRequest(c, "invalid request body", err)
		return
	}
	h.baseHandler.WriteJSON(c, http.StatusOK, geometry.MapToViewer(req.BoundingBox, req.DocWidth, req.DocHeight, req.Zoom))
}

// MatchItems сопоставление позиций листа с распознанным текстом
// @Summary Сопоставить позиции
// @Tags tools
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Позиции и распознавание"
// @Success 200 {object} matching.MatchResult
// @Failure 400 {object} middleware.ErrorResponse
// @Router /tools/match [post]
func (h *Handler) MatchItems(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.baseHandler.BadRequest(c, "invalid request body", err)
		return
	}
	h.baseHandler.WriteJSON(c, http.StatusOK, matching.Match(req.Items, req.Detection))
}

// Classify обязательность тегов по шаблонам
// @Summary Классифицировать теги
// @Tags tools
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Тексты"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /tools/classify [post]
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.baseHandler.BadRequest(c, "invalid request body", err)
		return
	}

	classifier := h.classifier
	if len(req.ExtraPatterns) > 0 {
		var err error
		classifier, err = h.classifier.With(req.ExtraPatterns...)
		if err != nil {
			h.baseHandler.BadRequest(c, "invalid pattern", err)
			return
		}
	}

	resp := ClassifyResponse{Results: make([]Classification, 0, len(req.Texts))}
	for _, text := range req.Texts {
		isMandatory := classifier.IsMandatory(text)
		if isMandatory {
			resp.MandatoryCount++
		}
		resp.Results = append(resp.Results, Classification{Text: text, IsMandatory: isMandatory})
	}
	h.baseHandler.WriteJSON(c, http.StatusOK, resp)
}

// GetPatterns активные шаблоны классификатора
// @Summary Шаблоны обязательных тегов
// @Tags tools
// @Produce json
// @Success 200 {object} PatternsResponse
// @Router /tools/patterns [get]
func (h *Handler) GetPatterns(c *gin.Context) {
	h.baseHandler.WriteJSON(c, http.StatusOK, PatternsResponse{Patterns: h.classifier.Patterns()})
}
