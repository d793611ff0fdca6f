// Package wizard HTTP обработчики экранов мастера.
// Каждое действие возвращает обновленное представление мастера.
package wizard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpid/internal/api/handlers/common"
	app "smartpid/internal/application/wizard"
	"smartpid/internal/domain/navigation"
	"smartpid/internal/domain/session"
)

// Handler обработчик мастера
type Handler struct {
	baseHandler *common.BaseHandler
	app         *app.App
}

// NewHandler создает обработчик мастера
func NewHandler(baseHandler *common.BaseHandler, wizardApp *app.App) *Handler {
	return &Handler{
		baseHandler: baseHandler,
		app:         wizardApp,
	}
}

// IDRequest запрос с идентификатором сущности
type IDRequest struct {
	ID string `json:"id" binding:"required"`
}

// ScreenRequest запрос перехода на экран
type ScreenRequest struct {
	Screen string `json:"screen" binding:"required"`
}

// SheetRequest запрос смены листа
type SheetRequest struct {
	Index *int `json:"index" binding:"required"`
}

// HighlightRequest запрос подсветки. Пустой itemId снимает подсветку.
type HighlightRequest struct {
	ItemID string `json:"itemId"`
}

// ZoomRequest запрос масштаба
type ZoomRequest struct {
	Zoom float64 `json:"zoom" binding:"required"`
}

// ImageSizeRequest натуральный размер изображения
type ImageSizeRequest struct {
	Width  int `json:"width" binding:"required"`
	Height int `json:"height" binding:"required"`
}

// SaveResponse результат сохранения блока
type SaveResponse struct {
	Configuration session.BlockConfiguration `json:"configuration"`
	View          app.View                   `json:"view"`
}

// respond отвечает текущим представлением или ошибкой действия
func (h *Handler) respond(c *gin.Context, err error) {
	if err != nil {
		h.baseHandler.HandleError(c, err)
		return
	}
	h.baseHandler.WriteJSON(c, http.StatusOK, h.app.View())
}

// bind разбирает тело запроса, при ошибке отвечает 400
func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.baseHandler.BadRequest(c, "invalid request body", err)
		return false
	}
	return true
}

// GetView текущее представление мастера
// @Summary Представление мастера
// @Description Текущий экран, шаги боковой панели, активная ревизия и модель экрана
// @Tags wizard
// @Produce json
// @Success 200 {object} app.View
// @Router /wizard [get]
func (h *Handler) GetView(c *gin.Context) {
	h.baseHandler.WriteJSON(c, http.StatusOK, h.app.View())
}

// GetNavigation состояние навигации
// @Summary Состояние навигации
// @Tags wizard
// @Produce json
// @Success 200 {object} navigation.State
// @Router /wizard/navigation [get]
func (h *Handler) GetNavigation(c *gin.Context) {
	h.baseHandler.WriteJSON(c, http.StatusOK, h.app.Navigation())
}

// Navigate переход по шагу боковой панели
// @Summary Перейти на экран
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body ScreenRequest true "Экран"
// @Success 200 {object} app.View
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /wizard/navigate [post]
func (h *Handler) Navigate(c *gin.Context) {
	var req ScreenRequest
	if !h.bind(c, &req) {
		return
	}
	screen, err := navigation.ParseScreen(req.Screen)
	if err != nil {
		h.baseHandler.HandleError(c, err)
		return
	}
	h.respond(c, h.app.NavigateTo(screen))
}

// Back возврат на предыдущий экран
// @Summary Назад
// @Tags wizard
// @Produce json
// @Success 200 {object} app.View
// @Router /wizard/back [post]
func (h *Handler) Back(c *gin.Context) {
	h.respond(c, h.app.GoBack())
}

// ReloadCatalog повторная загрузка каталога
// @Summary Перезагрузить каталог
// @Tags wizard
// @Produce json
// @Success 200 {object} app.View
// @Failure 409 {object} middleware.ErrorResponse
// @Router /wizard/catalog/reload [post]
func (h *Handler) ReloadCatalog(c *gin.Context) {
	h.respond(c, h.app.ReloadCatalog(c.Request.Context()))
}

// SelectDivision выбор подразделения
// @Summary Выбрать подразделение
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body IDRequest true "ID подразделения"
// @Success 200 {object} app.View
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /wizard/division [post]
func (h *Handler) SelectDivision(c *gin.Context) {
	var req IDRequest
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.app.SelectDivision(req.ID))
}

// SelectProduct выбор продукта
// @Summary Выбрать продукт
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body IDRequest true "ID продукта"
// @Success 200 {object} app.View
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /wizard/product [post]
func (h *Handler) SelectProduct(c *gin.Context) {
	var req IDRequest
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.app.SelectProduct(req.ID))
}

// ToggleBlock переключение блока PFD
// @Summary Переключить блок PFD
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body IDRequest true "ID блока"
// @Success 200 {object} app.View
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /wizard/blocks/toggle [post]
func (h *Handler) ToggleBlock(c *gin.Context) {
	var req IDRequest
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.app.ToggleBlock(req.ID))
}

// ContinueBlocks фиксация набора блоков
// @Summary Подтвердить выбор блоков
// @Tags wizard
// @Produce json
// @Success 200 {object} app.View
// @Failure 409 {object} middleware.ErrorResponse
// @Router /wizard/blocks/continue [post]
func (h *Handler) ContinueBlocks(c *gin.Context) {
	h.respond(c, h.app.Continue())
}

// ConfigureBlock открытие конфигурации блока из хаба
// @Summary Настроить блок
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body IDRequest true "ID блока"
// @Success 200 {object} app.View
// @Failure 404 {object} middleware.ErrorResponse
// @Router /wizard/hub/configure [post]
func (h *Handler) ConfigureBlock(c *gin.Context) {
	var req IDRequest
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.app.ConfigureBlock(req.ID))
}

// Generate начало конфигурации с первого блока
// @Summary Начать конфигурацию
// @Tags wizard
// @Produce json
// @Success 200 {object} app.View
// @Router /wizard/hub/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	h.respond(c, h.app.Generate())
}

// StartOver сброс сессии
// @Summary Начать заново
// @Tags wizard
// @Produce json
// @Success 200 {object} app.View
// @Router /wizard/hub/start-over [post]
func (h *Handler) StartOver(c *gin.Context) {
	h.respond(c, h.app.StartOver(c.Request.Context()))
}

// SelectSheet смена активного листа
// @Summary Выбрать лист
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body SheetRequest true "Индекс листа"
// @Success 200 {object} app.View
// @Failure 404 {object} middleware.ErrorResponse
// @Router /wizard/config/sheet [post]
func (h *Handler) SelectSheet(c *gin.Context) {
	var req SheetRequest
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.app.SelectSheet(*req.Index))
}

// ToggleItem переключение позиции листа
// @Summary Переключить позицию
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body IDRequest true "ID позиции"
// @Success 200 {object} app.View
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /wizard/config/items/toggle [post]
func (h *Handler) ToggleItem(c *gin.Context) {
	var req IDRequest
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.app.ToggleItem(req.ID))
}

// HighlightItem подсветка позиции
// @Summary Подсветить позицию
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body HighlightRequest true "ID позиции"
// @Success 200 {object} app.View
// @Router /wizard/config/highlight [post]
func (h *Handler) HighlightItem(c *gin.Context) {
	var req HighlightRequest
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.app.HighlightItem(req.ItemID))
}

// SetZoom масштаб изображения листа
// @Summary Задать масштаб
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body ZoomRequest true "Масштаб"
// @Success 200 {object} app.View
// @Failure 400 {object} middleware.ErrorResponse
// @Router /wizard/config/zoom [post]
func (h *Handler) SetZoom(c *gin.Context) {
	var req ZoomRequest
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.app.SetZoom(req.Zoom))
}

// SetImageSize натуральный размер изображения листа
// @Summary Сообщить размер изображения
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body ImageSizeRequest true "Размер"
// @Success 200 {object} app.View
// @Failure 400 {object} middleware.ErrorResponse
// @Router /wizard/config/image-size [post]
func (h *Handler) SetImageSize(c *gin.Context) {
	var req ImageSizeRequest
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.app.SetImageSize(req.Width, req.Height))
}

// Save сохранение конфигурации блока
// @Summary Сохранить блок
// @Tags wizard
// @Produce json
// @Success 200 {object} SaveResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /wizard/config/save [post]
func (h *Handler) Save(c *gin.Context) {
	saved, err := h.app.Save(c.Request.Context())
	if err != nil {
		h.baseHandler.HandleError(c, err)
		return
	}
	h.baseHandler.WriteJSON(c, http.StatusOK, SaveResponse{Configuration: saved, View: h.app.View()})
}

// SaveAndContinue сохранение и переход к следующему блоку
// @Summary Сохранить и продолжить
// @Tags wizard
// @Produce json
// @Success 200 {object} app.View
// @Failure 409 {object} middleware.ErrorResponse
// @Router /wizard/config/save-and-continue [post]
func (h *Handler) SaveAndContinue(c *gin.Context) {
	h.respond(c, h.app.SaveAndContinue(c.Request.Context()))
}
