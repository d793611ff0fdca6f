// Package common общие помощники HTTP обработчиков.
package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpid/internal/application/wizard"
	"smartpid/internal/domain/navigation"
	"smartpid/internal/domain/revision"
	"smartpid/internal/domain/session"
	"smartpid/internal/infrastructure/spreadsheet"
	apperrors "smartpid/server/errors"
	"smartpid/server/middleware"
)

// BaseHandler единый способ ответа для всех обработчиков
type BaseHandler struct{}

// NewBaseHandler создает BaseHandler
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// WriteJSON пишет JSON ответ
func (h *BaseHandler) WriteJSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// HandleError переводит доменную ошибку в HTTP ответ
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	middleware.HandleHTTPError(c, MapError(err))
}

// BadRequest ответ 400 с сообщением
func (h *BaseHandler) BadRequest(c *gin.Context, message string, err error) {
	middleware.HandleHTTPError(c, apperrors.NewValidationError(message, err))
}

// NotFound ответ 404 с сообщением
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	middleware.HandleHTTPError(c, apperrors.NewNotFoundError(message, nil))
}

var (
	notFound = []error{
		wizard.ErrUnknownDivision,
		wizard.ErrUnknownProduct,
		wizard.ErrUnknownBlock,
		wizard.ErrUnknownSheet,
		wizard.ErrUnknownItem,
		revision.ErrRevisionNotFound,
	}
	conflict = []error{
		wizard.ErrWrongScreen,
		wizard.ErrMandatoryLocked,
		wizard.ErrNoBlocksSelected,
		wizard.ErrProductDisabled,
		navigation.ErrScreenLocked,
	}
	invalid = []error{
		wizard.ErrInvalidZoom,
		wizard.ErrInvalidImageSize,
		navigation.ErrUnknownScreen,
		session.ErrEmptyBlockID,
		spreadsheet.ErrNoItems,
	}
)

// MapError сопоставляет доменные ошибки с HTTP статусами
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case isAny(err, notFound):
		return apperrors.NewNotFoundError(err.Error(), err)
	case isAny(err, conflict):
		return apperrors.NewConflictError(err.Error(), err)
	case isAny(err, invalid):
		return apperrors.NewValidationError(err.Error(), err)
	default:
		return apperrors.NewInternalError("request failed", err)
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// StatusOf HTTP статус для ошибки после MapError
func StatusOf(err error) int {
	var httpErr middleware.HTTPError
	if errors.As(MapError(err), &httpErr) {
		return httpErr.StatusCode()
	}
	return http.StatusInternalServerError
}
