package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "smartpid/server/errors"
)

// Глобальный сборщик метрик ошибок
var globalErrorMetrics = apperrors.NewErrorMetricsCollector(100)

// GetErrorMetrics возвращает глобальный сборщик метрик ошибок
func GetErrorMetrics() *apperrors.ErrorMetricsCollector {
	return globalErrorMetrics
}

// HTTPError ошибка с HTTP статусом и сообщением для клиента
type HTTPError interface {
	error
	StatusCode() int
	UserMessage() string
	GetContext() string
	Unwrap() error
}

// ErrorResponse структура ответа об ошибке
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteJSONError пишет JSON ошибку и логирует ее
func WriteJSONError(c *gin.Context, message string, statusCode int) {
	reqID := GetRequestIDFromGin(c)
	slog.Error("HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:     message,
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: reqID,
	})
}

// HandleHTTPError отвечает по ошибке. HTTPError задает статус и сообщение,
// прочие ошибки становятся 500 без деталей для клиента.
func HandleHTTPError(c *gin.Context, err error) {
	reqID := GetRequestIDFromGin(c)
	endpoint := c.FullPath()
	if endpoint == "" {
		endpoint = c.Request.URL.Path
	}

	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = apperrors.NewInternalError("unhandled error", err)
	}

	var appErr *apperrors.AppError
	if errors.As(httpErr, &appErr) {
		GetErrorMetrics().RecordError(appErr, endpoint, reqID)
	}

	level := slog.LevelWarn
	if httpErr.StatusCode() >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request.Context(), level, "HTTP error",
		"error", httpErr.Unwrap(),
		"user_message", httpErr.UserMessage(),
		"context", httpErr.GetContext(),
		"status_code", httpErr.StatusCode(),
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.AbortWithStatusJSON(httpErr.StatusCode(), ErrorResponse{
		Error:     httpErr.UserMessage(),
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: reqID,
	})
}
