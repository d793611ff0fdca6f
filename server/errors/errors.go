// Package errors ошибки HTTP слоя с кодом статуса и сообщением для клиента.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError ошибка приложения с HTTP статусом и контекстом
type AppError struct {
	Code    int    `json:"status_code"`
	Message string `json:"message"`
	Err     error  `json:"-"` // внутренняя ошибка, только для логов
	Context string `json:"-"`
}

// Error реализует интерфейс error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для errors.Is и errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode HTTP статус ошибки
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage сообщение для клиента
func (e *AppError) UserMessage() string {
	return e.Message
}

// GetContext контекст ошибки
func (e *AppError) GetContext() string {
	return e.Context
}

// WithContext добавляет контекст к ошибке
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

func newAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError 404 Not Found
func NewNotFoundError(message string, err error) *AppError {
	return newAppError(http.StatusNotFound, message, err)
}

// NewValidationError 400 Bad Request
func NewValidationError(message string, err error) *AppError {
	return newAppError(http.StatusBadRequest, message, err)
}

// NewConflictError 409 Conflict
func NewConflictError(message string, err error) *AppError {
	return newAppError(http.StatusConflict, message, err)
}

// NewTooManyRequestsError 429 Too Many Requests
func NewTooManyRequestsError(message string) *AppError {
	return newAppError(http.StatusTooManyRequests, message, nil)
}

// NewServiceUnavailableError 503 Service Unavailable
func NewServiceUnavailableError(message string, err error) *AppError {
	return newAppError(http.StatusServiceUnavailable, message, err)
}

// NewInternalError 500 Internal Server Error.
// Клиент получает общее сообщение, детали остаются в логах.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Err:     errors.Join(errors.New(message), err),
	}
}
