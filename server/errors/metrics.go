package errors

import (
	"net/http"
	"sync"
	"time"
)

// ErrorRecord запись об ошибке
type ErrorRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Type        string    `json:"type"`
	Code        int       `json:"code"`
	Message     string    `json:"message"`
	Endpoint    string    `json:"endpoint"`
	RequestID   string    `json:"request_id,omitempty"`
	UserMessage string    `json:"user_message"`
}

// MetricsSnapshot копия накопленных метрик
type MetricsSnapshot struct {
	TotalErrors      int64            `json:"total_errors"`
	ErrorsByType     map[string]int64 `json:"errors_by_type"`
	ErrorsByCode     map[int]int64    `json:"errors_by_code"`
	ErrorsByEndpoint map[string]int64 `json:"errors_by_endpoint"`
	LastErrors       []ErrorRecord    `json:"last_errors"`
	UptimeSeconds    float64          `json:"uptime_seconds"`
}

// ErrorMetricsCollector собирает метрики ошибок HTTP слоя
type ErrorMetricsCollector struct {
	mu sync.RWMutex

	totalErrors      int64
	errorsByType     map[string]int64
	errorsByCode     map[int]int64
	errorsByEndpoint map[string]int64

	lastErrors    []ErrorRecord
	maxLastErrors int
	startTime     time.Time
}

// NewErrorMetricsCollector создает сборщик, хранящий последние maxLast ошибок
func NewErrorMetricsCollector(maxLast int) *ErrorMetricsCollector {
	if maxLast <= 0 {
		maxLast = 100
	}
	return &ErrorMetricsCollector{
		errorsByType:     make(map[string]int64),
		errorsByCode:     make(map[int]int64),
		errorsByEndpoint: make(map[string]int64),
		lastErrors:       make([]ErrorRecord, 0),
		maxLastErrors:    maxLast,
		startTime:        time.Now(),
	}
}

// RecordError учитывает ошибку
func (emc *ErrorMetricsCollector) RecordError(err *AppError, endpoint, requestID string) {
	emc.mu.Lock()
	defer emc.mu.Unlock()

	errorType := errorType(err.Code)
	emc.totalErrors++
	emc.errorsByType[errorType]++
	emc.errorsByCode[err.Code]++
	if endpoint != "" {
		emc.errorsByEndpoint[endpoint]++
	}

	record := ErrorRecord{
		Timestamp:   time.Now(),
		Type:        errorType,
		Code:        err.Code,
		Message:     err.Error(),
		Endpoint:    endpoint,
		RequestID:   requestID,
		UserMessage: err.UserMessage(),
	}
	emc.lastErrors = append([]ErrorRecord{record}, emc.lastErrors...)
	if len(emc.lastErrors) > emc.maxLastErrors {
		emc.lastErrors = emc.lastErrors[:emc.maxLastErrors]
	}
}

func errorType(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "ValidationError"
	case http.StatusNotFound:
		return "NotFoundError"
	case http.StatusConflict:
		return "ConflictError"
	case http.StatusTooManyRequests:
		return "TooManyRequestsError"
	case http.StatusInternalServerError:
		return "InternalError"
	case http.StatusServiceUnavailable:
		return "ServiceUnavailableError"
	default:
		return "UnknownError"
	}
}

// Snapshot копия метрик
func (emc *ErrorMetricsCollector) Snapshot() MetricsSnapshot {
	emc.mu.RLock()
	defer emc.mu.RUnlock()

	s := MetricsSnapshot{
		TotalErrors:      emc.totalErrors,
		ErrorsByType:     make(map[string]int64, len(emc.errorsByType)),
		ErrorsByCode:     make(map[int]int64, len(emc.errorsByCode)),
		ErrorsByEndpoint: make(map[string]int64, len(emc.errorsByEndpoint)),
		LastErrors:       append([]ErrorRecord{}, emc.lastErrors...),
		UptimeSeconds:    time.Since(emc.startTime).Seconds(),
	}
	for k, v := range emc.errorsByType {
		s.ErrorsByType[k] = v
	}
	for k, v := range emc.errorsByCode {
		s.ErrorsByCode[k] = v
	}
	for k, v := range emc.errorsByEndpoint {
		s.ErrorsByEndpoint[k] = v
	}
	return s
}

// Reset сбрасывает метрики
func (emc *ErrorMetricsCollector) Reset() {
	emc.mu.Lock()
	defer emc.mu.Unlock()

	emc.totalErrors = 0
	emc.errorsByType = make(map[string]int64)
	emc.errorsByCode = make(map[int]int64)
	emc.errorsByEndpoint = make(map[string]int64)
	emc.lastErrors = make([]ErrorRecord, 0)
	emc.startTime = time.Now()
}
