// Package events поток уведомлений шины для клиентов через Server-Sent Events.
package events

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	bus "smartpid/internal/events"
)

// Topics темы, пересылаемые клиентам
var Topics = []string{
	bus.ScreenChanged,
	bus.SelectionChanged,
	bus.ConfigurationChanged,
	bus.ConfigurationCleared,
	bus.RevisionChanged,
}

const (
	defaultHeartbeat = 15 * time.Second
	bufferSize       = 32
)

// Message уведомление для клиента
type Message struct {
	Topic     string    `json:"topic"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler обработчик потока событий
type Handler struct {
	bus       *bus.Bus
	heartbeat time.Duration
}

// NewHandler создает обработчик потока
func NewHandler(eventBus *bus.Bus) *Handler {
	return &Handler{bus: eventBus, heartbeat: defaultHeartbeat}
}

// Stream SSE поток уведомлений
// @Summary Поток событий мастера
// @Description Server-Sent Events: screen:changed, selection:changed, configuration:changed, configuration:cleared, revision:changed
// @Tags events
// @Produce text/event-stream
// @Success 200 {object} Message
// @Router /events [get]
func (h *Handler) Stream(c *gin.Context) {
	defer func() {
		if panicVal := recover(); panicVal != nil {
			slog.Error("[Events] Panic in event stream",
				"panic", panicVal,
				"stack", string(debug.Stack()),
				"path", c.Request.URL.Path,
			)
		}
	}()

	// Обработчики шины вызываются синхронно из действий, поэтому только кладут в буфер
	messages := make(chan Message, bufferSize)
	unsubscribe := make([]func(), 0, len(Topics))
	for _, topic := range Topics {
		unsubscribe = append(unsubscribe, h.bus.Subscribe(topic, func(payload any) {
			select {
			case messages <- Message{Topic: topic, Payload: payload, Timestamp: time.Now().UTC()}:
			default:
				slog.Warn("[Events] Client buffer full, dropping event", "topic", topic)
			}
		}))
	}
	defer func() {
		for _, fn := range unsubscribe {
			fn()
		}
	}()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.SSEvent("connected", gin.H{"topics": Topics})
	c.Writer.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case msg := <-messages:
			c.SSEvent(msg.Topic, msg)
			c.Writer.Flush()

		case <-heartbeat.C:
			c.SSEvent("heartbeat", gin.H{"timestamp": time.Now().UTC()})
			c.Writer.Flush()

		case <-ctx.Done():
			slog.Debug("[Events] Client disconnected from event stream",
				"error", ctx.Err(),
				"path", c.Request.URL.Path,
			)
			return
		}
	}
}
