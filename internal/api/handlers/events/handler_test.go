package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bus "smartpid/internal/events"
)

// syncRecorder позволяет читать тело, пока обработчик еще пишет
type syncRecorder struct {
	mu sync.Mutex
	*httptest.ResponseRecorder
}

func (r *syncRecorder) Write(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.Write(b)
}

func (r *syncRecorder) WriteString(s string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.WriteString(s)
}

func (r *syncRecorder) WriteHeader(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ResponseRecorder.WriteHeader(code)
}

func (r *syncRecorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ResponseRecorder.Flush()
}

func (r *syncRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Body.String()
}

func TestStreamForwardsEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	eventBus := bus.NewBus(nil)
	h := NewHandler(eventBus)

	router := gin.New()
	router.GET("/api/events", h.Stream)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &syncRecorder{ResponseRecorder: httptest.NewRecorder()}
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		router.ServeHTTP(rec, req)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(rec.String(), "connected")
	}, 2*time.Second, 10*time.Millisecond)

	eventBus.Publish(bus.ScreenChanged, "MainHub")
	eventBus.Publish(bus.RevisionChanged, "rev-002")

	require.Eventually(t, func() bool {
		body := rec.String()
		return strings.Contains(body, "screen:changed") && strings.Contains(body, "rev-002")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after client disconnect")
	}

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	for _, topic := range Topics {
		assert.Zero(t, eventBus.SubscriberCount(topic), topic)
	}
}

func TestStreamHeartbeat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(bus.NewBus(nil))
	h.heartbeat = 20 * time.Millisecond

	router := gin.New()
	router.GET("/api/events", h.Stream)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &syncRecorder{ResponseRecorder: httptest.NewRecorder()}
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		router.ServeHTTP(rec, req)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(rec.String(), "heartbeat")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
