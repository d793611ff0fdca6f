// Package server HTTP сервер мастера Smart P&ID
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"smartpid/internal/api/routes"
	"smartpid/internal/config"
	"smartpid/internal/container"
)

// Server HTTP сервер поверх контейнера зависимостей
type Server struct {
	config     *config.Config
	container  *container.Container
	logger     *slog.Logger
	httpServer *http.Server

	handlerOnce    sync.Once
	httpHandler    http.Handler
	handlerInitErr error
}

// NewServer создает сервер. Контейнер должен быть инициализирован.
func NewServer(cfg *config.Config, c *container.Container, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{config: cfg, container: c, logger: logger}
}

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		return err
	}

	// IdleTimeout увеличен для долгих SSE соединений
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.config.Port),
		Handler:      handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start http server on %s: %w", s.httpServer.Addr, err)
	}
	return nil
}

// ServeHTTP обслуживает запрос без сетевого listener
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	handler.ServeHTTP(w, r)
}

func (s *Server) ensureHTTPHandler() (http.Handler, error) {
	s.handlerOnce.Do(func() {
		handler, err := s.buildHTTPHandler()
		if err != nil {
			s.logger.Error("failed to build http handler", "error", err)
			s.handlerInitErr = err
			return
		}
		s.httpHandler = handler
	})

	if s.handlerInitErr != nil {
		return nil, s.handlerInitErr
	}
	return s.httpHandler, nil
}

func (s *Server) buildHTTPHandler() (http.Handler, error) {
	if s.container == nil || !s.container.IsInitialized() {
		return nil, fmt.Errorf("container is not initialized")
	}

	// Режим Gin можно переопределить через GIN_MODE
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.NewRouter(s.config, s.container.Handlers, s.logger)
	router.RegisterAllRoutes(routes.RegisterOptions{})
	return router.Engine(), nil
}

// Shutdown останавливает прием запросов, затем закрывает контейнер
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	var errs []error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
	}
	if s.container != nil {
		if err := s.container.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("container shutdown: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.logger.Info("Graceful shutdown completed")
	return nil
}
