// @title Smart P&ID API
// @version 1.0
// @description API мастера конфигурации схем P&ID: каталог, выбор блоков PFD, настройка позиций по листам, ревизии и экспорт.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name Internal Use Only

// @host localhost:8080
// @BasePath /api
// @schemes http https

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"smartpid/internal/config"
	"smartpid/internal/container"
	"smartpid/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Некорректная конфигурация: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	logger.Info("Запуск Smart P&ID сервера", "port", cfg.Port, "storage", cfg.StorageBackend)

	c, err := container.NewContainer(cfg, logger)
	if err != nil {
		log.Fatalf("Ошибка создания контейнера: %v", err)
	}
	if err := c.Initialize(); err != nil {
		log.Fatalf("Ошибка инициализации контейнера: %v", err)
	}

	srv := server.NewServer(cfg, c, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Обработка сигналов для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Получен сигнал остановки", "signal", sig.String())
	case err := <-errChan:
		if err != nil {
			logger.Error("Сервер остановлен с ошибкой", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Ошибка при остановке сервера", "error", err)
		os.Exit(1)
	}
}

// newLogger JSON логгер с уровнем из конфигурации
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: true,
	}))
}
