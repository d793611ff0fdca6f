package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpid/internal/config"
	"smartpid/internal/container"
	"smartpid/server/middleware"
)

// eventsPath путь SSE потока, исключается из gzip
const eventsPath = "/api/events"

// Router управляет маршрутизацией приложения
type Router struct {
	engine   *gin.Engine
	config   *config.Config
	handlers *container.Handlers
	logger   *slog.Logger
}

// RegisterOptions задают опции регистрации маршрутов
type RegisterOptions struct {
	SkipSwagger bool
	SkipStatic  bool
}

// NewRouter создает gin роутер с общими middleware
func NewRouter(cfg *config.Config, handlers *container.Handlers, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}

	engine := gin.New()
	engine.Use(middleware.GinRequestIDMiddleware())
	engine.Use(middleware.GinRecoveryMiddleware())
	engine.Use(middleware.GinLoggerMiddleware(logger))
	engine.Use(middleware.GinCORSMiddleware())
	engine.Use(middleware.GinGzipMiddleware(eventsPath))

	return &Router{engine: engine, config: cfg, handlers: handlers, logger: logger}
}

// RegisterAllRoutes регистрирует все маршруты приложения
func (r *Router) RegisterAllRoutes(opts RegisterOptions) {
	h := r.handlers

	r.engine.GET("/health", h.System.HandleHealth)
	r.engine.GET("/ready", h.System.HandleReady)

	if !opts.SkipStatic && r.config.AssetsDir != "" {
		RegisterStaticRoutes(r.engine, r.config.AssetsDir)
	}
	if !opts.SkipSwagger && r.config.SwaggerEnabled {
		RegisterSwaggerRoutes(r.engine, r.config.Port)
	}

	api := r.engine.Group("/api")
	api.GET("/health", h.System.HandleHealth)
	api.GET("/events", h.Events.Stream)

	// Чтение
	api.GET("/catalog/divisions", h.Catalog.GetDivisions)
	api.GET("/catalog/divisions/:divisionId/products", h.Catalog.GetProducts)
	api.GET("/catalog/divisions/:divisionId/products/:productId/blocks", h.Catalog.GetBlocks)
	api.GET("/wizard", h.Wizard.GetView)
	api.GET("/wizard/navigation", h.Wizard.GetNavigation)
	api.GET("/session", h.Session.GetSession)
	api.GET("/session/blocks/:blockId", h.Session.GetBlock)
	api.GET("/revisions", h.Revision.GetRevisions)
	api.GET("/tools/patterns", h.Tools.GetPatterns)
	api.GET("/export", h.Spreadsheet.ExportConfiguration)
	api.GET("/system/errors", h.System.HandleErrorMetrics)

	// Изменения идут через общий лимитер
	mutate := api.Group("", middleware.GinRateLimitMiddleware(r.config.RateLimitPerSecond, r.config.RateLimitBurst))
	r.registerWizardRoutes(mutate.Group("/wizard"))

	mutate.DELETE("/session", h.Session.ClearSession)
	mutate.POST("/revisions", h.Revision.CreateRevision)
	mutate.PUT("/revisions/active", h.Revision.ActivateRevision)
	mutate.PATCH("/revisions/:id", h.Revision.UpdateDescription)
	mutate.POST("/blocks/:blockId/sheets", h.Spreadsheet.ImportSheets)
	mutate.DELETE("/system/errors", h.System.HandleResetErrorMetrics)

	tools := mutate.Group("/tools")
	tools.POST("/map", h.Tools.MapCoordinates)
	tools.POST("/match", h.Tools.MatchItems)
	tools.POST("/classify", h.Tools.Classify)

	r.engine.NoRoute(func(c *gin.Context) {
		middleware.WriteJSONError(c, "route not found", http.StatusNotFound)
	})

	r.logger.Info("routes registered", "swagger", !opts.SkipSwagger && r.config.SwaggerEnabled)
}

// registerWizardRoutes действия мастера
func (r *Router) registerWizardRoutes(wizard *gin.RouterGroup) {
	h := r.handlers.Wizard

	wizard.POST("/navigate", h.Navigate)
	wizard.POST("/back", h.Back)
	wizard.POST("/catalog/reload", h.ReloadCatalog)
	wizard.POST("/division", h.SelectDivision)
	wizard.POST("/product", h.SelectProduct)

	wizard.POST("/blocks/toggle", h.ToggleBlock)
	wizard.POST("/blocks/continue", h.ContinueBlocks)

	wizard.POST("/hub/configure", h.ConfigureBlock)
	wizard.POST("/hub/generate", h.Generate)
	wizard.POST("/hub/start-over", h.StartOver)

	block := wizard.Group("/config")
	block.POST("/sheet", h.SelectSheet)
	block.POST("/items/toggle", h.ToggleItem)
	block.POST("/highlight", h.HighlightItem)
	block.POST("/zoom", h.SetZoom)
	block.POST("/image-size", h.SetImageSize)
	block.POST("/save", h.Save)
	block.POST("/save-and-continue", h.SaveAndContinue)
}

// Engine возвращает http.Handler роутера
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
