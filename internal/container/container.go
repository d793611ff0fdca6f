// Package container собирает зависимости сервиса и управляет их жизненным циклом.
package container

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"smartpid/internal/application/wizard"
	"smartpid/internal/config"
	"smartpid/internal/domain/catalog"
	"smartpid/internal/domain/mandatory"
	"smartpid/internal/domain/mockdata"
	"smartpid/internal/domain/navigation"
	"smartpid/internal/domain/repositories"
	"smartpid/internal/domain/revision"
	"smartpid/internal/domain/session"
	"smartpid/internal/events"
	"smartpid/internal/infrastructure/persistence"
)

// Container контейнер зависимостей
type Container struct {
	mu sync.RWMutex

	// Конфигурация
	Config *config.Config
	Logger *slog.Logger

	// Хранилище сессии и ревизий.
	// StorageDegraded выставляется, когда настроенный бэкенд не открылся
	// и сервис работает на памяти.
	Store           repositories.KeyValueStore
	StorageDegraded bool

	// Доменные хранилища
	Bus        *events.Bus
	Catalog    *catalog.Store
	MockData   *mockdata.Store
	Navigation *navigation.StateMachine
	Session    *session.Store
	Revisions  *revision.Store
	Classifier *mandatory.Classifier

	// Мастер
	App *wizard.App

	// Обработчики (HTTP handlers)
	Handlers *Handlers

	// Контекст
	ctx    context.Context
	cancel context.CancelFunc

	initialized bool
}

// NewContainer создает пустой контейнер
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		Config: cfg,
		Logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Initialize инициализирует зависимости в порядке:
// хранилище, доменные хранилища, данные, мастер, обработчики
func (c *Container) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return fmt.Errorf("container already initialized")
	}

	// Шаг 1: Хранилище ключ-значение
	c.initStorage()

	// Шаг 2: Доменные хранилища
	if err := c.initStores(); err != nil {
		c.Store.Close()
		return fmt.Errorf("failed to initialize stores: %w", err)
	}

	// Шаг 3: Загрузка каталога, фикстур и сохраненного состояния.
	// Ошибки загрузки не останавливают запуск.
	c.loadData()

	// Шаг 4: Мастер
	if err := c.initApp(); err != nil {
		c.Store.Close()
		return fmt.Errorf("failed to start wizard: %w", err)
	}

	// Шаг 5: Обработчики
	c.initHandlers()

	c.initialized = true
	c.Logger.Info("container initialized",
		"storage", c.Config.StorageBackend,
		"storage_degraded", c.StorageDegraded,
	)
	return nil
}

// initStorage создает хранилище по настройкам.
// Недоступный бэкенд не останавливает запуск: сессия и ревизии живут в памяти
// до перезапуска, /health сообщает degraded.
func (c *Container) initStorage() {
	store, err := persistence.NewKeyValueStore(c.Config)
	if err != nil {
		c.Logger.Warn("storage unavailable, falling back to memory",
			"backend", c.Config.StorageBackend,
			"error", err,
		)
		c.Store = persistence.NewMemoryStore()
		c.StorageDegraded = true
		return
	}
	c.Store = store
	c.StorageDegraded = false
}

// initStores создает шину и доменные хранилища
func (c *Container) initStores() error {
	classifier, err := mandatory.NewClassifier(c.Config.MandatoryPatterns...)
	if err != nil {
		return fmt.Errorf("invalid mandatory pattern: %w", err)
	}
	c.Classifier = classifier

	c.Bus = events.NewBus(c.Logger)
	c.Catalog = catalog.NewStore(c.Config.CatalogPath, c.Logger)
	c.MockData = mockdata.NewStore(c.Config.MockDataDir, c.Logger)
	c.Navigation = navigation.NewStateMachine(c.Bus, c.Logger)
	c.Session = session.NewStore(c.Navigation, c.Store, c.Bus, c.Logger)
	c.Revisions = revision.NewStore(c.Store, c.Bus, c.Logger)
	return nil
}

// loadData загружает данные один раз при старте
func (c *Container) loadData() {
	if result := c.Catalog.Load(c.ctx); !result.IsSuccess {
		c.Logger.Warn("catalog not loaded, division screen will show the error", "error", result.Error)
	}
	c.MockData.Load(c.ctx)
	c.Session.Restore(c.ctx)
	c.Revisions.Restore(c.ctx)
}

// initApp создает и запускает мастер
func (c *Container) initApp() error {
	c.App = wizard.New(wizard.Deps{
		Catalog:    c.Catalog,
		MockData:   c.MockData,
		Session:    c.Session,
		Navigation: c.Navigation,
		Revisions:  c.Revisions,
		Bus:        c.Bus,
		Images:     wizard.NewAssetImages(c.Config.AssetsDir),
		Logger:     c.Logger,
	})
	return c.App.Start(c.ctx)
}

// Shutdown останавливает мастер и закрывает хранилище
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return nil
	}

	c.cancel()
	c.App.Stop()

	if err := c.Store.Close(); err != nil {
		c.Logger.Error("error closing storage", "error", err)
	}

	c.initialized = false
	c.Logger.Info("container shut down successfully")
	return nil
}

// GetContext возвращает контекст контейнера
func (c *Container) GetContext() context.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ctx
}

// IsInitialized проверяет, инициализирован ли контейнер
func (c *Container) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}
