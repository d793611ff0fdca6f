// Package wizard связывает экраны мастера со слоем хранилищ.
//
// App держит текущий контроллер экрана и пересоздает его при каждом
// событии screen:changed. Действия сериализуются мьютексом App, поэтому
// обработчики событий, вызванные синхронно изнутри действия, мьютекс не берут.
package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"smartpid/internal/domain/catalog"
	"smartpid/internal/domain/mockdata"
	"smartpid/internal/domain/navigation"
	"smartpid/internal/domain/revision"
	"smartpid/internal/domain/session"
	"smartpid/internal/events"
)

// Controller контроллер одного экрана мастера
type Controller interface {
	Screen() navigation.Screen
	// Mount готовит состояние экрана. Может перенаправить на другой экран.
	Mount(ctx context.Context) error
	// View модель представления для клиента
	View() any
}

// Deps зависимости контроллеров
type Deps struct {
	Catalog    *catalog.Store
	MockData   *mockdata.Store
	Session    *session.Store
	Navigation *navigation.StateMachine
	Revisions  *revision.Store
	Bus        *events.Bus
	Images     ImageSizer
	Logger     *slog.Logger
}

// View полное представление мастера
type View struct {
	Screen          navigation.Screen         `json:"screen"`
	ProgressPercent float64                   `json:"progressPercent"`
	Steps           []navigation.WorkflowStep `json:"steps"`
	ActiveRevision  *revision.Revision        `json:"activeRevision,omitempty"`
	Content         any                       `json:"content"`
}

// App оболочка мастера
type App struct {
	deps     Deps
	dispatch map[navigation.Screen]func() Controller

	mu          sync.Mutex
	current     Controller
	ctx         context.Context
	unsubscribe []func()
}

// New создает оболочку. Images и Logger необязательны.
func New(deps Deps) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Images == nil {
		deps.Images = fixedSize{DefaultImageWidth, DefaultImageHeight}
	}

	a := &App{deps: deps, ctx: context.Background()}
	a.dispatch = map[navigation.Screen]func() Controller{
		navigation.DivisionSelection:  func() Controller { return newDivisionSelection(&a.deps) },
		navigation.ProductSelection:   func() Controller { return newProductSelection(&a.deps) },
		navigation.PfdBlockSelection:  func() Controller { return newPfdBlockSelection(&a.deps) },
		navigation.MainHub:            func() Controller { return newMainHub(&a.deps) },
		navigation.BlockConfiguration: func() Controller { return newBlockConfiguration(&a.deps) },
	}
	return a
}

// Start подписывается на события и монтирует текущий экран
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.ctx = context.WithoutCancel(ctx)
	a.unsubscribe = append(a.unsubscribe,
		a.deps.Bus.Subscribe(events.ScreenChanged, a.onScreenChanged),
		a.deps.Bus.Subscribe(events.SelectionChanged, a.onSelectionChanged),
	)

	a.deps.Revisions.EnsureDefaultRevision(ctx)
	return a.mount(ctx, a.deps.Navigation.CurrentScreen())
}

// Stop снимает подписки
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, unsubscribe := range a.unsubscribe {
		unsubscribe()
	}
	a.unsubscribe = nil
}

// onScreenChanged вызывается синхронно из действия, мьютекс уже захвачен
func (a *App) onScreenChanged(payload any) {
	screen, ok := payload.(navigation.Screen)
	if !ok {
		a.deps.Logger.Error("unexpected screen:changed payload", "payload", fmt.Sprintf("%T", payload))
		return
	}
	if err := a.mount(a.ctx, screen); err != nil {
		a.deps.Logger.Error("screen mount failed", "screen", string(screen), "error", err)
	}
}

// onSelectionChanged перемонтирует конфигурацию блока при смене активного блока на том же экране
func (a *App) onSelectionChanged(any) {
	cfg, ok := a.current.(*BlockConfigurationController)
	if !ok {
		return
	}
	active := a.deps.Navigation.SelectedPfdBlockID()
	if active == "" || active == cfg.blockID {
		return
	}
	if err := a.mount(a.ctx, navigation.BlockConfiguration); err != nil {
		a.deps.Logger.Error("block configuration remount failed", "block_id", active, "error", err)
	}
}

// mount создает контроллер экрана. Контроллер назначается текущим до Mount,
// чтобы перенаправление из Mount заменило его новым.
func (a *App) mount(ctx context.Context, screen navigation.Screen) error {
	factory, ok := a.dispatch[screen]
	if !ok {
		a.deps.Logger.Error("no controller for screen", "screen", string(screen))
		return fmt.Errorf("%w: %q", ErrUnknownController, screen)
	}

	controller := factory()
	a.current = controller
	a.deps.Logger.Debug("mounting screen", "screen", string(screen))
	return controller.Mount(ctx)
}

// View текущее представление мастера
func (a *App) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()

	view := View{
		Screen:          a.deps.Navigation.CurrentScreen(),
		ProgressPercent: a.deps.Navigation.ProgressPercent(),
		Steps:           a.deps.Navigation.WorkflowSteps(),
	}
	if active, ok := a.deps.Revisions.Active(); ok {
		view.ActiveRevision = &active
	}
	if a.current != nil {
		view.Content = a.current.View()
	}
	return view
}

// Navigation состояние навигации
func (a *App) Navigation() navigation.State {
	return a.deps.Navigation.Snapshot()
}

// NavigateTo переход по шагу боковой панели
func (a *App) NavigateTo(screen navigation.Screen) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deps.Navigation.NavigateTo(screen)
}

// GoBack возврат на предыдущий экран
func (a *App) GoBack() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deps.Navigation.GoBack()
}

// withController выполняет действие, если текущий экран имеет тип T
func withController[T Controller](a *App, action func(T) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	controller, ok := a.current.(T)
	if !ok {
		return fmt.Errorf("%w: current screen is %s", ErrWrongScreen, a.deps.Navigation.CurrentScreen())
	}
	return action(controller)
}

// SelectDivision выбор подразделения
func (a *App) SelectDivision(divisionID string) error {
	return withController(a, func(c *DivisionSelectionController) error {
		return c.SelectDivision(divisionID)
	})
}

// ReloadCatalog повторная загрузка каталога на первом экране
func (a *App) ReloadCatalog(ctx context.Context) error {
	return withController(a, func(c *DivisionSelectionController) error {
		return c.Reload(ctx)
	})
}

// SelectProduct выбор продукта
func (a *App) SelectProduct(productID string) error {
	return withController(a, func(c *ProductSelectionController) error {
		return c.SelectProduct(productID)
	})
}

// ToggleBlock переключение блока PFD
func (a *App) ToggleBlock(blockID string) error {
	return withController(a, func(c *PfdBlockSelectionController) error {
		return c.ToggleBlock(blockID)
	})
}

// Continue фиксация набора блоков
func (a *App) Continue() error {
	return withController(a, func(c *PfdBlockSelectionController) error {
		return c.Continue()
	})
}

// ConfigureBlock открытие конфигурации блока
func (a *App) ConfigureBlock(blockID string) error {
	return withController(a, func(c *MainHubController) error {
		return c.ConfigureBlock(blockID)
	})
}

// Generate начало конфигурации с первого блока
func (a *App) Generate() error {
	return withController(a, func(c *MainHubController) error {
		return c.Generate()
	})
}

// StartOver очистка сессии и возврат на первый экран
func (a *App) StartOver(ctx context.Context) error {
	return withController(a, func(c *MainHubController) error {
		c.StartOver(ctx)
		return nil
	})
}

// SelectSheet смена активного листа
func (a *App) SelectSheet(index int) error {
	return withController(a, func(c *BlockConfigurationController) error {
		return c.SelectSheet(index)
	})
}

// ToggleItem переключение позиции листа
func (a *App) ToggleItem(itemID string) error {
	return withController(a, func(c *BlockConfigurationController) error {
		return c.ToggleItem(itemID)
	})
}

// HighlightItem подсветка позиции. Пустой id снимает подсветку.
func (a *App) HighlightItem(itemID string) error {
	return withController(a, func(c *BlockConfigurationController) error {
		return c.HighlightItem(itemID)
	})
}

// SetZoom масштаб изображения листа
func (a *App) SetZoom(zoom float64) error {
	return withController(a, func(c *BlockConfigurationController) error {
		return c.SetZoom(zoom)
	})
}

// SetImageSize натуральный размер изображения листа, измеренный клиентом
func (a *App) SetImageSize(width, height int) error {
	return withController(a, func(c *BlockConfigurationController) error {
		return c.SetImageSize(width, height)
	})
}

// Save сохранение конфигурации блока
func (a *App) Save(ctx context.Context) (session.BlockConfiguration, error) {
	var saved session.BlockConfiguration
	err := withController(a, func(c *BlockConfigurationController) error {
		var err error
		saved, err = c.Save(ctx)
		return err
	})
	return saved, err
}

// SaveAndContinue сохранение и переход к следующему ненастроенному блоку или в хаб
func (a *App) SaveAndContinue(ctx context.Context) error {
	return withController(a, func(c *BlockConfigurationController) error {
		return c.SaveAndContinue(ctx)
	})
}
