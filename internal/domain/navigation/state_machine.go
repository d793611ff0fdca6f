// Package navigation хранит текущий экран мастера и накопленный выбор пользователя.
package navigation

import (
	"fmt"
	"log/slog"
	"sync"

	"smartpid/internal/events"
)

// State снимок состояния навигации
type State struct {
	CurrentScreen       Screen   `json:"currentScreen"`
	SelectedDivisionID  string   `json:"selectedDivisionId,omitempty"`
	SelectedProductID   string   `json:"selectedProductId,omitempty"`
	SelectedPfdBlockID  string   `json:"selectedPfdBlockId,omitempty"`
	SelectedPfdBlockIDs []string `json:"selectedPfdBlockIds"`
}

// StateMachine конечный автомат мастера.
// Смена выбора выше по цепочке всегда очищает выбор ниже.
type StateMachine struct {
	mu    sync.RWMutex
	state State

	publisher events.Publisher
	logger    *slog.Logger
}

// NewStateMachine создает автомат на первом экране
func NewStateMachine(publisher events.Publisher, logger *slog.Logger) *StateMachine {
	if logger == nil {
		logger = slog.Default()
	}
	return &StateMachine{
		state:     State{CurrentScreen: DivisionSelection, SelectedPfdBlockIDs: []string{}},
		publisher: publisher,
		logger:    logger,
	}
}

// Snapshot копия текущего состояния
func (m *StateMachine) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *StateMachine) snapshotLocked() State {
	s := m.state
	s.SelectedPfdBlockIDs = append([]string{}, m.state.SelectedPfdBlockIDs...)
	return s
}

// CurrentScreen текущий экран
func (m *StateMachine) CurrentScreen() Screen {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.CurrentScreen
}

// SelectedDivisionID выбранное подразделение
func (m *StateMachine) SelectedDivisionID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.SelectedDivisionID
}

// SelectedProductID выбранный продукт
func (m *StateMachine) SelectedProductID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.SelectedProductID
}

// SelectedPfdBlockID активный блок
func (m *StateMachine) SelectedPfdBlockID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.SelectedPfdBlockID
}

// SelectedPfdBlockIDs копия упорядоченного набора блоков
func (m *StateMachine) SelectedPfdBlockIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string{}, m.state.SelectedPfdBlockIDs...)
}

// NavigateTo переходит на экран. Повторный переход на текущий экран ничего не делает.
func (m *StateMachine) NavigateTo(screen Screen) error {
	if !screen.Valid() {
		m.logger.Error("navigation to unknown screen", "screen", string(screen))
		return fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
	}

	m.mu.Lock()
	previousScreen := m.state.CurrentScreen
	if previousScreen == screen {
		m.mu.Unlock()
		return nil
	}
	if screen.Index() > previousScreen.Index() {
		if missing := m.missingSelectionLocked(screen); missing != "" {
			m.mu.Unlock()
			return fmt.Errorf("%w: %s requires %s", ErrScreenLocked, screen, missing)
		}
	}
	m.state.CurrentScreen = screen
	m.mu.Unlock()

	m.logger.Info("navigation", "from", string(previousScreen), "to", string(screen))
	m.publish(events.ScreenChanged, screen)
	return nil
}

// missingSelectionLocked имя недостающего выбора для экрана или пустая строка
func (m *StateMachine) missingSelectionLocked(screen Screen) string {
	s := m.state
	switch screen {
	case ProductSelection:
		if s.SelectedDivisionID == "" {
			return "division"
		}
	case PfdBlockSelection:
		if s.SelectedDivisionID == "" {
			return "division"
		}
		if s.SelectedProductID == "" {
			return "product"
		}
	case MainHub:
		if len(s.SelectedPfdBlockIDs) == 0 {
			return "pfd blocks"
		}
	case BlockConfiguration:
		if len(s.SelectedPfdBlockIDs) == 0 {
			return "pfd blocks"
		}
		if s.SelectedPfdBlockID == "" {
			return "active block"
		}
	}
	return ""
}

// IsReachable true, если на экран можно перейти из текущего состояния
func (m *StateMachine) IsReachable(screen Screen) bool {
	if !screen.Valid() {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if screen.Index() <= m.state.CurrentScreen.Index() {
		return true
	}
	return m.missingSelectionLocked(screen) == ""
}

// GoBack возвращает на предыдущий экран, очищая выбор ниже него
func (m *StateMachine) GoBack() error {
	m.mu.Lock()
	target, ok := previous[m.state.CurrentScreen]
	if !ok {
		target = DivisionSelection
	}
	cleared := m.clearDownstreamLocked(target)
	m.mu.Unlock()

	if cleared {
		m.publish(events.SelectionChanged, m.Snapshot())
	}
	return m.NavigateTo(target)
}

// clearDownstreamLocked очищает выбор, сделанный на экранах после target
func (m *StateMachine) clearDownstreamLocked(target Screen) bool {
	s := &m.state
	before := s.SelectedDivisionID != "" || s.SelectedProductID != "" || s.SelectedPfdBlockID != "" || len(s.SelectedPfdBlockIDs) > 0

	switch target {
	case DivisionSelection:
		s.SelectedDivisionID = ""
		s.SelectedProductID = ""
		s.SelectedPfdBlockID = ""
		s.SelectedPfdBlockIDs = []string{}
	case ProductSelection:
		s.SelectedProductID = ""
		s.SelectedPfdBlockID = ""
		s.SelectedPfdBlockIDs = []string{}
	case PfdBlockSelection:
		s.SelectedPfdBlockID = ""
		s.SelectedPfdBlockIDs = []string{}
	default:
		return false
	}
	return before
}

// SetSelectedDivision выбирает подразделение и сбрасывает продукт и блоки.
// Пустой id игнорируется.
func (m *StateMachine) SetSelectedDivision(divisionID string) {
	if divisionID == "" {
		return
	}
	m.mu.Lock()
	m.state.SelectedDivisionID = divisionID
	m.state.SelectedProductID = ""
	m.state.SelectedPfdBlockID = ""
	m.state.SelectedPfdBlockIDs = []string{}
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(events.SelectionChanged, snapshot)
}

// SetSelectedProduct выбирает продукт и сбрасывает блоки
func (m *StateMachine) SetSelectedProduct(productID string) {
	if productID == "" {
		return
	}
	m.mu.Lock()
	m.state.SelectedProductID = productID
	m.state.SelectedPfdBlockID = ""
	m.state.SelectedPfdBlockIDs = []string{}
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(events.SelectionChanged, snapshot)
}

// SetSelectedPfdBlock делает блок активным
func (m *StateMachine) SetSelectedPfdBlock(blockID string) {
	if blockID == "" {
		return
	}
	m.mu.Lock()
	m.state.SelectedPfdBlockID = blockID
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(events.SelectionChanged, snapshot)
}

// SetSelectedPfdBlocks сохраняет упорядоченный набор блоков и сбрасывает активный блок
func (m *StateMachine) SetSelectedPfdBlocks(blockIDs []string) {
	m.mu.Lock()
	m.state.SelectedPfdBlockIDs = append([]string{}, blockIDs...)
	m.state.SelectedPfdBlockID = ""
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(events.SelectionChanged, snapshot)
}

// Reset очищает выбор и возвращает на первый экран
func (m *StateMachine) Reset() {
	m.mu.Lock()
	m.clearDownstreamLocked(DivisionSelection)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.publish(events.SelectionChanged, snapshot)
	if err := m.NavigateTo(DivisionSelection); err != nil {
		m.logger.Error("reset navigation failed", "error", err)
	}
}

func (m *StateMachine) publish(topic string, payload any) {
	if m.publisher != nil {
		m.publisher.Publish(topic, payload)
	}
}
