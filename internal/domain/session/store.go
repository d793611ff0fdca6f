// Package session хранит конфигурации блоков текущей сессии мастера.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"smartpid/internal/domain/repositories"
	"smartpid/internal/events"
)

// ErrEmptyBlockID не указан блок
var ErrEmptyBlockID = errors.New("block id is required")

// BlockSequence упорядоченный набор выбранных блоков
type BlockSequence interface {
	SelectedPfdBlockIDs() []string
}

// Store конфигурации блоков. Каждое изменение сохраняет всю карту одним блобом.
type Store struct {
	mu      sync.RWMutex
	configs map[string]BlockConfiguration

	blocks    BlockSequence
	kv        repositories.KeyValueStore
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewStore создает пустое хранилище. kv может быть nil.
func NewStore(blocks BlockSequence, kv repositories.KeyValueStore, publisher events.Publisher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		configs:   make(map[string]BlockConfiguration),
		blocks:    blocks,
		kv:        kv,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Restore загружает сохраненные конфигурации. Отсутствие или повреждение данных дает пустое состояние.
func (s *Store) Restore(ctx context.Context) {
	if s.kv == nil {
		return
	}

	var stored map[string]BlockConfiguration
	if err := repositories.LoadJSON(ctx, s.kv, repositories.SessionKey, &stored); err != nil {
		if !errors.Is(err, repositories.ErrKeyNotFound) {
			s.logger.Warn("session restore failed, starting empty", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.configs = make(map[string]BlockConfiguration, len(stored))
	for id, cfg := range stored {
		if cfg.SheetConfigurations == nil {
			cfg.SheetConfigurations = map[string]SheetConfiguration{}
		}
		s.configs[id] = cfg
	}
	s.mu.Unlock()

	s.logger.Debug("session restored", "blocks", len(stored))
}

// SaveBlockConfiguration заменяет конфигурацию блока и помечает его настроенным
func (s *Store) SaveBlockConfiguration(ctx context.Context, blockID, blockName string, sheets []SheetConfiguration) (BlockConfiguration, error) {
	if blockID == "" {
		return BlockConfiguration{}, ErrEmptyBlockID
	}

	cfg := BlockConfiguration{
		BlockID:             blockID,
		BlockName:           blockName,
		IsConfigured:        true,
		LastSavedUTC:        s.now(),
		SheetConfigurations: make(map[string]SheetConfiguration, len(sheets)),
	}
	for _, sheet := range sheets {
		cfg.SheetConfigurations[sheet.SheetName] = SheetConfiguration{
			SheetName:       sheet.SheetName,
			SelectedItemIDs: append([]string{}, sheet.SelectedItemIDs...),
		}
	}

	s.mu.Lock()
	s.configs[blockID] = cfg
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.publish(events.ConfigurationChanged, blockID)
	return cfg.clone(), nil
}

// BlockConfiguration сохраненная конфигурация блока
func (s *Store) BlockConfiguration(blockID string) (BlockConfiguration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[blockID]
	if !ok {
		return BlockConfiguration{}, false
	}
	return cfg.clone(), true
}

// All копия всех конфигураций
func (s *Store) All() map[string]BlockConfiguration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// IsBlockConfigured true, если блок сохранен как настроенный
func (s *Store) IsBlockConfigured(blockID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.configs[blockID].IsConfigured
}

// NextPendingBlockID первый по порядку выбора ненастроенный блок
func (s *Store) NextPendingBlockID() (string, bool) {
	for _, blockID := range s.selectedBlocks() {
		if !s.IsBlockConfigured(blockID) {
			return blockID, true
		}
	}
	return "", false
}

// ConfiguredBlockCount число настроенных блоков
func (s *Store) ConfiguredBlockCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, cfg := range s.configs {
		if cfg.IsConfigured {
			n++
		}
	}
	return n
}

// TotalBlockCount число выбранных блоков
func (s *Store) TotalBlockCount() int {
	return len(s.selectedBlocks())
}

// AllBlocksConfigured true, если выбран хотя бы один блок и все настроены
func (s *Store) AllBlocksConfigured() bool {
	total := s.TotalBlockCount()
	return total > 0 && s.ConfiguredBlockCount() == total
}

// ClearAll удаляет все конфигурации
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	s.configs = make(map[string]BlockConfiguration)
	s.mu.Unlock()

	s.persist(ctx, map[string]BlockConfiguration{})
	s.publish(events.ConfigurationCleared, nil)
}

func (s *Store) selectedBlocks() []string {
	if s.blocks == nil {
		return nil
	}
	return s.blocks.SelectedPfdBlockIDs()
}

func (s *Store) snapshotLocked() map[string]BlockConfiguration {
	out := make(map[string]BlockConfiguration, len(s.configs))
	for id, cfg := range s.configs {
		out[id] = cfg.clone()
	}
	return out
}

func (s *Store) persist(ctx context.Context, snapshot map[string]BlockConfiguration) {
	if s.kv == nil {
		return
	}
	if err := repositories.SaveJSON(ctx, s.kv, repositories.SessionKey, snapshot); err != nil {
		s.logger.Warn("session persist failed", "error", err)
	}
}

func (s *Store) publish(topic string, payload any) {
	if s.publisher != nil {
		s.publisher.Publish(topic, payload)
	}
}
