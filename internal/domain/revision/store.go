// Package revision ведет упорядоченный список ревизий конфигурации с одной активной.
package revision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"smartpid/internal/domain/repositories"
	"smartpid/internal/events"
)

// Status статус ревизии
type Status string

const (
	StatusDraft  Status = "draft"
	StatusIssued Status = "issued"
)

// Значения по умолчанию
const (
	DefaultAuthor      = "User"
	systemAuthor       = "System"
	initialDescription = "Initial configuration"
	labelAlphabetSize  = 26
)

// ErrRevisionNotFound ревизия с таким id отсутствует
var ErrRevisionNotFound = errors.New("revision not found")

// Revision именованная отметка состояния конфигурации
type Revision struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Author      string    `json:"author"`
	Status      Status    `json:"status"`
}

// persisted формат блоба в хранилище
type persisted struct {
	Revisions []Revision `json:"revisions"`
	ActiveID  string     `json:"activeId"`
}

// Store список ревизий. Черновик может быть только один.
type Store struct {
	mu        sync.RWMutex
	revisions []Revision
	activeID  string

	kv        repositories.KeyValueStore
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewStore создает пустой список ревизий. kv может быть nil.
func NewStore(kv repositories.KeyValueStore, publisher events.Publisher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		revisions: []Revision{},
		kv:        kv,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Restore читает сохраненный список. Отсутствие или повреждение данных дает пустое состояние.
func (s *Store) Restore(ctx context.Context) {
	if s.kv == nil {
		return
	}

	var stored persisted
	if err := repositories.LoadJSON(ctx, s.kv, repositories.RevisionsKey, &stored); err != nil {
		if !errors.Is(err, repositories.ErrKeyNotFound) {
			s.logger.Warn("revision restore failed, starting empty", "error", err)
		}
		return
	}
	if stored.Revisions == nil {
		return
	}

	s.mu.Lock()
	s.revisions = stored.Revisions
	s.activeID = stored.ActiveID
	s.mu.Unlock()
}

// Revisions копия списка в порядке создания
func (s *Store) Revisions() []Revision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Revision{}, s.revisions...)
}

// ActiveID id активной ревизии
func (s *Store) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// Active активная ревизия
func (s *Store) Active() (Revision, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(s.activeID); i >= 0 {
		return s.revisions[i], true
	}
	return Revision{}, false
}

// EnsureDefaultRevision создает черновик "A", если ревизий еще нет
func (s *Store) EnsureDefaultRevision(ctx context.Context) {
	s.mu.Lock()
	if len(s.revisions) > 0 {
		s.mu.Unlock()
		return
	}
	s.revisions = append(s.revisions, Revision{
		ID:          revisionID(0),
		Name:        revisionName(0),
		Label:       revisionLabel(0),
		Description: initialDescription,
		CreatedAt:   s.now(),
		Author:      systemAuthor,
		Status:      StatusDraft,
	})
	s.activeID = s.revisions[0].ID
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// CreateRevision выпускает текущие черновики и добавляет новый активный черновик
func (s *Store) CreateRevision(ctx context.Context, description, author string) Revision {
	s.mu.Lock()
	idx := len(s.revisions)
	label := revisionLabel(idx)

	if strings.TrimSpace(description) == "" {
		description = "Revision " + label
	}
	if strings.TrimSpace(author) == "" {
		author = DefaultAuthor
	}

	for i := range s.revisions {
		if s.revisions[i].Status == StatusDraft {
			s.revisions[i].Status = StatusIssued
		}
	}

	rev := Revision{
		ID:          revisionID(idx),
		Name:        revisionName(idx),
		Label:       label,
		Description: description,
		CreatedAt:   s.now(),
		Author:      author,
		Status:      StatusDraft,
	}
	s.revisions = append(s.revisions, rev)
	s.activeID = rev.ID
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.publish(rev.ID)
	return rev
}

// SetActiveRevision переключает активную ревизию
func (s *Store) SetActiveRevision(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.indexLocked(id) < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrRevisionNotFound, id)
	}
	s.activeID = id
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.publish(id)
	return nil
}

// UpdateRevisionDescription меняет описание ревизии
func (s *Store) UpdateRevisionDescription(ctx context.Context, id, description string) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrRevisionNotFound, id)
	}
	s.revisions[i].Description = description
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.publish(id)
	return nil
}

func (s *Store) indexLocked(id string) int {
	for i := range s.revisions {
		if s.revisions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() persisted {
	return persisted{
		Revisions: append([]Revision{}, s.revisions...),
		ActiveID:  s.activeID,
	}
}

func (s *Store) persist(ctx context.Context, snapshot persisted) {
	if s.kv == nil {
		return
	}
	if err := repositories.SaveJSON(ctx, s.kv, repositories.RevisionsKey, snapshot); err != nil {
		s.logger.Warn("revision persist failed", "error", err)
	}
}

func (s *Store) publish(id string) {
	if s.publisher != nil {
		s.publisher.Publish(events.RevisionChanged, id)
	}
}

func revisionID(idx int) string {
	return fmt.Sprintf("rev-%03d", idx+1)
}

func revisionName(idx int) string {
	return fmt.Sprintf("Rev %d", idx)
}

func revisionLabel(idx int) string {
	return string(rune('A' + idx%labelAlphabetSize))
}
