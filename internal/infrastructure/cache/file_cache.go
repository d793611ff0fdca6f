// Package cache кэширует значения, вычисленные по файлам ассетов.
package cache

import (
	"sync"
	"time"
)

// FileCache кэш значений по пути к файлу.
// Запись сбрасывается по истечении TTL или при изменении файла.
type FileCache[V any] struct {
	mu      sync.Mutex
	values  map[string]V
	expiry  map[string]time.Time
	ttl     time.Duration
	tracker *ModificationTracker
	now     func() time.Time
}

// NewFileCache создает кэш. Неположительный ttl означает бессрочные записи.
func NewFileCache[V any](ttl time.Duration) *FileCache[V] {
	return &FileCache[V]{
		values:  make(map[string]V),
		expiry:  make(map[string]time.Time),
		ttl:     ttl,
		tracker: NewModificationTracker(),
		now:     time.Now,
	}
}

// Get возвращает значение из кэша или вычисляет его через load
func (c *FileCache[V]) Get(path string, load func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := c.tracker.Changed(path)
	if value, ok := c.values[path]; ok && !changed && !c.expired(path) {
		return value
	}

	value := load()
	c.values[path] = value
	if c.ttl > 0 {
		c.expiry[path] = c.now().Add(c.ttl)
	}
	return value
}

func (c *FileCache[V]) expired(path string) bool {
	if c.ttl <= 0 {
		return false
	}
	expiry, ok := c.expiry[path]
	return !ok || !c.now().Before(expiry)
}

// Invalidate удаляет запись
func (c *FileCache[V]) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, path)
	delete(c.expiry, path)
	c.tracker.Forget(path)
}

// Len количество записей
func (c *FileCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}
