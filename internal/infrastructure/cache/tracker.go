package cache

import (
	"os"
	"sync"
	"time"
)

// ModificationTracker отслеживает время изменения файлов
type ModificationTracker struct {
	mu           sync.Mutex
	lastModified map[string]time.Time // путь -> время последней модификации
}

// NewModificationTracker создает трекер изменений
func NewModificationTracker() *ModificationTracker {
	return &ModificationTracker{lastModified: make(map[string]time.Time)}
}

// Changed сообщает, изменился ли файл с прошлой проверки, и запоминает текущее время модификации.
// Первая проверка и отсутствующий файл считаются изменением.
func (t *ModificationTracker) Changed(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		t.Forget(path)
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	modTime := info.ModTime()
	last, exists := t.lastModified[path]
	t.lastModified[path] = modTime
	return !exists || !modTime.Equal(last)
}

// Forget удаляет файл из отслеживания
func (t *ModificationTracker) Forget(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.lastModified, path)
}
