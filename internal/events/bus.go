// Package events реализует синхронную шину уведомлений между хранилищами и экранами.
package events

import (
	"log/slog"
	"runtime/debug"
	"sync"
)

// Темы уведомлений
const (
	ScreenChanged        = "screen:changed"
	SelectionChanged     = "selection:changed"
	ConfigurationChanged = "configuration:changed"
	ConfigurationCleared = "configuration:cleared"
	RevisionChanged      = "revision:changed"
)

// Handler обработчик уведомления
type Handler func(payload any)

// Publisher публикует уведомления. Хранилища зависят только от него.
type Publisher interface {
	Publish(topic string, payload any)
}

type subscription struct {
	id      uint64
	handler Handler
}

// Bus реестр подписчиков по темам.
// Publish вызывает всех текущих подписчиков до возврата.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	topics map[string][]subscription
	logger *slog.Logger
}

// NewBus создает пустую шину
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		topics: make(map[string][]subscription),
		logger: logger,
	}
}

// Subscribe регистрирует обработчик и возвращает функцию отписки
func (b *Bus) Subscribe(topic string, handler Handler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.topics[topic] = append(b.topics[topic], subscription{id: id, handler: handler})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(topic, id) })
	}
}

func (b *Bus) unsubscribe(topic string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.topics[topic]
	for i, s := range subs {
		if s.id == id {
			// копия, чтобы не портить срез, который сейчас обходит Publish
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			b.topics[topic] = next
			break
		}
	}
	if len(b.topics[topic]) == 0 {
		delete(b.topics, topic)
	}
}

// Publish синхронно уведомляет подписчиков темы.
// Паника в обработчике логируется и не мешает остальным.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.RLock()
	subs := b.topics[topic]
	b.mu.RUnlock()

	for _, s := range subs {
		b.dispatch(topic, s.handler, payload)
	}
}

func (b *Bus) dispatch(topic string, handler Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				"topic", topic,
				"error", r,
				"stack", string(debug.Stack()),
			)
		}
	}()
	handler(payload)
}

// SubscriberCount количество подписчиков темы
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}
