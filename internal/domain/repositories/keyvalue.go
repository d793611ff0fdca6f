package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Ключи сохраняемых блобов
const (
	RevisionsKey = "smartpid_revisions"
	SessionKey   = "smartpid_session"
)

// ErrKeyNotFound ключ отсутствует в хранилище
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore хранилище непрозрачных блобов по строковому ключу
type KeyValueStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}

// LoadJSON читает блоб по ключу и разбирает его в dst.
// Отсутствие ключа возвращает ErrKeyNotFound.
func LoadJSON(ctx context.Context, store KeyValueStore, key string, dst any) error {
	raw, err := store.Load(ctx, key)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return ErrKeyNotFound
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// SaveJSON сериализует value и сохраняет по ключу
func SaveJSON(ctx context.Context, store KeyValueStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return store.Save(ctx, key, raw)
}
