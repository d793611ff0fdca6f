package persistence

import (
	"fmt"
	"strings"

	"smartpid/internal/config"
	"smartpid/internal/domain/repositories"
)

// redisKeyPrefix пространство имен ключей в общем Redis
const redisKeyPrefix = "smartpid:"

// NewKeyValueStore создает хранилище по настройкам конфигурации
func NewKeyValueStore(cfg *config.Config) (repositories.KeyValueStore, error) {
	dbCfg := DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}

	switch strings.ToLower(cfg.StorageBackend) {
	case config.StorageMemory:
		return NewMemoryStore(), nil
	case config.StorageSQLite, "":
		return NewSQLiteStore(cfg.SQLitePath, dbCfg)
	case config.StoragePostgres:
		return NewPostgresStore(cfg.PostgresDSN, dbCfg)
	case config.StorageRedis:
		return NewRedisStore(cfg.RedisURL, redisKeyPrefix)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}
