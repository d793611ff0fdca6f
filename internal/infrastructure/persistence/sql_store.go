package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"smartpid/internal/domain/repositories"
)

// DBConfig конфигурация пула соединений
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// dialect различия SQL между драйверами
type dialect struct {
	driver string
	schema string
	load   string
	upsert string
}

var (
	sqliteDialect = dialect{
		driver: "sqlite3",
		schema: `CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		load: `SELECT value FROM kv_store WHERE key = ?`,
		upsert: `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
	}

	postgresDialect = dialect{
		driver: "postgres",
		schema: `CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value BYTEA NOT NULL,
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		load: `SELECT value FROM kv_store WHERE key = $1`,
		upsert: `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
	}
)

// SQLStore хранилище блобов в таблице kv_store (SQLite или PostgreSQL)
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

// NewSQLiteStore открывает (или создает) файл SQLite.
// Путь ":memory:" дает базу в памяти, которой нужно ровно одно соединение.
func NewSQLiteStore(path string, cfg DBConfig) (*SQLStore, error) {
	if path != ":memory:" {
		// Создаем директорию, если её нет
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	} else {
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
		cfg.ConnMaxLifetime = 0
	}

	return openSQLStore(sqliteDialect, path, cfg)
}

// NewPostgresStore подключается к PostgreSQL по DSN
func NewPostgresStore(dsn string, cfg DBConfig) (*SQLStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database URL is required")
	}
	return openSQLStore(postgresDialect, dsn, cfg)
}

func openSQLStore(d dialect, dsn string, cfg DBConfig) (*SQLStore, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настройка connection pooling
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize kv schema: %w", err)
	}

	return &SQLStore{db: db, dialect: d}, nil
}

// Load читает блоб по ключу
func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, s.dialect.load, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return value, nil
}

// Save перезаписывает блоб по ключу
func (s *SQLStore) Save(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Close закрывает пул соединений
func (s *SQLStore) Close() error {
	return s.db.Close()
}
