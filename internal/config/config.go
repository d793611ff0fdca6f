package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Бэкенды хранения сессии и ревизий
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Хранилище
	StorageBackend string `json:"storage_backend"`
	SQLitePath     string `json:"sqlite_path"`
	PostgresDSN    string `json:"postgres_dsn"`
	RedisURL       string `json:"redis_url"`

	// Connection pooling
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Источники данных
	CatalogPath string `json:"catalog_path"`
	MockDataDir string `json:"mock_data_dir"`
	AssetsDir   string `json:"assets_dir"`

	// Дополнительные шаблоны обязательных тегов
	MandatoryPatterns []string `json:"mandatory_patterns"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Swagger UI
	SwaggerEnabled bool `json:"swagger_enabled"`

	// Ограничение частоты изменяющих запросов
	RateLimitPerSecond float64 `json:"rate_limit_per_second"`
	RateLimitBurst     int     `json:"rate_limit_burst"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Файл .env (если есть) подгружается заранее и не перекрывает уже заданные переменные.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	config := &Config{
		// Сервер
		Port:            getEnv("SERVER_PORT", "8080"),
		ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 0),
		ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),

		// Хранилище
		StorageBackend: getEnv("STORAGE_BACKEND", StorageSQLite),
		SQLitePath:     getEnv("SQLITE_PATH", "smartpid.db"),
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Connection pooling
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 2),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		// Источники данных
		CatalogPath: os.Getenv("CATALOG_PATH"),
		MockDataDir: getEnv("MOCK_DATA_DIR", "data/mock"),
		AssetsDir:   getEnv("ASSETS_DIR", "assets"),

		MandatoryPatterns: getEnvList("MANDATORY_EXTRA_PATTERNS"),

		// Логирование
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),

		RateLimitPerSecond: getEnvFloat("RATE_LIMIT_PER_SECOND", 20),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 40),
	}

	// Валидация
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat получает переменную окружения как float64 или возвращает значение по умолчанию
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvBool получает переменную окружения как bool или возвращает значение по умолчанию
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvList разбирает список через запятую, пустые элементы пропускаются
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
