package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация хранилища
	switch strings.ToLower(c.StorageBackend) {
	case StorageMemory:
	case StorageSQLite:
		if c.SQLitePath == "" {
			errors = append(errors, "sqlite path is required for sqlite storage")
		}
	case StoragePostgres:
		if c.PostgresDSN == "" {
			errors = append(errors, "postgres DSN is required for postgres storage")
		}
	case StorageRedis:
		if c.RedisURL == "" {
			errors = append(errors, "redis URL is required for redis storage")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid storage backend: %s (valid: %s)",
			c.StorageBackend, strings.Join([]string{StorageMemory, StorageSQLite, StoragePostgres, StorageRedis}, ", ")))
	}

	// Валидация connection pooling
	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 0 {
		errors = append(errors, "max idle connections cannot be negative")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	// Валидация таймаутов
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		errors = append(errors, "server timeouts cannot be negative")
	}
	if c.ShutdownTimeout < time.Second {
		errors = append(errors, "shutdown timeout must be at least 1 second")
	}

	// Валидация rate limit
	if c.RateLimitPerSecond < 0 {
		errors = append(errors, "rate limit cannot be negative")
	}
	if c.RateLimitPerSecond > 0 && c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}

	// Валидация шаблонов обязательных тегов
	for _, pattern := range c.MandatoryPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			errors = append(errors, fmt.Sprintf("invalid mandatory pattern %q: %v", pattern, err))
		}
	}

	// Валидация уровня логирования
	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if c.LogLevel != "" {
		valid := false
		logLevelUpper := strings.ToUpper(c.LogLevel)
		for _, level := range validLogLevels {
			if logLevelUpper == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
				c.LogLevel, strings.Join(validLogLevels, ", ")))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}
