package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Драйверы хранилища кэша
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	ServerPort string
	LogLevel   string

	// Удаленный API
	GitHubAPIBase      string
	GitHubToken        string
	EncryptionPassword string
	GitHubTimeout      time.Duration
	GitHubConcurrency  int
	GitHubRPS          float64
	GitHubMaxPages     int

	// Хранилище кэша
	CacheDriver  string
	DatabasePath string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string

	// Ограничение частоты запросов
	RateLimitMax           int
	RateLimitWindow        time.Duration
	RateLimitPruneInterval time.Duration
}

// LoadConfig читает .env (если есть) и переменные окружения.
// Ошибка не фатальна: возвращается конфиг с дефолтами и причина.
func LoadConfig() (Config, error) {
	var errs []error

	if err := godotenv.Load(); err != nil {
		errs = append(errs, err)
	}

	cfg := Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		GitHubAPIBase:      getEnv("GITHUB_API_BASE", "https://api.github.com"),
		GitHubToken:        os.Getenv("GITHUB_TOKEN"),
		EncryptionPassword: os.Getenv("ENCRYPTION_PASSWORD"),
		GitHubTimeout:      getDuration("GITHUB_TIMEOUT", 30*time.Second, &errs),
		GitHubConcurrency:  getInt("GITHUB_CONCURRENCY", 4, &errs),
		GitHubRPS:          getFloat("GITHUB_RPS", 0, &errs),
		GitHubMaxPages:     getInt("GITHUB_MAX_PAGES", 50, &errs),

		CacheDriver:  getEnv("CACHE_DRIVER", DriverSQLite),
		DatabasePath: getEnv("DATABASE_PATH", "github_data.db"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "password"),
		DBName:       getEnv("DB_NAME", "pr_activity"),

		RateLimitMax:           getInt("RATE_LIMIT_MAX", 5, &errs),
		RateLimitWindow:        getDuration("RATE_LIMIT_WINDOW", time.Minute, &errs),
		RateLimitPruneInterval: getDuration("RATE_LIMIT_PRUNE_INTERVAL", 5*time.Minute, &errs),
	}

	if cfg.CacheDriver != DriverSQLite && cfg.CacheDriver != DriverPostgres {
		errs = append(errs, fmt.Errorf("unknown CACHE_DRIVER %q, using %s", cfg.CacheDriver, DriverSQLite))
		cfg.CacheDriver = DriverSQLite
	}

	return cfg, errors.Join(errs...)
}

// PostgresDSN собирает строку подключения к PostgreSQL.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int, errs *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		*errs = append(*errs, fmt.Errorf("invalid %s=%q, using %d", key, raw, defaultValue))
		return defaultValue
	}
	return v
}

func getFloat(key string, defaultValue float64, errs *[]error) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		*errs = append(*errs, fmt.Errorf("invalid %s=%q, using %v", key, raw, defaultValue))
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		*errs = append(*errs, fmt.Errorf("invalid %s=%q, using %s", key, raw, defaultValue))
		return defaultValue
	}
	return v
}
