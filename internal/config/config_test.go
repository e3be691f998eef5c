package config_test

import (
	"testing"
	"time"

	"pr-activity-service/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "GITHUB_API_BASE", "GITHUB_TIMEOUT", "GITHUB_CONCURRENCY", "CACHE_DRIVER", "DATABASE_PATH", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW"} {
		t.Setenv(key, "")
	}

	// .env в каталоге пакета нет, поэтому ошибка godotenv ожидаема
	cfg, _ := config.LoadConfig()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "https://api.github.com", cfg.GitHubAPIBase)
	assert.Equal(t, 30*time.Second, cfg.GitHubTimeout)
	assert.Equal(t, 4, cfg.GitHubConcurrency)
	assert.Equal(t, config.DriverSQLite, cfg.CacheDriver)
	assert.Equal(t, "github_data.db", cfg.DatabasePath)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GITHUB_TIMEOUT", "5s")
	t.Setenv("GITHUB_RPS", "2.5")
	t.Setenv("CACHE_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "cache")
	t.Setenv("RATE_LIMIT_MAX", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, _ := config.LoadConfig()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 5*time.Second, cfg.GitHubTimeout)
	assert.Equal(t, 2.5, cfg.GitHubRPS)
	assert.Equal(t, config.DriverPostgres, cfg.CacheDriver)
	assert.Equal(t, 10, cfg.RateLimitMax)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, "postgres://postgres:password@db:5432/cache?sslmode=disable", cfg.PostgresDSN())
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("GITHUB_CONCURRENCY", "many")
	t.Setenv("RATE_LIMIT_WINDOW", "-1m")
	t.Setenv("CACHE_DRIVER", "mysql")

	cfg, err := config.LoadConfig()

	assert.Error(t, err)
	assert.ErrorContains(t, err, "GITHUB_CONCURRENCY")
	assert.ErrorContains(t, err, "RATE_LIMIT_WINDOW")
	assert.ErrorContains(t, err, "CACHE_DRIVER")
	assert.Equal(t, 4, cfg.GitHubConcurrency)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, config.DriverSQLite, cfg.CacheDriver)
}
