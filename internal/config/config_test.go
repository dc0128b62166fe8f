package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredDBEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "studyforge")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredDBEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.Gemini.Model)
	assert.Equal(t, 2*time.Minute, cfg.Gemini.Timeout)
	assert.Equal(t, 0, cfg.Jobs.MaxRetry)
	assert.Equal(t, "*/15 * * * *", cfg.Jobs.ReconcileCron)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "missing host", unset: "DB_HOST"},
		{name: "missing port", unset: "DB_PORT"},
		{name: "missing user", unset: "DB_USER"},
		{name: "missing password", unset: "DB_PASSWORD"},
		{name: "missing name", unset: "DB_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredDBEnv(t)
			t.Setenv(tt.unset, "")

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.unset)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "invalid db port", key: "DB_PORT", value: "abc"},
		{name: "invalid server port", key: "SERVER_PORT", value: "x"},
		{name: "invalid ai timeout", key: "AI_TIMEOUT", value: "soon"},
		{name: "invalid max retry", key: "JOB_MAX_RETRY", value: "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredDBEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "db", Port: 3306, User: "u", Password: "p", DBName: "n"}}

	assert.Equal(t, "u:p@tcp(db:3306)/n?parseTime=true&charset=utf8mb4&clientFoundRows=true&multiStatements=true", cfg.DSN())
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseOrigins(""))
	assert.Equal(t, []string{"*"}, parseOrigins(" , "))
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, parseOrigins("https://a.com, https://b.com"))
}

func TestLoadTestConfig(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "")

		cfg, err := LoadTestConfig()

		require.NoError(t, err)
		assert.Empty(t, cfg.Database.Host)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "127.0.0.1")
		t.Setenv("TEST_DB_PORT", "")
		t.Setenv("TEST_DB_USER", "")
		t.Setenv("TEST_DB_NAME", "")

		cfg, err := LoadTestConfig()

		require.NoError(t, err)
		assert.Equal(t, 3306, cfg.Database.Port)
		assert.Equal(t, "root", cfg.Database.User)
		assert.Equal(t, "studyforge_test", cfg.Database.DBName)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "127.0.0.1")
		t.Setenv("TEST_DB_PORT", "db")

		_, err := LoadTestConfig()

		assert.Error(t, err)
	})
}
