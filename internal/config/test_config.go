package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadTestConfig reads the integration test database from TEST_DB_* variables.
// An empty Database.Host means no test database is configured.
func LoadTestConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Database.Host = os.Getenv("TEST_DB_HOST")
	if cfg.Database.Host == "" {
		return cfg, nil
	}

	port, err := getEnvInt("TEST_DB_PORT", 3306)
	if err != nil {
		return nil, err
	}
	cfg.Database.Port = port
	cfg.Database.User = getEnv("TEST_DB_USER", "root")
	cfg.Database.Password = os.Getenv("TEST_DB_PASSWORD")
	cfg.Database.DBName = getEnv("TEST_DB_NAME", "studyforge_test")

	return cfg, nil
}
