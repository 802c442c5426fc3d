package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[development]
port = 9000
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "trainlytics"
redis_host = "localhost"
redis_port = "6379"
allowed_origins = ["https://trainlytics.dev"]

[production]
environment = "production"
host = "0.0.0.0"
port = 8080
log_level = "warn"
postgres_host = "pg"
postgres_port = "5432"
postgres_db_name = "trainlytics"
postgres_user = "gateway"
redis_host = "redis"
redis_port = "6379"
kafka_brokers = ["kafka-1:9092", "kafka-2:9092"]
kafka_topic = "activity.events"
coach_fetch_concurrency = 4
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	path := writeConfig(t, testConfig)

	cfg, err := Load("dev", path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "postgres", cfg.PostgresUser)
	assert.Equal(t, DefaultKafkaTopic, cfg.KafkaTopic)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, DefaultCoachFetchConcurrency, cfg.CoachFetchConcurrency)
	assert.Equal(t, []string{"https://trainlytics.dev"}, cfg.AllowedOrigins)
}

func TestLoad_Production(t *testing.T) {
	path := writeConfig(t, testConfig)

	cfg, err := Load("PRODUCTION", path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "gateway", cfg.PostgresUser)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "activity.events", cfg.KafkaTopic)
	assert.Equal(t, 4, cfg.CoachFetchConcurrency)
}

func TestLoad_Errors(t *testing.T) {
	path := writeConfig(t, testConfig)

	_, err := Load("staging", path)
	assert.EqualError(t, err, "unknown env: staging")

	_, err = Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "decode config file")

	onlyDev := writeConfig(t, "[development]\nport = 1\n")
	_, err = Load("prod", onlyDev)
	assert.EqualError(t, err, "no config table for env: prod")

	_, err = Load("dev", onlyDev)
	require.Error(t, err)
	assert.ErrorContains(t, err, "postgres host, port and db name must be set")
	assert.ErrorContains(t, err, "redis host and port must be set")
}
