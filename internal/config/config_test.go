package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origBackend := os.Getenv("STORAGE_BACKEND")
	defer os.Setenv("STORAGE_BACKEND", origBackend)

	os.Setenv("STORAGE_BACKEND", "minio")
	os.Setenv("MAX_UPLOAD_BYTES", "2048")
	os.Setenv("DB_CREDENTIALS", `{"uri":"mongodb://localhost:27017","database":"cars"}`)
	os.Setenv("MINIO_USE_SSL", "true")
	defer func() {
		os.Unsetenv("MAX_UPLOAD_BYTES")
		os.Unsetenv("DB_CREDENTIALS")
		os.Unsetenv("MINIO_USE_SSL")
	}()

	cfg := Load()

	assert.Equal(t, "minio", cfg.Storage.Backend)
	assert.Equal(t, 2048, cfg.Storage.MaxUploadBytes)
	assert.Contains(t, cfg.Mongo.CredentialsJSON, "mongodb://localhost:27017")
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ALLOWED_ORIGIN", "STORAGE_BACKEND", "STORAGE_ROOT", "MAX_UPLOAD_BYTES"} {
		orig := os.Getenv(key)
		os.Unsetenv(key)
		defer os.Setenv(key, orig)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:5173", cfg.AllowedOrigin)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, "./data", cfg.Storage.Root)
	assert.Equal(t, DefaultMaxUploadBytes, cfg.Storage.MaxUploadBytes)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
