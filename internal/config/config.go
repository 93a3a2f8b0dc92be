package config

import (
	"os"
	"strconv"
)

// MongoConfig holds the document store settings. Credentials arrive as a
// single JSON blob in the environment so deployments can inject them from a
// secret manager without splitting fields.
type MongoConfig struct {
	CredentialsJSON string
}

// StorageConfig holds blob storage settings.
type StorageConfig struct {
	Backend        string // "local" or "minio"
	Root           string // root directory for the local backend
	MaxUploadBytes int    // transport-level ceiling for a single upload
}

// MinIOConfig holds object storage settings for the optional MinIO backend.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port          string
	AllowedOrigin string
	Mongo         MongoConfig
	Storage       StorageConfig
	MinIO         MinIOConfig
}

// DefaultMaxUploadBytes caps a single upload at 10 MiB unless overridden.
const DefaultMaxUploadBytes = 10 << 20

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:          getEnv("PORT", "8080"), // default only for non-sensitive value
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		Mongo: MongoConfig{
			CredentialsJSON: getEnv("DB_CREDENTIALS", ""),
		},
		Storage: StorageConfig{
			Backend:        getEnv("STORAGE_BACKEND", "local"),
			Root:           getEnv("STORAGE_ROOT", "./data"),
			MaxUploadBytes: getEnvInt("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
