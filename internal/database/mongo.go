package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"github.com/Malmeu/car-manager-server/internal/config"
)

var mongoConnect = mongo.Connect

// Credentials is the shape of the DB_CREDENTIALS JSON blob.
type Credentials struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// ParseCredentials decodes the credential blob and validates its fields.
func ParseCredentials(blob string) (*Credentials, error) {
	if blob == "" {
		return nil, fmt.Errorf("DB_CREDENTIALS is required")
	}
	var creds Credentials
	if err := json.Unmarshal([]byte(blob), &creds); err != nil {
		return nil, fmt.Errorf("parse DB_CREDENTIALS: %w", err)
	}
	if creds.URI == "" || creds.Database == "" {
		return nil, fmt.Errorf("invalid DB_CREDENTIALS: uri and database are required")
	}
	return &creds, nil
}

// NewMongo connects to the document store described by the credential blob.
// The connection is verified with a short ping; failure here is a startup
// error, callers are expected to treat it as fatal. Commands are traced via
// the otelmongo command monitor.
func NewMongo(c config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	start := time.Now()

	creds, err := ParseCredentials(c.CredentialsJSON)
	if err != nil {
		return nil, nil, err
	}

	opts := options.Client().
		ApplyURI(creds.URI).
		SetMonitor(otelmongo.NewMonitor())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongoConnect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logJSON(map[string]any{
			"component":     "database",
			"event":         "db_connect_failed",
			"status":        "error",
			"error_message": err.Error(),
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	logJSON(map[string]any{
		"component":   "database",
		"event":       "db_connected",
		"status":      "success",
		"database":    creds.Database,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return client, client.Database(creds.Database), nil
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal database log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
