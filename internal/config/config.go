// Package config loads the daemon configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the daemon needs to start.
type Config struct {
	// HTTPAddr is the listen address for the API server.
	HTTPAddr string
	// MongoURI selects the MongoDB backend; when empty the daemon runs on
	// the embedded engine instead.
	MongoURI string
	// DBName is the Mongo database name.
	DBName string
	// DataDir is where the embedded engine keeps its snapshots.
	DataDir string
	// Env is "development" or "production"; controls log output format.
	Env string
	// TLSCert and TLSKey enable TLS when both are set.
	TLSCert string
	TLSKey  string
	// SelfSignedTLS generates an in-memory certificate when no cert files
	// are configured.
	SelfSignedTLS bool
}

// Load reads configuration from the environment. A local .env file is
// applied first when present.
func Load() Config {
	godotenv.Load()

	return Config{
		HTTPAddr:      envOr("QIK_HTTP_ADDR", ":8000"),
		MongoURI:      os.Getenv("QIK_MONGO_URI"),
		DBName:        envOr("QIK_DB_NAME", "qikoffice"),
		DataDir:       envOr("QIK_DATA_DIR", "./data"),
		Env:           envOr("APP_ENV", "development"),
		TLSCert:       os.Getenv("QIK_TLS_CERT"),
		TLSKey:        os.Getenv("QIK_TLS_KEY"),
		SelfSignedTLS: os.Getenv("QIK_SELF_SIGNED_TLS") == "true",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
