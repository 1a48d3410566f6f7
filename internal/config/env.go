package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv loads envFile (if present) into the process environment and then
// overlays LEXDESK_* variables. Variables already set in the environment win
// over the file. A malformed file or duration panics, like the other stages.
func parseEnv(cfg *Config, envFile string) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setString(&cfg.DatabasePath, os.Getenv("LEXDESK_DB"))
	setString(&cfg.DocumentsDir, os.Getenv("LEXDESK_DOCS_DIR"))
	setString(&cfg.StorageBackend, os.Getenv("LEXDESK_STORAGE"))
	setString(&cfg.S3Bucket, os.Getenv("LEXDESK_S3_BUCKET"))
	setString(&cfg.S3Region, os.Getenv("LEXDESK_S3_REGION"))
	setString(&cfg.S3BaseEndpoint, os.Getenv("LEXDESK_S3_ENDPOINT"))
	setString(&cfg.S3AccessKey, os.Getenv("LEXDESK_S3_ACCESS_KEY"))
	setString(&cfg.S3SecretKey, os.Getenv("LEXDESK_S3_SECRET_KEY"))
	setString(&cfg.SessionSecret, os.Getenv("LEXDESK_SESSION_SECRET"))
	setString(&cfg.LogLevel, os.Getenv("LEXDESK_LOG_LEVEL"))

	if ttl := os.Getenv("LEXDESK_SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			panic(err)
		}
		cfg.SessionTTL = d
	}
}
