package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lexdesk/internal/flagx"
	"github.com/dmitrijs2005/lexdesk/internal/timex"
)

// JSONConfig is the DTO used only for unmarshalling the config file.
// Durations use timex.Duration so they may be written as "8h".
type JSONConfig struct {
	DatabasePath   string         `json:"database_path"`
	DocumentsDir   string         `json:"documents_dir"`
	StorageBackend string         `json:"storage_backend"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
	SessionSecret  string         `json:"session_secret"`
	SessionTTL     timex.Duration `json:"session_ttl"`
	LogLevel       string         `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c/-config in args. It does
// nothing when neither flag is present and panics when the file cannot be
// read or parsed.
func parseJSON(cfg *Config, args []string) {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.DocumentsDir, jc.DocumentsDir)
	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.SessionSecret, jc.SessionSecret)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.SessionTTL.Duration > 0 {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
}
