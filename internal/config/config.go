package config

import (
	"os"
	"time"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds runtime settings for the lexdesk binary.
//
// DatabasePath is the single sqlite file holding every table. DocumentsDir
// is the folder uploaded documents are copied into when StorageBackend is
// "local"; the S3* fields apply when it is "s3". An empty SessionSecret
// makes the app generate a random one per process, which simply means
// sessions do not survive a restart.
type Config struct {
	DatabasePath   string
	DocumentsDir   string
	StorageBackend string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	SessionSecret  string
	SessionTTL     time.Duration
	LogLevel       string
}

// LoadDefaults populates c with defaults suitable for a single desktop.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "lexdesk.db"
	c.DocumentsDir = "documentos"
	c.StorageBackend = StorageLocal
	c.S3Region = "us-east-1"
	c.SessionTTL = 8 * time.Hour
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, environment, the JSON file and
// the process arguments, in that order.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseJSON(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
