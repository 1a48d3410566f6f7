package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/lexdesk/internal/flagx"
)

// parseFlags populates Config fields from the flags listed in the package
// documentation. Unknown flags are filtered out beforehand so the JSON
// stage's -c does not trip this FlagSet. Invalid values panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-f", "-b", "-s", "-l", "-t"})

	fs := flag.NewFlagSet("lexdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "sqlite database file")
	fs.StringVar(&cfg.DocumentsDir, "f", cfg.DocumentsDir, "documents folder")
	fs.StringVar(&cfg.StorageBackend, "b", cfg.StorageBackend, "storage backend (local|s3)")
	fs.StringVar(&cfg.SessionSecret, "s", cfg.SessionSecret, "session signing secret")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	ttl := fs.Int("t", int(cfg.SessionTTL.Minutes()), "session lifetime (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*ttl) * time.Minute
}
