package filestore

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/lexdesk/internal/config"
)

// Store writes new objects. Put fails with common.ErrFileExists when key is
// already taken and never replaces existing content.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64) error

	// Location describes where key lives, for display and logs.
	Location(key string) string
}

// New builds the backend selected by cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case "", config.StorageLocal:
		return NewLocal(cfg.DocumentsDir)
	case config.StorageS3:
		return NewS3(ctx, S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
