package users

import (
	"context"

	"github.com/dmitrijs2005/lexdesk/internal/models"
)

// Repository persists login accounts. Password hashes are opaque bytes to
// the repository; hashing happens in the auth service.
type Repository interface {
	// Create inserts u. A taken username returns common.ErrDuplicateKey.
	Create(ctx context.Context, u *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, username string, hash []byte) error
	Count(ctx context.Context) (int, error)
}
