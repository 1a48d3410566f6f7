package clients

import (
	"context"

	"github.com/dmitrijs2005/lexdesk/internal/models"
)

type Repository interface {
	// List returns clients ordered by id. Filter.Query, when set, applies the
	// same match as Search.
	List(ctx context.Context, f models.Filter) ([]models.Client, error)

	// Search matches text case- and accent-insensitively against the name
	// and id-document number.
	Search(ctx context.Context, text string, view models.View) ([]models.Client, error)

	GetByID(ctx context.Context, id int64) (*models.Client, error)

	// Create inserts c and returns the new id.
	Create(ctx context.Context, c *models.Client) (int64, error)

	// Update overwrites the editable fields of client c.ID. The deleted flag
	// is not touched.
	Update(ctx context.Context, c *models.Client) error

	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}
