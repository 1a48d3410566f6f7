package documents

import (
	"context"

	"github.com/dmitrijs2005/lexdesk/internal/models"
)

type Repository interface {
	// List returns documents newest first. Filter.ClientID and
	// Filter.ProcessID narrow the result, Filter.Query matches like Search.
	List(ctx context.Context, f models.Filter) ([]models.Document, error)

	// Search matches the logical name, stored name and category.
	Search(ctx context.Context, text string, view models.View) ([]models.Document, error)

	GetByID(ctx context.Context, id int64) (*models.Document, error)

	// ExistsActive reports whether an active document with storedName is
	// already attached to processID, or to clientID when processID is nil.
	ExistsActive(ctx context.Context, clientID int64, processID *int64, storedName string) (bool, error)

	// Create inserts d. A zero UploadedAt is set to the current time.
	Create(ctx context.Context, d *models.Document) (int64, error)

	// Update changes the logical name, category and process link.
	Update(ctx context.Context, d *models.Document) error

	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}
