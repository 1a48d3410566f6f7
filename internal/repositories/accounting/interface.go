package accounting

import (
	"context"

	"github.com/dmitrijs2005/lexdesk/internal/models"
)

// Repository is the gateway for accounting entries. Entries have no trash.
type Repository interface {
	// List returns entries by date, newest first.
	List(ctx context.Context, f models.Filter) ([]models.AccountingEntry, error)

	// Search matches description and category.
	Search(ctx context.Context, text string, view models.View) ([]models.AccountingEntry, error)

	GetByID(ctx context.Context, id int64) (*models.AccountingEntry, error)
	Create(ctx context.Context, e *models.AccountingEntry) (int64, error)
	Update(ctx context.Context, e *models.AccountingEntry) error
	Delete(ctx context.Context, id int64) error

	// Balance sums the entries of clientID exactly, without float rounding.
	Balance(ctx context.Context, clientID int64) (models.Balance, error)
}
