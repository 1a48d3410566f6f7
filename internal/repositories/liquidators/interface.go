package liquidators

import (
	"context"

	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/shopspring/decimal"
)

// Repository is the gateway for settlement ("liquidador") lines of a
// process.
type Repository interface {
	// List returns entries by id. Filter.ProcessID narrows to one process.
	List(ctx context.Context, f models.Filter) ([]models.LiquidatorEntry, error)

	// Search matches the concept.
	Search(ctx context.Context, text string, view models.View) ([]models.LiquidatorEntry, error)

	GetByID(ctx context.Context, id int64) (*models.LiquidatorEntry, error)
	Create(ctx context.Context, e *models.LiquidatorEntry) (int64, error)
	Update(ctx context.Context, e *models.LiquidatorEntry) error
	Delete(ctx context.Context, id int64) error

	// Total sums the amounts of processID.
	Total(ctx context.Context, processID int64) (decimal.Decimal, error)
}
