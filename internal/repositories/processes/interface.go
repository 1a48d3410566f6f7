package processes

import (
	"context"

	"github.com/dmitrijs2005/lexdesk/internal/models"
)

// Repository is the gateway for legal processes (cases). Processes have no
// trash: Delete removes the row and, through the schema, the process's
// liquidator entries, while documents, accounting entries and calendar
// events keep their rows with the process link cleared.
type Repository interface {
	// List returns processes ordered by id with ClientName filled.
	// Filter.ClientID restricts to one client; Filter.View is ignored.
	List(ctx context.Context, f models.Filter) ([]models.Process, error)

	// Search matches case type, docket number, court, description and
	// client name.
	Search(ctx context.Context, text string, view models.View) ([]models.Process, error)

	GetByID(ctx context.Context, id int64) (*models.Process, error)
	Create(ctx context.Context, p *models.Process) (int64, error)
	Update(ctx context.Context, p *models.Process) error
	SetStatus(ctx context.Context, id int64, status models.ProcessStatus) error
	Delete(ctx context.Context, id int64) error
}
