package calendar

import (
	"context"

	"github.com/dmitrijs2005/lexdesk/internal/models"
)

// Repository is the gateway for calendar events.
type Repository interface {
	// List returns events in date order, earliest first.
	List(ctx context.Context, f models.Filter) ([]models.CalendarEvent, error)

	// Search matches title and description.
	Search(ctx context.Context, text string, view models.View) ([]models.CalendarEvent, error)

	// Between returns events dated from..to inclusive, earliest first.
	Between(ctx context.Context, from, to models.Date) ([]models.CalendarEvent, error)

	GetByID(ctx context.Context, id int64) (*models.CalendarEvent, error)
	Create(ctx context.Context, e *models.CalendarEvent) (int64, error)
	Update(ctx context.Context, e *models.CalendarEvent) error
	Delete(ctx context.Context, id int64) error
}
