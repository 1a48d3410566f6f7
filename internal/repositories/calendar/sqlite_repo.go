package calendar

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/textx"
)

const columns = `id, title, description, event_date, process_id`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) query(ctx context.Context, where string, args ...any) ([]models.CalendarEvent, error) {
	query := `select ` + columns + ` from calendar_events where ` + where + ` order by event_date, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select calendar events: %w", dbx.Classify(err))
	}
	defer rows.Close()

	result := []models.CalendarEvent{}
	for rows.Next() {
		var e models.CalendarEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.ProcessID); err != nil {
			return nil, fmt.Errorf("failed to scan calendar event: %w", dbx.Classify(err))
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to select calendar events: %w", dbx.Classify(err))
	}
	return result, nil
}

func (r *SQLiteRepository) List(ctx context.Context, f models.Filter) ([]models.CalendarEvent, error) {
	where := `1 = 1`
	var args []any

	if f.ProcessID > 0 {
		where += ` and process_id = ?`
		args = append(args, f.ProcessID)
	}
	if q := textx.Fold(f.Query); q != "" {
		clause, n := dbx.ContainsFolded("title", "description")
		where += ` and ` + clause
		args = append(args, dbx.Repeat(q, n)...)
	}
	return r.query(ctx, where, args...)
}

func (r *SQLiteRepository) Search(ctx context.Context, text string, view models.View) ([]models.CalendarEvent, error) {
	return r.List(ctx, models.Filter{View: view, Query: text})
}

func (r *SQLiteRepository) Between(ctx context.Context, from, to models.Date) ([]models.CalendarEvent, error) {
	return r.query(ctx, `event_date between ? and ?`, from, to)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.CalendarEvent, error) {
	e := &models.CalendarEvent{}
	err := r.db.QueryRowContext(ctx, `select `+columns+` from calendar_events where id = ?`, id).
		Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.ProcessID)
	if err != nil {
		return nil, fmt.Errorf("calendar event %d: %w", id, dbx.Classify(err))
	}
	return e, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, e *models.CalendarEvent) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`insert into calendar_events (title, description, event_date, process_id) values (?, ?, ?, ?)`,
		e.Title, e.Description, e.Date, e.ProcessID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert calendar event: %w", dbx.Classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get calendar event id: %w", dbx.Classify(err))
	}
	e.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, e *models.CalendarEvent) error {
	res, err := r.db.ExecContext(ctx,
		`update calendar_events set title = ?, description = ?, event_date = ?, process_id = ? where id = ?`,
		e.Title, e.Description, e.Date, e.ProcessID, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update calendar event %d: %w", e.ID, dbx.Classify(err))
	}
	return dbx.RequireAffected(res, "calendar event", e.ID)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `delete from calendar_events where id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete calendar event %d: %w", id, dbx.Classify(err))
	}
	return nil
}
