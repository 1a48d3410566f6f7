package liquidators

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/textx"
	"github.com/shopspring/decimal"
)

const columns = `id, process_id, concept, amount, entry_date`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context, f models.Filter) ([]models.LiquidatorEntry, error) {
	query := `select ` + columns + ` from liquidator_entries where 1 = 1`
	var args []any

	if f.ProcessID > 0 {
		query += ` and process_id = ?`
		args = append(args, f.ProcessID)
	}
	if q := textx.Fold(f.Query); q != "" {
		clause, n := dbx.ContainsFolded("concept")
		query += ` and ` + clause
		args = append(args, dbx.Repeat(q, n)...)
	}
	query += ` order by id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select liquidator entries: %w", dbx.Classify(err))
	}
	defer rows.Close()

	result := []models.LiquidatorEntry{}
	for rows.Next() {
		var e models.LiquidatorEntry
		if err := rows.Scan(&e.ID, &e.ProcessID, &e.Concept, &e.Amount, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan liquidator entry: %w", dbx.Classify(err))
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to select liquidator entries: %w", dbx.Classify(err))
	}
	return result, nil
}

func (r *SQLiteRepository) Search(ctx context.Context, text string, view models.View) ([]models.LiquidatorEntry, error) {
	return r.List(ctx, models.Filter{View: view, Query: text})
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.LiquidatorEntry, error) {
	e := &models.LiquidatorEntry{}
	err := r.db.QueryRowContext(ctx, `select `+columns+` from liquidator_entries where id = ?`, id).
		Scan(&e.ID, &e.ProcessID, &e.Concept, &e.Amount, &e.Date)
	if err != nil {
		return nil, fmt.Errorf("liquidator entry %d: %w", id, dbx.Classify(err))
	}
	return e, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, e *models.LiquidatorEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`insert into liquidator_entries (process_id, concept, amount, entry_date) values (?, ?, ?, ?)`,
		e.ProcessID, e.Concept, e.Amount.String(), e.Date)
	if err != nil {
		return 0, fmt.Errorf("failed to insert liquidator entry: %w", dbx.Classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get liquidator entry id: %w", dbx.Classify(err))
	}
	e.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, e *models.LiquidatorEntry) error {
	res, err := r.db.ExecContext(ctx,
		`update liquidator_entries set process_id = ?, concept = ?, amount = ?, entry_date = ? where id = ?`,
		e.ProcessID, e.Concept, e.Amount.String(), e.Date, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update liquidator entry %d: %w", e.ID, dbx.Classify(err))
	}
	return dbx.RequireAffected(res, "liquidator entry", e.ID)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `delete from liquidator_entries where id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete liquidator entry %d: %w", id, dbx.Classify(err))
	}
	return nil
}

func (r *SQLiteRepository) Total(ctx context.Context, processID int64) (decimal.Decimal, error) {
	entries, err := r.List(ctx, models.Filter{ProcessID: processID})
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total, nil
}
