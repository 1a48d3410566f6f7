package accounting

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/textx"
	"github.com/shopspring/decimal"
)

// Values are stored as decimal text; summing happens in Go so that no
// amount passes through a float.
const columns = `id, client_id, process_id, kind, category, description, value, entry_date`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (models.AccountingEntry, error) {
	var e models.AccountingEntry
	err := s.Scan(&e.ID, &e.ClientID, &e.ProcessID, &e.Kind, &e.Category, &e.Description, &e.Value, &e.Date)
	return e, err
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context, f models.Filter) ([]models.AccountingEntry, error) {
	query := `select ` + columns + ` from accounting_entries where 1 = 1`
	var args []any

	if f.ClientID > 0 {
		query += ` and client_id = ?`
		args = append(args, f.ClientID)
	}
	if f.ProcessID > 0 {
		query += ` and process_id = ?`
		args = append(args, f.ProcessID)
	}
	if q := textx.Fold(f.Query); q != "" {
		clause, n := dbx.ContainsFolded("description", "category")
		query += ` and ` + clause
		args = append(args, dbx.Repeat(q, n)...)
	}
	query += ` order by entry_date desc, id desc`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounting entries: %w", dbx.Classify(err))
	}
	defer rows.Close()

	result := []models.AccountingEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan accounting entry: %w", dbx.Classify(err))
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to select accounting entries: %w", dbx.Classify(err))
	}
	return result, nil
}

func (r *SQLiteRepository) Search(ctx context.Context, text string, view models.View) ([]models.AccountingEntry, error) {
	return r.List(ctx, models.Filter{View: view, Query: text})
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.AccountingEntry, error) {
	e, err := scanEntry(r.db.QueryRowContext(ctx, `select `+columns+` from accounting_entries where id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("accounting entry %d: %w", id, dbx.Classify(err))
	}
	return &e, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, e *models.AccountingEntry) (int64, error) {
	query := `insert into accounting_entries (client_id, process_id, kind, category, description, value, entry_date)
		values (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, e.ClientID, e.ProcessID, e.Kind, e.Category, e.Description,
		e.Value.String(), e.Date)
	if err != nil {
		return 0, fmt.Errorf("failed to insert accounting entry: %w", dbx.Classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get accounting entry id: %w", dbx.Classify(err))
	}
	e.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, e *models.AccountingEntry) error {
	query := `update accounting_entries set client_id = ?, process_id = ?, kind = ?, category = ?,
		description = ?, value = ?, entry_date = ? where id = ?`

	res, err := r.db.ExecContext(ctx, query, e.ClientID, e.ProcessID, e.Kind, e.Category, e.Description,
		e.Value.String(), e.Date, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update accounting entry %d: %w", e.ID, dbx.Classify(err))
	}
	return dbx.RequireAffected(res, "accounting entry", e.ID)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `delete from accounting_entries where id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete accounting entry %d: %w", id, dbx.Classify(err))
	}
	return nil
}

func (r *SQLiteRepository) Balance(ctx context.Context, clientID int64) (models.Balance, error) {
	b := models.Balance{Income: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero}

	rows, err := r.db.QueryContext(ctx, `select kind, value from accounting_entries where client_id = ?`, clientID)
	if err != nil {
		return b, fmt.Errorf("failed to sum client %d entries: %w", clientID, dbx.Classify(err))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind  models.AccountingKind
			value decimal.Decimal
		)
		if err := rows.Scan(&kind, &value); err != nil {
			return b, fmt.Errorf("failed to scan accounting value: %w", dbx.Classify(err))
		}
		if kind == models.Expense {
			b.Expense = b.Expense.Add(value)
		} else {
			b.Income = b.Income.Add(value)
		}
	}
	if err := rows.Err(); err != nil {
		return b, fmt.Errorf("failed to sum client %d entries: %w", clientID, dbx.Classify(err))
	}

	b.Net = b.Income.Sub(b.Expense)
	return b, nil
}
