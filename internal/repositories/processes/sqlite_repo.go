package processes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/textx"
)

const selectProcess = `select p.id, p.client_id, p.case_type, p.description, p.court, p.status,
	p.start_date, p.end_date, p.docket_number, c.name
	from processes p join clients c on c.id = p.client_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanProcess(s scanner) (models.Process, error) {
	var p models.Process
	err := s.Scan(&p.ID, &p.ClientID, &p.CaseType, &p.Description, &p.Court, &p.Status,
		&p.StartDate, &p.EndDate, &p.DocketNumber, &p.ClientName)
	return p, err
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context, f models.Filter) ([]models.Process, error) {
	query := selectProcess + ` where 1 = 1`
	var args []any

	if f.ClientID > 0 {
		query += ` and p.client_id = ?`
		args = append(args, f.ClientID)
	}
	if q := textx.Fold(f.Query); q != "" {
		clause, n := dbx.ContainsFolded("p.case_type", "p.docket_number", "p.court", "p.description", "c.name")
		query += ` and ` + clause
		args = append(args, dbx.Repeat(q, n)...)
	}
	query += ` order by p.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select processes: %w", dbx.Classify(err))
	}
	defer rows.Close()

	result := []models.Process{}
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan process: %w", dbx.Classify(err))
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to select processes: %w", dbx.Classify(err))
	}
	return result, nil
}

func (r *SQLiteRepository) Search(ctx context.Context, text string, view models.View) ([]models.Process, error) {
	return r.List(ctx, models.Filter{View: view, Query: text})
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Process, error) {
	p, err := scanProcess(r.db.QueryRowContext(ctx, selectProcess+` where p.id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("process %d: %w", id, dbx.Classify(err))
	}
	return &p, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, p *models.Process) (int64, error) {
	query := `insert into processes (client_id, case_type, description, court, status, start_date, end_date, docket_number)
		values (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, p.ClientID, p.CaseType, p.Description, p.Court, p.Status,
		p.StartDate, p.EndDate, p.DocketNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to insert process: %w", dbx.Classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get process id: %w", dbx.Classify(err))
	}
	p.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *models.Process) error {
	query := `update processes set client_id = ?, case_type = ?, description = ?, court = ?, status = ?,
		start_date = ?, end_date = ?, docket_number = ? where id = ?`

	res, err := r.db.ExecContext(ctx, query, p.ClientID, p.CaseType, p.Description, p.Court, p.Status,
		p.StartDate, p.EndDate, p.DocketNumber, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update process %d: %w", p.ID, dbx.Classify(err))
	}
	return dbx.RequireAffected(res, "process", p.ID)
}

func (r *SQLiteRepository) SetStatus(ctx context.Context, id int64, status models.ProcessStatus) error {
	res, err := r.db.ExecContext(ctx, `update processes set status = ? where id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to set process %d status: %w", id, dbx.Classify(err))
	}
	return dbx.RequireAffected(res, "process", id)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `delete from processes where id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete process %d: %w", id, dbx.Classify(err))
	}
	return nil
}
