package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/trash"
	"github.com/dmitrijs2005/lexdesk/internal/textx"
)

const columns = `id, client_id, process_id, name, stored_name, uploaded_at, storage_path, category, deleted`

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (models.Document, error) {
	var (
		d        models.Document
		uploaded string
	)
	err := s.Scan(&d.ID, &d.ClientID, &d.ProcessID, &d.Name, &d.StoredName, &uploaded,
		&d.StoragePath, &d.Category, &d.Deleted)
	if err != nil {
		return d, err
	}
	d.UploadedAt, err = time.Parse(time.RFC3339, uploaded)
	if err != nil {
		return d, fmt.Errorf("document %d upload time %q: %w", d.ID, uploaded, err)
	}
	return d, nil
}

type SQLiteRepository struct {
	db    dbx.DBTX
	trash *trash.Table
	now   func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, trash: trash.New(db, "documents"), now: time.Now}
}

func (r *SQLiteRepository) List(ctx context.Context, f models.Filter) ([]models.Document, error) {
	query := `select ` + columns + ` from documents where ` + f.View.DeletedClause()
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
		clause, n := dbx.ContainsFolded("name", "stored_name", "category")
		query += ` and ` + clause
		args = append(args, dbx.Repeat(q, n)...)
	}
	query += ` order by uploaded_at desc, id desc`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", dbx.Classify(err))
	}
	defer rows.Close()

	result := []models.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", dbx.Classify(err))
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", dbx.Classify(err))
	}
	return result, nil
}

func (r *SQLiteRepository) Search(ctx context.Context, text string, view models.View) ([]models.Document, error) {
	return r.List(ctx, models.Filter{View: view, Query: text})
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	d, err := scanDocument(r.db.QueryRowContext(ctx, `select `+columns+` from documents where id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("document %d: %w", id, dbx.Classify(err))
	}
	return &d, nil
}

func (r *SQLiteRepository) ExistsActive(ctx context.Context, clientID int64, processID *int64, storedName string) (bool, error) {
	query := `select exists(select 1 from documents where deleted = 0 and stored_name = ? and `
	args := []any{storedName}
	if processID != nil {
		query += `process_id = ?)`
		args = append(args, *processID)
	} else {
		query += `client_id = ? and process_id is null)`
		args = append(args, clientID)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check document %q: %w", storedName, dbx.Classify(err))
	}
	return exists, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, d *models.Document) (int64, error) {
	if d.UploadedAt.IsZero() {
		d.UploadedAt = r.now()
	}
	d.UploadedAt = d.UploadedAt.UTC().Truncate(time.Second)

	query := `insert into documents (client_id, process_id, name, stored_name, uploaded_at, storage_path, category)
		values (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, d.ClientID, d.ProcessID, d.Name, d.StoredName,
		d.UploadedAt.Format(time.RFC3339), d.StoragePath, d.Category)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document %q: %w", d.StoredName, dbx.Classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document id: %w", dbx.Classify(err))
	}
	d.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, d *models.Document) error {
	query := `update documents set name = ?, category = ?, process_id = ? where id = ?`

	res, err := r.db.ExecContext(ctx, query, d.Name, d.Category, d.ProcessID, d.ID)
	if err != nil {
		return fmt.Errorf("failed to update document %d: %w", d.ID, dbx.Classify(err))
	}
	return dbx.RequireAffected(res, "document", d.ID)
}

func (r *SQLiteRepository) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.trash.Trash(ctx, id)
	return err
}

func (r *SQLiteRepository) Restore(ctx context.Context, id int64) error {
	_, err := r.trash.Restore(ctx, id)
	return err
}

func (r *SQLiteRepository) HardDelete(ctx context.Context, id int64) error {
	_, err := r.trash.Purge(ctx, id)
	return err
}
