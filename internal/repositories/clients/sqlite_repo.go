package clients

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/trash"
	"github.com/dmitrijs2005/lexdesk/internal/textx"
)

const columns = `id, name, id_type, id_number, email, phone, address, deleted`

type SQLiteRepository struct {
	db    dbx.DBTX
	trash *trash.Table
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, trash: trash.New(db, "clients")}
}

func (r *SQLiteRepository) List(ctx context.Context, f models.Filter) ([]models.Client, error) {
	query := `select ` + columns + ` from clients where ` + f.View.DeletedClause()
	var args []any

	if q := textx.Fold(f.Query); q != "" {
		clause, n := dbx.ContainsFolded("name", "id_number")
		query += ` and ` + clause
		args = append(args, dbx.Repeat(q, n)...)
	}
	query += ` order by id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select clients: %w", dbx.Classify(err))
	}
	defer rows.Close()

	result := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.IDType, &c.IDNumber, &c.Email, &c.Phone, &c.Address, &c.Deleted); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", dbx.Classify(err))
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to select clients: %w", dbx.Classify(err))
	}
	return result, nil
}

func (r *SQLiteRepository) Search(ctx context.Context, text string, view models.View) ([]models.Client, error) {
	return r.List(ctx, models.Filter{View: view, Query: text})
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	query := `select ` + columns + ` from clients where id = ?`

	c := &models.Client{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.IDType, &c.IDNumber, &c.Email, &c.Phone, &c.Address, &c.Deleted)
	if err != nil {
		return nil, fmt.Errorf("client %d: %w", id, dbx.Classify(err))
	}
	return c, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, c *models.Client) (int64, error) {
	query := `insert into clients (name, id_type, id_number, email, phone, address) values (?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, c.Name, c.IDType, c.IDNumber, c.Email, c.Phone, c.Address)
	if err != nil {
		return 0, fmt.Errorf("failed to insert client: %w", dbx.Classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get client id: %w", dbx.Classify(err))
	}
	c.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, c *models.Client) error {
	query := `update clients set name = ?, id_type = ?, id_number = ?, email = ?, phone = ?, address = ? where id = ?`

	res, err := r.db.ExecContext(ctx, query, c.Name, c.IDType, c.IDNumber, c.Email, c.Phone, c.Address, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update client %d: %w", c.ID, dbx.Classify(err))
	}
	return dbx.RequireAffected(res, "client", c.ID)
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
