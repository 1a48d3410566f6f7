package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *models.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`insert into users (username, password_hash, role) values (?, ?, ?)`,
		u.Username, u.PasswordHash, u.Role)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user %q: %w", u.Username, dbx.Classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get user id: %w", dbx.Classify(err))
	}
	u.ID = id
	return id, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx,
		`select id, username, password_hash, role from users where username = ?`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", username, dbx.Classify(err))
	}
	return u, nil
}

func (r *SQLiteRepository) UpdatePasswordHash(ctx context.Context, username string, hash []byte) error {
	res, err := r.db.ExecContext(ctx, `update users set password_hash = ? where username = ?`, hash, username)
	if err != nil {
		return fmt.Errorf("failed to update user %q: %w", username, dbx.Classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", dbx.Classify(err))
	}
	if n == 0 {
		return fmt.Errorf("user %q: %w", username, common.ErrorNotFound)
	}
	return nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `select count(*) from users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", dbx.Classify(err))
	}
	return n, nil
}
