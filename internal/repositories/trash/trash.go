// Package trash implements the soft-delete lifecycle shared by the clients
// and documents gateways. A Table reads a row's current models.Lifecycle,
// asks the lifecycle for the transition, and issues only the statement that
// transition needs. Operations on a missing id are no-ops.
package trash

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/models"
)

// Table is a soft-deletable table with an integer id and a deleted flag.
type Table struct {
	db   dbx.DBTX
	name string
}

// New returns a Table for name. name is a trusted identifier, never user input.
func New(db dbx.DBTX, name string) *Table {
	return &Table{db: db, name: name}
}

// State returns the lifecycle of row id, or Purged if no such row exists.
func (t *Table) State(ctx context.Context, id int64) (models.Lifecycle, error) {
	var deleted bool
	err := t.db.QueryRowContext(ctx, `select deleted from `+t.name+` where id = ?`, id).Scan(&deleted)
	if err != nil {
		err = dbx.Classify(err)
		if errors.Is(err, common.ErrorNotFound) {
			return models.Purged, nil
		}
		return 0, fmt.Errorf("read %s %d state: %w", t.name, id, err)
	}
	return models.LifecycleFromDeleted(deleted), nil
}

// Apply moves row id through op. It reports whether the row changed.
func (t *Table) Apply(ctx context.Context, id int64, op models.LifecycleOp) (bool, error) {
	cur, err := t.State(ctx, id)
	if err != nil {
		return false, err
	}
	next, changed := cur.Next(op)
	if !changed {
		return false, nil
	}

	var query string
	switch next {
	case models.Trashed:
		query = `update ` + t.name + ` set deleted = 1 where id = ?`
	case models.Active:
		query = `update ` + t.name + ` set deleted = 0 where id = ?`
	case models.Purged:
		query = `delete from ` + t.name + ` where id = ?`
	}

	if _, err := t.db.ExecContext(ctx, query, id); err != nil {
		return false, fmt.Errorf("%s %s %d: %w", op, t.name, id, dbx.Classify(err))
	}
	return true, nil
}

func (t *Table) Trash(ctx context.Context, id int64) (bool, error) {
	return t.Apply(ctx, id, models.OpTrash)
}

func (t *Table) Restore(ctx context.Context, id int64) (bool, error) {
	return t.Apply(ctx, id, models.OpRestore)
}

func (t *Table) Purge(ctx context.Context, id int64) (bool, error) {
	return t.Apply(ctx, id, models.OpPurge)
}
