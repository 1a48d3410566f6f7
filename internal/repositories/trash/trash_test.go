package trash

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  code TEXT NOT NULL,
  deleted INTEGER NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX items_code_active ON items(code) WHERE deleted = 0;
INSERT INTO items(code) VALUES ('a');
`)
	require.NoError(t, err)
	return db
}

func TestTable_Transitions(t *testing.T) {
	db := setupDB(t)
	tbl := New(db, "items")
	ctx := context.Background()

	st, err := tbl.State(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Active, st)

	changed, err := tbl.Restore(ctx, 1)
	require.NoError(t, err)
	assert.False(t, changed, "restore of an active row is a no-op")

	changed, err = tbl.Trash(ctx, 1)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = tbl.Trash(ctx, 1)
	require.NoError(t, err)
	assert.False(t, changed, "second trash is a no-op")

	st, err = tbl.State(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Trashed, st)

	changed, err = tbl.Restore(ctx, 1)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = tbl.Purge(ctx, 1)
	require.NoError(t, err)
	assert.True(t, changed, "purge works from the active state too")

	st, err = tbl.State(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Purged, st)

	for _, op := range []models.LifecycleOp{models.OpTrash, models.OpRestore, models.OpPurge} {
		changed, err = tbl.Apply(ctx, 1, op)
		require.NoError(t, err, op.String())
		assert.False(t, changed, op.String())
	}
}

func TestTable_RestoreCollision(t *testing.T) {
	db := setupDB(t)
	tbl := New(db, "items")
	ctx := context.Background()

	_, err := tbl.Trash(ctx, 1)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO items(code) VALUES ('a')`)
	require.NoError(t, err)

	_, err = tbl.Restore(ctx, 1)
	require.ErrorIs(t, err, common.ErrDuplicateKey)

	st, err := tbl.State(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Trashed, st)
}

func TestTable_StorageFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`select deleted from items where id = \?`).
		WithArgs(int64(7)).
		WillReturnError(errors.New("disk I/O error"))

	_, err = New(db, "items").Trash(context.Background(), 7)
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTable_ExecFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`select deleted from items where id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"deleted"}).AddRow(false))
	mock.ExpectExec(`update items set deleted = 1 where id = \?`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("database is locked"))

	_, err = New(db, "items").Trash(context.Background(), 3)
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}
