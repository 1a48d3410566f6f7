package accounting

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
INSERT INTO clients(id, name, id_type, id_number) VALUES (1, 'Ana', 'DNI', '1'), (2, 'Beto', 'DNI', '2');
INSERT INTO processes(id, client_id, case_type, start_date) VALUES (10, 1, 'civil', '2024-01-01');
`)
	require.NoError(t, err)
	return db
}

func entry(client int64, kind models.AccountingKind, value string, day int) *models.AccountingEntry {
	return &models.AccountingEntry{
		ClientID:    client,
		Kind:        kind,
		Category:    "honorarios",
		Description: "cuota " + value,
		Value:       decimal.RequireFromString(value),
		Date:        models.NewDate(2025, time.February, day),
	}
}

func TestCreateGetAndOrdering(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	first, err := r.Create(ctx, entry(1, models.Income, "100.10", 1))
	require.NoError(t, err)
	latest, err := r.Create(ctx, entry(1, models.Expense, "20.05", 9))
	require.NoError(t, err)
	sameDay, err := r.Create(ctx, entry(1, models.Income, "0.01", 9))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, first)
	require.NoError(t, err)
	assert.True(t, got.Value.Equal(decimal.RequireFromString("100.10")))
	assert.Equal(t, "2025-02-01", got.Date.String())
	assert.Nil(t, got.ProcessID)

	list, err := r.List(ctx, models.Filter{ClientID: 1})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{sameDay, latest, first}, []int64{list[0].ID, list[1].ID, list[2].ID})
}

func TestBalance_ExactDecimal(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := r.Create(ctx, entry(1, models.Income, "0.10", 1))
		require.NoError(t, err)
	}
	_, err := r.Create(ctx, entry(1, models.Expense, "0.30", 2))
	require.NoError(t, err)
	_, err = r.Create(ctx, entry(2, models.Income, "999", 2))
	require.NoError(t, err)

	b, err := r.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "1", b.Income.String())
	assert.Equal(t, "0.3", b.Expense.String())
	assert.Equal(t, "0.7", b.Net.String())

	empty, err := r.Balance(ctx, 42)
	require.NoError(t, err)
	assert.True(t, empty.Net.IsZero())
}

func TestUpdateDeleteAndReferences(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, entry(77, models.Income, "1", 1))
	require.ErrorIs(t, err, common.ErrInvalidReference)

	e := entry(1, models.Income, "50", 3)
	pid := int64(10)
	e.ProcessID = &pid
	id, err := r.Create(ctx, e)
	require.NoError(t, err)

	e.Kind = models.Expense
	e.Value = decimal.RequireFromString("45.5")
	require.NoError(t, r.Update(ctx, e))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.Expense, got.Kind)
	assert.Equal(t, "45.5", got.Value.String())
	require.NotNil(t, got.ProcessID)
	assert.Equal(t, int64(10), *got.ProcessID)

	found, err := r.Search(ctx, "HONORARIOS", models.ViewActive)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	require.NoError(t, r.Delete(ctx, id))
	require.NoError(t, r.Delete(ctx, id))
	_, err = r.GetByID(ctx, id)
	require.ErrorIs(t, err, common.ErrorNotFound)

	e.ID = id
	require.ErrorIs(t, r.Update(ctx, e), common.ErrorNotFound)
}

func TestBalance_StorageUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`select kind, value from accounting_entries where client_id = \?`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("I/O error"))

	_, err = NewSQLiteRepository(db).Balance(context.Background(), 1)
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}
