package repomanager

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GatewaysShareTransaction(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var m RepositoryManager = NewSQLiteRepositoryManager()

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		id, err := m.Clients(tx).Create(ctx, &models.Client{Name: "Ana", IDType: "DNI", IDNumber: "1"})
		if err != nil {
			return err
		}
		if _, err := m.Processes(tx).Create(ctx, &models.Process{
			ClientID: id, CaseType: "civil", Status: models.ProcessActive, StartDate: models.Today(),
		}); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.EqualError(t, err, "abort")

	list, err := m.Clients(db).List(ctx, models.Filter{View: models.ViewAll})
	require.NoError(t, err)
	assert.Empty(t, list)

	procs, err := m.Processes(db).List(ctx, models.Filter{})
	require.NoError(t, err)
	assert.Empty(t, procs)
}
