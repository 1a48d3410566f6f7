package documents

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
INSERT INTO clients(id, name, id_type, id_number) VALUES (1, 'Ana', 'DNI', '1');
INSERT INTO processes(id, client_id, case_type, start_date) VALUES (10, 1, 'civil', '2024-01-01'), (11, 1, 'penal', '2024-02-01');
`)
	require.NoError(t, err)
	return db
}

func ptr(v int64) *int64 { return &v }

func newDoc(processID *int64, stored string, at time.Time) *models.Document {
	return &models.Document{
		ClientID:    1,
		ProcessID:   processID,
		Name:        stored[:len(stored)-4],
		StoredName:  stored,
		StoragePath: "1/2025/01/uuid/" + stored,
		Category:    "contrato",
		UploadedAt:  at,
	}
}

func TestCreate_DuplicateStoredNameWithinProcess(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	id, err := r.Create(ctx, newDoc(ptr(10), "contract.pdf", at))
	require.NoError(t, err)

	_, err = r.Create(ctx, newDoc(ptr(10), "contract.pdf", at))
	require.ErrorIs(t, err, common.ErrDuplicateKey)

	_, err = r.Create(ctx, newDoc(ptr(11), "contract.pdf", at))
	require.NoError(t, err, "another process may reuse the name")

	require.NoError(t, r.SoftDelete(ctx, id))
	_, err = r.Create(ctx, newDoc(ptr(10), "contract.pdf", at))
	require.NoError(t, err, "trashed document no longer blocks the name")

	require.ErrorIs(t, r.Restore(ctx, id), common.ErrDuplicateKey)
}

func TestExistsActive(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id, err := r.Create(ctx, newDoc(ptr(10), "contract.pdf", time.Time{}))
	require.NoError(t, err)
	_, err = r.Create(ctx, newDoc(nil, "poder.pdf", time.Time{}))
	require.NoError(t, err)

	cases := []struct {
		name      string
		client    int64
		process   *int64
		stored    string
		wantFound bool
	}{
		{"same process", 1, ptr(10), "contract.pdf", true},
		{"other process", 1, ptr(11), "contract.pdf", false},
		{"other name", 1, ptr(10), "contract.docx", false},
		{"client level", 1, nil, "poder.pdf", true},
		{"client level other client", 2, nil, "poder.pdf", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.ExistsActive(ctx, tc.client, tc.process, tc.stored)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFound, got)
		})
	}

	require.NoError(t, r.SoftDelete(ctx, id))
	got, err := r.ExistsActive(ctx, 1, ptr(10), "contract.pdf")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestList_NewestFirstAndViews(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	old, err := r.Create(ctx, newDoc(ptr(10), "a.pdf", base))
	require.NoError(t, err)
	newer, err := r.Create(ctx, newDoc(ptr(10), "b.pdf", base.Add(time.Hour)))
	require.NoError(t, err)
	sameTime, err := r.Create(ctx, newDoc(ptr(11), "c.pdf", base.Add(time.Hour)))
	require.NoError(t, err)

	list, err := r.List(ctx, models.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{sameTime, newer, old}, []int64{list[0].ID, list[1].ID, list[2].ID})
	assert.True(t, list[2].UploadedAt.Equal(base))

	list, err = r.List(ctx, models.Filter{ProcessID: 11})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sameTime, list[0].ID)

	require.NoError(t, r.SoftDelete(ctx, newer))
	require.NoError(t, r.SoftDelete(ctx, newer))

	trash, err := r.List(ctx, models.Filter{View: models.ViewTrash})
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, models.Trashed, trash[0].Lifecycle())

	require.NoError(t, r.HardDelete(ctx, newer))
	all, err := r.List(ctx, models.Filter{View: models.ViewAll})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreate_DefaultsUploadTime(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	fixed := time.Date(2025, 5, 6, 7, 8, 9, 0, time.FixedZone("UTC-5", -5*3600))
	r.now = func() time.Time { return fixed }

	id, err := r.Create(context.Background(), newDoc(nil, "x.pdf", time.Time{}))
	require.NoError(t, err)

	got, err := r.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.UploadedAt.Equal(fixed))
	assert.Equal(t, time.UTC, got.UploadedAt.Location())
}

func TestProcessDelete_KeepsDocumentsDetached(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, newDoc(ptr(10), "contract.pdf", time.Time{}))
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM processes WHERE id = 10`)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.ProcessID)
	assert.Equal(t, "1/2025/01/uuid/contract.pdf", got.StoragePath)
}

func TestSearchAndUpdate(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id, err := r.Create(ctx, newDoc(ptr(10), "Demanda.pdf", time.Time{}))
	require.NoError(t, err)

	found, err := r.Search(ctx, "DEMANDA", models.ViewActive)
	require.NoError(t, err)
	require.Len(t, found, 1)

	d := found[0]
	d.Category = "escrito"
	d.ProcessID = nil
	require.NoError(t, r.Update(ctx, &d))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "escrito", got.Category)
	assert.Nil(t, got.ProcessID)

	d.ID = 999
	require.ErrorIs(t, r.Update(ctx, &d), common.ErrorNotFound)
}
