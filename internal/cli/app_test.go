package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/lexdesk/internal/config"
	"github.com/dmitrijs2005/lexdesk/internal/filestore"
	"github.com/dmitrijs2005/lexdesk/internal/logging"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/repomanager"
	"github.com/dmitrijs2005/lexdesk/internal/services"
	"github.com/dmitrijs2005/lexdesk/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp runs a whole session over an in-memory database and returns what
// the user would have seen.
func runApp(t *testing.T, docsDir string, lines ...string) string {
	t.Helper()
	stubTerminal(t, false, nil)

	ctx := context.Background()
	db, err := storage.Open(ctx, storage.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := filestore.NewLocal(docsDir)
	require.NoError(t, err)

	repos := repomanager.NewSQLiteRepositoryManager()
	cfg := &config.Config{SessionTTL: time.Hour}
	authSvc := services.NewAuthService(db, repos, cfg, logging.Nop())
	docSvc := services.NewDocumentService(db, repos, store, logging.Nop())

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	app := NewApp(db, repos, authSvc, docSvc, logging.Nop(), in, &out)
	require.NoError(t, app.Run(ctx))
	return out.String()
}

func TestApp_FullSession(t *testing.T) {
	docsDir := filepath.Join(t.TempDir(), "documentos")
	src := filepath.Join(t.TempDir(), "poder.PDF")
	require.NoError(t, os.WriteFile(src, []byte("%PDF"), 0o600))
	hearing := models.Date{Time: models.Today().AddDate(0, 0, 2)}.String()

	out := runApp(t, docsDir,
		// first run creates the administrator
		"admin", "adminpw", "adminpw",
		"clients",
		"login", "admin", "wrong",
		"login", "admin", "adminpw",

		"clients add", "Ana Pérez", "DNI", "123", "ana@example.com", "", "",
		"clients add", "Otro", "DNI", "123", "", "", "",
		"clients add", "Mal", "DNI", "9", "not-an-email", "", "",
		"cases add", "1", "civil", "", "Juzgado 1", "", "2024-01-10", "", "RAD-1",
		"cases add", "77", "penal", "", "", "", "", "", "",

		"acct add", "1", "", "ingreso", "honorarios", "Anticipo", "100,50", "2024-02-01",
		"acct add", "1", "1", "egreso", "", "Copias", "20.25", "",
		"acct add", "1", "", "egreso", "", "Negativo", "-5", "",
		"acct balance 1",
		"liq add", "1", "Capital", "1000", "",
		"liq total 1",
		"cal add", "Audiencia inicial", "", hearing, "1",
		"cal upcoming",

		"docs upload", "1", "1", src, "", "poder",
		"docs upload", "1", "1", src, "", "poder",

		"clients del 1",
		"clients list",
		"clients trash",
		"clients purge 1", "n",
		"clients restore 1",
		"clients search PÉREZ",

		"useradd", "maria", "pw", "pw", "",
		"logout",
		"login", "maria", "pw",
		"acct",
		"liq list",
		"cases list 1",
		"exit",
	)

	for _, want := range []string{
		"No users yet.",
		`Administrator "admin" created`,
		"Please log in first.",
		"error: not logged in or wrong credentials",
		"Logged in as admin (admin).",
		"Client 1 created.",
		"error: a record with the same unique value already exists",
		"Email must be a valid email address",
		"Case 1 created.",
		"error: the referenced client or case does not exist",
		"Entry 1 booked.",
		"Entry 2 booked.",
		"Value must be a positive amount",
		"Line 1 added.",
		"1000.00",
		"Audiencia inicial",
		"Document 1 stored as " + docsDir,
		"Client 1 moved to the trash.",
		"Client 1 restored.",
		`User "maria" created with role usuario.`,
		"Logged in as maria (usuario).",
		"error: this command requires the admin role",
		"RAD-1",
		"Bye!",
	} {
		assert.Contains(t, out, want)
	}

	assert.Regexp(t, `100\.50\s+20\.25\s+80\.25`, out)
	assert.Equal(t, 2, strings.Count(out, "error: this command requires the admin role"))
	assert.Equal(t, 1, strings.Count(out, "(no records)"), "only the active client list is empty")
	assert.NotContains(t, out, "deleted permanently")
	assert.Contains(t, out, "poder.pdf")

	entries, err := filepath.Glob(filepath.Join(docsDir, "1", "*", "*", "*", "poder.pdf"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the duplicate upload copies nothing")
}

func TestApp_PurgeNeedsTrash(t *testing.T) {
	out := runApp(t, t.TempDir(),
		"admin", "adminpw", "adminpw",
		"login", "admin", "adminpw",
		"clients add", "Beto", "NIT", "900", "", "", "",
		"clients purge 1",
		"clients del 1",
		"clients purge 1", "s",
		"clients trash",
		"exit",
	)
	assert.Contains(t, out, "client 1 is not in the trash")
	assert.Contains(t, out, "Client 1 deleted permanently.")
	assert.Equal(t, 1, strings.Count(out, "(no records)"))
}
