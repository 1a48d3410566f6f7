// Package storage opens the lexdesk record store: a single sqlite file
// holding every entity table, brought up to date with the embedded goose
// migrations.
//
// The returned *sql.DB is the storage handle. It is created once at startup
// and handed to repomanager.New; nothing in the module keeps a global
// connection.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory store, used by tests.
const MemoryPath = ":memory:"

// DSN builds the modernc sqlite DSN for path with foreign keys enforced and
// a busy timeout, applied on every new connection.
func DSN(path string) string {
	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", "busy_timeout(5000)")

	if path == MemoryPath {
		return "file::memory:?" + params.Encode()
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "file:" + path + sep + params.Encode()
}

// RunMigrations applies every pending migration.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Open opens (creating if needed) the store at path and migrates it.
//
// The pool is limited to one connection: the application has a single
// interactive caller, and an in-memory database only lives as long as its
// connection.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, dbx.Classify(err))
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, dbx.Classify(err)
	}
	return db, nil
}
