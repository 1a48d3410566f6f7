package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/lexdesk/internal/buildinfo"
	"github.com/dmitrijs2005/lexdesk/internal/cli"
	"github.com/dmitrijs2005/lexdesk/internal/config"
	"github.com/dmitrijs2005/lexdesk/internal/filestore"
	"github.com/dmitrijs2005/lexdesk/internal/logging"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/repomanager"
	"github.com/dmitrijs2005/lexdesk/internal/services"
	"github.com/dmitrijs2005/lexdesk/internal/storage"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open database %s: %v", cfg.DatabasePath, err)
	}
	defer db.Close()

	store, err := filestore.New(ctx, cfg)
	if err != nil {
		log.Fatalf("document storage: %v", err)
	}

	repos := repomanager.NewSQLiteRepositoryManager()
	app := cli.NewApp(db, repos,
		services.NewAuthService(db, repos, cfg, logger),
		services.NewDocumentService(db, repos, store, logger),
		logger, os.Stdin, os.Stdout)

	logger.Info(ctx, "lexdesk started", "database", cfg.DatabasePath, "storage", cfg.StorageBackend)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "lexdesk stopped", "error", err)
		db.Close()
		os.Exit(1)
	}
}
