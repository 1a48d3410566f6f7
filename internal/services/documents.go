package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/filestore"
	"github.com/dmitrijs2005/lexdesk/internal/logging"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/repomanager"
	"github.com/dmitrijs2005/lexdesk/internal/validation"
)

// UploadRequest describes a file to attach. Name is the logical name the
// stored file name is derived from.
type UploadRequest struct {
	ClientID   int64
	ProcessID  *int64
	Name       string
	SourcePath string
	Category   string
}

// DocumentService copies files into storage and records them.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       filestore.Store
	logger      logging.Logger
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager, store filestore.Store, logger logging.Logger) *DocumentService {
	return &DocumentService{db: db, repomanager: m, store: store, logger: logger}
}

// Location returns where d's file lives in the configured storage.
func (s *DocumentService) Location(d models.Document) string {
	return s.store.Location(d.StoragePath)
}

// checkOwner makes sure the client is active and, when given, the process
// belongs to it, so a copied file is not orphaned by a failing insert.
func (s *DocumentService) checkOwner(ctx context.Context, clientID int64, processID *int64) error {
	client, err := s.repomanager.Clients(s.db).GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("client %d: %w", clientID, common.ErrInvalidReference)
		}
		return err
	}
	if client.Deleted {
		return fmt.Errorf("%w: client %d is in the trash", common.ErrValidation, clientID)
	}

	if processID == nil {
		return nil
	}
	process, err := s.repomanager.Processes(s.db).GetByID(ctx, *processID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("process %d: %w", *processID, common.ErrInvalidReference)
		}
		return err
	}
	if process.ClientID != clientID {
		return fmt.Errorf("%w: process %d belongs to another client", common.ErrValidation, *processID)
	}
	return nil
}

// Upload copies req.SourcePath into storage and records the document.
//
// A document with the same stored name already active in the process
// fails with common.ErrDuplicateKey before anything is copied. Files are
// never deleted: if the insert fails after the copy, the object stays and
// its key is logged.
func (s *DocumentService) Upload(ctx context.Context, req UploadRequest) (*models.Document, error) {
	name := strings.TrimSpace(req.Name)
	storedName := filestore.StoredName(name, req.SourcePath)
	doc := &models.Document{
		ClientID:    req.ClientID,
		ProcessID:   req.ProcessID,
		Name:        name,
		StoredName:  storedName,
		StoragePath: filestore.NewKey(req.ClientID, storedName),
		Category:    strings.TrimSpace(req.Category),
	}
	if err := validation.Struct(doc); err != nil {
		return nil, err
	}

	src, err := os.Open(req.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", common.ErrValidation, req.SourcePath, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", req.SourcePath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", common.ErrValidation, req.SourcePath)
	}

	if err := s.checkOwner(ctx, req.ClientID, req.ProcessID); err != nil {
		return nil, err
	}

	repo := s.repomanager.Documents(s.db)
	exists, err := repo.ExistsActive(ctx, req.ClientID, req.ProcessID, storedName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("document %q: %w", storedName, common.ErrDuplicateKey)
	}

	if err := s.store.Put(ctx, doc.StoragePath, src, info.Size()); err != nil {
		return nil, err
	}

	if _, err := repo.Create(ctx, doc); err != nil {
		s.logger.Error(ctx, "document copied but not recorded",
			"key", doc.StoragePath, "location", s.store.Location(doc.StoragePath), "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "document uploaded",
		"document_id", doc.ID, "client_id", doc.ClientID, "stored_name", doc.StoredName)
	return doc, nil
}
