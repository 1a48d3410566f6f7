package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/services"
)

var documentHeader = []string{"ID", "CLIENT", "CASE", "NAME", "FILE", "CATEGORY", "UPLOADED", "LOCATION"}

func (a *App) Docs(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	repo := a.repos.Documents(a.db)
	sub, rest := subcommand(args)

	switch sub {
	case "list", "trash":
		f := models.Filter{}
		if sub == "trash" {
			f.View = models.ViewTrash
		}
		if len(rest) > 0 {
			clientID, err := parseID(rest[0])
			if err != nil {
				return err
			}
			f.ClientID = clientID
		}
		list, err := repo.List(ctx, f)
		return a.show(ctx, "documents", documentHeader, documentRows(list, a.docs.Location), err)

	case "search":
		list, err := repo.Search(ctx, strings.Join(rest, " "), models.ViewActive)
		return a.show(ctx, "documents", documentHeader, documentRows(list, a.docs.Location), err)

	case "upload":
		req, err := a.uploadForm()
		if err != nil {
			return err
		}
		doc, err := a.docs.Upload(ctx, req)
		if err != nil {
			return err
		}
		a.done("Document %d stored as %s.", doc.ID, a.docs.Location(*doc))
		return nil

	case "del":
		id, err := argID(rest, 0, "docs del <id>")
		if err != nil {
			return err
		}
		if err := repo.SoftDelete(ctx, id); err != nil {
			return err
		}
		a.done("Document %d moved to the trash.", id)
		return nil

	case "restore":
		id, err := argID(rest, 0, "docs restore <id>")
		if err != nil {
			return err
		}
		if err := repo.Restore(ctx, id); err != nil {
			return err
		}
		a.done("Document %d restored.", id)
		return nil

	case "purge":
		id, err := argID(rest, 0, "docs purge <id>")
		if err != nil {
			return err
		}
		d, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if d.Lifecycle() != models.Trashed {
			return fmt.Errorf("%w: document %d is not in the trash, use docs del first", common.ErrValidation, id)
		}
		ok, err := a.form().confirm(fmt.Sprintf("Permanently delete the record of %q? The file itself is kept.", d.StoredName))
		if err != nil || !ok {
			return err
		}
		if err := repo.HardDelete(ctx, id); err != nil {
			return err
		}
		a.done("Document %d deleted permanently; file kept at %s.", id, a.docs.Location(*d))
		return nil

	default:
		return unknownSub("docs", sub)
	}
}

func (a *App) uploadForm() (services.UploadRequest, error) {
	f := a.form()
	req := services.UploadRequest{}
	var err error
	if req.ClientID, err = f.id("Client id", 0); err != nil {
		return req, err
	}
	if req.ProcessID, err = f.optionalID("Case id", nil); err != nil {
		return req, err
	}
	if req.SourcePath, err = f.text("File to upload", ""); err != nil {
		return req, err
	}
	base := filepath.Base(req.SourcePath)
	if req.Name, err = f.text("Document name", strings.TrimSuffix(base, filepath.Ext(base))); err != nil {
		return req, err
	}
	if req.Category, err = f.text("Category", ""); err != nil {
		return req, err
	}
	return req, nil
}
