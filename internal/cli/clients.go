package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/validation"
)

var clientHeader = []string{"ID", "NAME", "ID TYPE", "ID NUMBER", "EMAIL", "PHONE", "STATE"}

func (a *App) Clients(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	repo := a.repos.Clients(a.db)
	sub, rest := subcommand(args)

	switch sub {
	case "list", "trash":
		view := models.ViewActive
		if sub == "trash" {
			view = models.ViewTrash
		}
		list, err := repo.List(ctx, models.Filter{View: view})
		return a.show(ctx, "clients", clientHeader, clientRows(list), err)

	case "search":
		view := models.ViewActive
		if len(rest) > 0 && rest[0] == "--trash" {
			view, rest = models.ViewTrash, rest[1:]
		}
		list, err := repo.Search(ctx, strings.Join(rest, " "), view)
		return a.show(ctx, "clients", clientHeader, clientRows(list), err)

	case "add":
		c := &models.Client{}
		if err := a.clientForm(c); err != nil {
			return err
		}
		id, err := repo.Create(ctx, c)
		if err != nil {
			return err
		}
		a.done("Client %d created.", id)
		return nil

	case "edit":
		id, err := argID(rest, 0, "clients edit <id>")
		if err != nil {
			return err
		}
		c, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := a.clientForm(c); err != nil {
			return err
		}
		if err := repo.Update(ctx, c); err != nil {
			return err
		}
		a.done("Client %d updated.", id)
		return nil

	case "del":
		id, err := argID(rest, 0, "clients del <id>")
		if err != nil {
			return err
		}
		if err := repo.SoftDelete(ctx, id); err != nil {
			return err
		}
		a.done("Client %d moved to the trash.", id)
		return nil

	case "restore":
		id, err := argID(rest, 0, "clients restore <id>")
		if err != nil {
			return err
		}
		if err := repo.Restore(ctx, id); err != nil {
			return err
		}
		a.done("Client %d restored.", id)
		return nil

	case "purge":
		id, err := argID(rest, 0, "clients purge <id>")
		if err != nil {
			return err
		}
		c, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c.Lifecycle() != models.Trashed {
			return fmt.Errorf("%w: client %d is not in the trash, use clients del first", common.ErrValidation, id)
		}
		ok, err := a.form().confirm(fmt.Sprintf("Permanently delete client %d %q with all its cases and documents?", id, c.Name))
		if err != nil || !ok {
			return err
		}
		if err := repo.HardDelete(ctx, id); err != nil {
			return err
		}
		a.done("Client %d deleted permanently.", id)
		return nil

	default:
		return unknownSub("clients", sub)
	}
}

func (a *App) clientForm(c *models.Client) error {
	f := a.form()
	var err error
	if c.Name, err = f.text("Name", c.Name); err != nil {
		return err
	}
	if c.IDType, err = f.text("ID document type", c.IDType); err != nil {
		return err
	}
	if c.IDNumber, err = f.text("ID document number", c.IDNumber); err != nil {
		return err
	}
	if c.Email, err = f.text("Email", c.Email); err != nil {
		return err
	}
	if c.Phone, err = f.text("Phone", c.Phone); err != nil {
		return err
	}
	if c.Address, err = f.text("Address", c.Address); err != nil {
		return err
	}
	return validation.Struct(c)
}
