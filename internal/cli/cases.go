package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/validation"
)

var processHeader = []string{"ID", "CLIENT", "TYPE", "COURT", "DOCKET", "STATUS", "START", "END"}

func (a *App) Cases(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	repo := a.repos.Processes(a.db)
	sub, rest := subcommand(args)

	switch sub {
	case "list":
		f := models.Filter{}
		if len(rest) > 0 {
			clientID, err := parseID(rest[0])
			if err != nil {
				return err
			}
			f.ClientID = clientID
		}
		list, err := repo.List(ctx, f)
		return a.show(ctx, "cases", processHeader, processRows(list), err)

	case "search":
		list, err := repo.Search(ctx, strings.Join(rest, " "), models.ViewActive)
		return a.show(ctx, "cases", processHeader, processRows(list), err)

	case "add":
		p := &models.Process{Status: models.ProcessActive, StartDate: models.Today()}
		if err := a.processForm(p); err != nil {
			return err
		}
		id, err := repo.Create(ctx, p)
		if err != nil {
			return err
		}
		a.done("Case %d created.", id)
		return nil

	case "edit":
		id, err := argID(rest, 0, "cases edit <id>")
		if err != nil {
			return err
		}
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := a.processForm(p); err != nil {
			return err
		}
		if err := repo.Update(ctx, p); err != nil {
			return err
		}
		a.done("Case %d updated.", id)
		return nil

	case "status":
		id, err := argID(rest, 0, "cases status <id> <active|closed|archived>")
		if err != nil {
			return err
		}
		if len(rest) < 2 {
			return fmt.Errorf("%w: usage: cases status <id> <active|closed|archived>", common.ErrValidation)
		}
		status, err := models.ParseProcessStatus(rest[1])
		if err != nil {
			return fmt.Errorf("%w: %w", common.ErrValidation, err)
		}
		if err := repo.SetStatus(ctx, id, status); err != nil {
			return err
		}
		a.done("Case %d is now %s.", id, status)
		return nil

	case "del":
		id, err := argID(rest, 0, "cases del <id>")
		if err != nil {
			return err
		}
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		ok, err := a.form().confirm(fmt.Sprintf("Delete case %d (%s, %s) and its settlement lines?", id, p.CaseType, p.ClientName))
		if err != nil || !ok {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		a.done("Case %d deleted.", id)
		return nil

	default:
		return unknownSub("cases", sub)
	}
}

func (a *App) processForm(p *models.Process) error {
	f := a.form()
	var err error
	if p.ClientID, err = f.id("Client id", p.ClientID); err != nil {
		return err
	}
	if p.CaseType, err = f.text("Case type", p.CaseType); err != nil {
		return err
	}
	if p.Description, err = f.text("Description", p.Description); err != nil {
		return err
	}
	if p.Court, err = f.text("Court", p.Court); err != nil {
		return err
	}
	status, err := f.text("Status (active|closed|archived)", string(p.Status))
	if err != nil {
		return err
	}
	p.Status = models.ProcessStatus(status)
	if p.StartDate, err = f.date("Start date", p.StartDate); err != nil {
		return err
	}
	if p.EndDate, err = f.optionalDate("End date", p.EndDate); err != nil {
		return err
	}
	if p.DocketNumber, err = f.text("Docket number", p.DocketNumber); err != nil {
		return err
	}
	return validation.Struct(p)
}
