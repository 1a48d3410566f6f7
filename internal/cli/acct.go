package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/validation"
)

var accountingHeader = []string{"ID", "DATE", "CLIENT", "CASE", "KIND", "CATEGORY", "DESCRIPTION", "VALUE"}

// Acct manages accounting entries. Admin only.
func (a *App) Acct(ctx context.Context, args []string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	repo := a.repos.Accounting(a.db)
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
		return a.show(ctx, "accounting", accountingHeader, accountingRows(list), err)

	case "add":
		e := &models.AccountingEntry{Kind: models.Income, Date: models.Today()}
		if err := a.accountingForm(e); err != nil {
			return err
		}
		id, err := repo.Create(ctx, e)
		if err != nil {
			return err
		}
		a.done("Entry %d booked.", id)
		return nil

	case "del":
		id, err := argID(rest, 0, "acct del <id>")
		if err != nil {
			return err
		}
		e, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		ok, err := a.form().confirm(fmt.Sprintf("Delete entry %d (%s %s)?", id, e.Description, e.Signed().StringFixed(2)))
		if err != nil || !ok {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		a.done("Entry %d deleted.", id)
		return nil

	case "balance":
		clientID, err := argID(rest, 0, "acct balance <client>")
		if err != nil {
			return err
		}
		b, err := repo.Balance(ctx, clientID)
		rows := [][]string{{b.Income.StringFixed(2), b.Expense.StringFixed(2), b.Net.StringFixed(2)}}
		return a.show(ctx, "balance", []string{"INCOME", "EXPENSE", "NET"}, rows, err)

	default:
		return unknownSub("acct", sub)
	}
}

func (a *App) accountingForm(e *models.AccountingEntry) error {
	f := a.form()
	var err error
	if e.ClientID, err = f.id("Client id", e.ClientID); err != nil {
		return err
	}
	if e.ProcessID, err = f.optionalID("Case id", e.ProcessID); err != nil {
		return err
	}
	kind, err := f.text("Kind (ingreso|egreso)", string(e.Kind))
	if err != nil {
		return err
	}
	if e.Kind, err = models.ParseAccountingKind(kind); err != nil {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	if e.Category, err = f.text("Category", e.Category); err != nil {
		return err
	}
	if e.Description, err = f.text("Description", e.Description); err != nil {
		return err
	}
	if e.Value, err = f.amount("Value", e.Value); err != nil {
		return err
	}
	if e.Date, err = f.date("Date", e.Date); err != nil {
		return err
	}
	return validation.Struct(e)
}
