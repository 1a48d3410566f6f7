package cli

import (
	"context"

	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/validation"
)

var liquidatorHeader = []string{"ID", "CASE", "DATE", "CONCEPT", "AMOUNT"}

// Liq manages settlement lines. Admin only.
func (a *App) Liq(ctx context.Context, args []string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	repo := a.repos.Liquidators(a.db)
	sub, rest := subcommand(args)

	switch sub {
	case "list":
		f := models.Filter{}
		if len(rest) > 0 {
			processID, err := parseID(rest[0])
			if err != nil {
				return err
			}
			f.ProcessID = processID
		}
		list, err := repo.List(ctx, f)
		return a.show(ctx, "liquidator", liquidatorHeader, liquidatorRows(list), err)

	case "add":
		e := &models.LiquidatorEntry{Date: models.Today()}
		f := a.form()
		var err error
		if e.ProcessID, err = f.id("Case id", 0); err != nil {
			return err
		}
		if e.Concept, err = f.text("Concept", ""); err != nil {
			return err
		}
		if e.Amount, err = f.amount("Amount", e.Amount); err != nil {
			return err
		}
		if e.Date, err = f.date("Date", e.Date); err != nil {
			return err
		}
		if err := validation.Struct(e); err != nil {
			return err
		}
		id, err := repo.Create(ctx, e)
		if err != nil {
			return err
		}
		a.done("Line %d added.", id)
		return nil

	case "del":
		id, err := argID(rest, 0, "liq del <id>")
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		a.done("Line %d deleted.", id)
		return nil

	case "total":
		processID, err := argID(rest, 0, "liq total <case>")
		if err != nil {
			return err
		}
		total, err := repo.Total(ctx, processID)
		return a.show(ctx, "liquidator", []string{"CASE", "TOTAL"}, [][]string{{id(processID), total.StringFixed(2)}}, err)

	default:
		return unknownSub("liq", sub)
	}
}
