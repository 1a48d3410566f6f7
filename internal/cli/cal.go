package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/validation"
)

var calendarHeader = []string{"ID", "DATE", "TITLE", "CASE", "DESCRIPTION"}

const defaultUpcomingDays = 7

func (a *App) Cal(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	repo := a.repos.Calendar(a.db)
	sub, rest := subcommand(args)

	switch sub {
	case "list":
		list, err := repo.List(ctx, models.Filter{})
		return a.show(ctx, "calendar", calendarHeader, calendarRows(list), err)

	case "upcoming":
		days := defaultUpcomingDays
		if len(rest) > 0 {
			n, err := strconv.Atoi(rest[0])
			if err != nil || n < 0 {
				return fmt.Errorf("%w: usage: cal upcoming [days]", common.ErrValidation)
			}
			days = n
		}
		today := models.Today()
		until := models.Date{Time: today.AddDate(0, 0, days)}
		list, err := repo.Between(ctx, today, until)
		return a.show(ctx, "calendar", calendarHeader, calendarRows(list), err)

	case "add":
		e := &models.CalendarEvent{Date: models.Today()}
		f := a.form()
		var err error
		if e.Title, err = f.text("Title", ""); err != nil {
			return err
		}
		if e.Description, err = f.text("Description", ""); err != nil {
			return err
		}
		if e.Date, err = f.date("Date", e.Date); err != nil {
			return err
		}
		if e.ProcessID, err = f.optionalID("Case id", nil); err != nil {
			return err
		}
		if err := validation.Struct(e); err != nil {
			return err
		}
		id, err := repo.Create(ctx, e)
		if err != nil {
			return err
		}
		a.done("Event %d scheduled for %s.", id, e.Date)
		return nil

	case "del":
		id, err := argID(rest, 0, "cal del <id>")
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		a.done("Event %d deleted.", id)
		return nil

	default:
		return unknownSub("cal", sub)
	}
}
