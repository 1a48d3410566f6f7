package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
)

// table writes rows as tab-aligned columns under header.
func table(w io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no records)")
	}
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func optID(v *int64) string {
	if v == nil {
		return "-"
	}
	return id(*v)
}

func optDate(d *models.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func clientRows(list []models.Client) [][]string {
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{id(c.ID), c.Name, c.IDType, c.IDNumber, c.Email, c.Phone, c.Lifecycle().String()})
	}
	return rows
}

func processRows(list []models.Process) [][]string {
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{id(p.ID), p.ClientName, p.CaseType, p.Court, p.DocketNumber,
			string(p.Status), p.StartDate.String(), optDate(p.EndDate)})
	}
	return rows
}

func documentRows(list []models.Document, location func(models.Document) string) [][]string {
	rows := make([][]string, 0, len(list))
	for _, d := range list {
		rows = append(rows, []string{id(d.ID), id(d.ClientID), optID(d.ProcessID), d.Name, d.StoredName,
			d.Category, d.UploadedAt.Local().Format("2006-01-02 15:04"), location(d)})
	}
	return rows
}

func accountingRows(list []models.AccountingEntry) [][]string {
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{id(e.ID), e.Date.String(), id(e.ClientID), optID(e.ProcessID),
			string(e.Kind), e.Category, e.Description, e.Signed().StringFixed(2)})
	}
	return rows
}

func calendarRows(list []models.CalendarEvent) [][]string {
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{id(e.ID), e.Date.String(), e.Title, optID(e.ProcessID), e.Description})
	}
	return rows
}

func liquidatorRows(list []models.LiquidatorEntry) [][]string {
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{id(e.ID), id(e.ProcessID), e.Date.String(), e.Concept, e.Amount.StringFixed(2)})
	}
	return rows
}

// userMessage turns an error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, common.ErrDuplicateKey):
		return "a record with the same unique value already exists"
	case errors.Is(err, common.ErrAlreadyExists):
		return "already exists"
	case errors.Is(err, common.ErrorNotFound):
		return "not found"
	case errors.Is(err, common.ErrInvalidReference):
		return "the referenced client or case does not exist"
	case errors.Is(err, common.ErrFileExists):
		return "a file with that name already exists in storage"
	case errors.Is(err, common.ErrForbidden):
		return "this command requires the admin role"
	case errors.Is(err, common.ErrorUnauthorized):
		return "not logged in or wrong credentials"
	case errors.Is(err, common.ErrStorageUnavailable):
		return "storage unavailable, see log"
	default:
		return err.Error()
	}
}
