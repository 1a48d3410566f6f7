package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// test seams for the terminal
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line from reader.
// The line is trimmed. A final line without newline is returned as is.
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password without echo when stdin is a terminal, and
// as a plain line from reader otherwise (scripts, tests).
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return GetSimpleText(reader, prompt, w)
	}

	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// prompter collects typed form fields. Empty input keeps def and "-"
// clears it, so the same forms serve add (zero defaults) and edit
// (current values).
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func (p prompter) text(label, def string) (string, error) {
	prompt := label
	if def != "" {
		prompt += " [" + def + "]"
	}
	v, err := GetSimpleText(p.r, prompt, p.w)
	if err != nil {
		return "", err
	}
	switch v {
	case "":
		return def, nil
	case "-":
		return "", nil
	}
	return v, nil
}

func (p prompter) id(label string, def int64) (int64, error) {
	d := ""
	if def > 0 {
		d = strconv.FormatInt(def, 10)
	}
	v, err := p.text(label, d)
	if err != nil {
		return 0, err
	}
	return parseID(v)
}

// optionalID accepts "-" to clear the current value.
func (p prompter) optionalID(label string, def *int64) (*int64, error) {
	d := ""
	if def != nil {
		d = strconv.FormatInt(*def, 10)
	}
	v, err := p.text(label+" (optional, - to clear)", d)
	if err != nil {
		return nil, err
	}
	if v == "" || v == "-" {
		return nil, nil
	}
	id, err := parseID(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (p prompter) date(label string, def models.Date) (models.Date, error) {
	v, err := p.text(label+" (YYYY-MM-DD)", def.String())
	if err != nil {
		return models.Date{}, err
	}
	if v == "" {
		return models.Date{}, nil
	}
	d, err := models.ParseDate(v)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return d, nil
}

func (p prompter) optionalDate(label string, def *models.Date) (*models.Date, error) {
	d := ""
	if def != nil {
		d = def.String()
	}
	v, err := p.text(label+" (YYYY-MM-DD, optional, - to clear)", d)
	if err != nil {
		return nil, err
	}
	if v == "" || v == "-" {
		return nil, nil
	}
	parsed, err := models.ParseDate(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return &parsed, nil
}

func (p prompter) amount(label string, def decimal.Decimal) (decimal.Decimal, error) {
	d := ""
	if !def.IsZero() {
		d = def.String()
	}
	v, err := p.text(label, d)
	if err != nil {
		return decimal.Zero, err
	}
	if v == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not an amount", common.ErrValidation, v)
	}
	return amount, nil
}

func (p prompter) confirm(question string) (bool, error) {
	v, err := GetSimpleText(p.r, question+" (y/N)", p.w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(v) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	}
	return false, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", common.ErrValidation, s)
	}
	return id, nil
}

// argID parses args[i] as an id.
func argID(args []string, i int, usage string) (int64, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("%w: usage: %s", common.ErrValidation, usage)
	}
	return parseID(args[i])
}
