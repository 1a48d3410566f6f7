package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountingKind tells whether an entry adds to or subtracts from a
// client's balance.
type AccountingKind string

const (
	Income  AccountingKind = "ingreso"
	Expense AccountingKind = "egreso"
)

func ParseAccountingKind(s string) (AccountingKind, error) {
	switch AccountingKind(s) {
	case Income, Expense:
		return AccountingKind(s), nil
	}
	return "", fmt.Errorf("unknown accounting kind %q", s)
}

// AccountingEntry is a single fee, payment or expense booked for a client.
// Value is always positive; Kind carries the sign.
type AccountingEntry struct {
	ID          int64
	ClientID    int64           `validate:"required,gt=0"`
	ProcessID   *int64          `validate:"omitempty,gt=0"`
	Kind        AccountingKind  `validate:"required,oneof=ingreso egreso"`
	Category    string          `validate:"max=100"`
	Description string          `validate:"required,max=500"`
	Value       decimal.Decimal `validate:"positive"`
	Date        Date            `validate:"required"`
}

// Signed returns Value with the sign implied by Kind.
func (e AccountingEntry) Signed() decimal.Decimal {
	if e.Kind == Expense {
		return e.Value.Neg()
	}
	return e.Value
}

// Balance summarises a client's entries.
type Balance struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}
