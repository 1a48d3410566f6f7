package models

import "github.com/shopspring/decimal"

// LiquidatorEntry is one line of a settlement computed for a process.
type LiquidatorEntry struct {
	ID        int64
	ProcessID int64           `validate:"required,gt=0"`
	Concept   string          `validate:"required,max=300"`
	Amount    decimal.Decimal `validate:"positive"`
	Date      Date            `validate:"required"`
}
