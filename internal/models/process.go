package models

import "fmt"

// ProcessStatus is the procedural state of a case.
type ProcessStatus string

const (
	ProcessActive   ProcessStatus = "active"
	ProcessClosed   ProcessStatus = "closed"
	ProcessArchived ProcessStatus = "archived"
)

var processStatuses = []ProcessStatus{ProcessActive, ProcessClosed, ProcessArchived}

func ParseProcessStatus(s string) (ProcessStatus, error) {
	for _, st := range processStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown process status %q", s)
}

// Process is a legal case handled for exactly one client.
type Process struct {
	ID           int64
	ClientID     int64         `validate:"required,gt=0"`
	CaseType     string        `validate:"required,max=100"`
	Description  string        `validate:"max=2000"`
	Court        string        `validate:"max=200"`
	Status       ProcessStatus `validate:"required,oneof=active closed archived"`
	StartDate    Date          `validate:"required"`
	EndDate      *Date
	DocketNumber string `validate:"max=60"`

	// ClientName is filled by listings for display and ignored on writes.
	ClientName string
}
