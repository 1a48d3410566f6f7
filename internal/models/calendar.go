package models

// CalendarEvent is a hearing, deadline or meeting, optionally tied to a
// process.
type CalendarEvent struct {
	ID          int64
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
	Date        Date   `validate:"required"`
	ProcessID   *int64 `validate:"omitempty,gt=0"`
}
