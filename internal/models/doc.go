// Package models defines the records persisted in the lexdesk record store
// and the small value types they share.
//
// Each entity has a named struct instead of positional rows. Optional
// foreign keys and dates are pointers; a nil pointer is stored as NULL.
package models
