package models

import "fmt"

// Lifecycle is the visibility state of a soft-deletable record. Purged is
// terminal and has no stored representation: the row no longer exists.
type Lifecycle int

const (
	Active Lifecycle = iota
	Trashed
	Purged
)

func (l Lifecycle) String() string {
	switch l {
	case Active:
		return "active"
	case Trashed:
		return "trashed"
	case Purged:
		return "purged"
	default:
		return fmt.Sprintf("lifecycle(%d)", int(l))
	}
}

// LifecycleFromDeleted maps the stored deleted flag to a state.
func LifecycleFromDeleted(deleted bool) Lifecycle {
	if deleted {
		return Trashed
	}
	return Active
}

// LifecycleOp is an operation that moves a record between states.
type LifecycleOp int

const (
	OpTrash LifecycleOp = iota
	OpRestore
	OpPurge
)

func (op LifecycleOp) String() string {
	switch op {
	case OpTrash:
		return "trash"
	case OpRestore:
		return "restore"
	case OpPurge:
		return "purge"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Next returns the state reached by applying op to l and whether that
// changes anything. Repeating trash or restore is a no-op, not an error:
//
//	Active  --trash-->   Trashed
//	Trashed --restore--> Active
//	Active  --purge-->   Purged
//	Trashed --purge-->   Purged
func (l Lifecycle) Next(op LifecycleOp) (Lifecycle, bool) {
	switch {
	case l == Purged:
		return Purged, false
	case op == OpPurge:
		return Purged, true
	case op == OpTrash && l == Active:
		return Trashed, true
	case op == OpRestore && l == Trashed:
		return Active, true
	default:
		return l, false
	}
}

// View selects which lifecycle states a listing returns.
type View int

const (
	// ViewActive lists records that are not trashed. It is the default.
	ViewActive View = iota
	// ViewTrash lists only trashed records.
	ViewTrash
	// ViewAll lists both.
	ViewAll
)

// DeletedClause returns the SQL predicate on the deleted column for v.
func (v View) DeletedClause() string {
	switch v {
	case ViewTrash:
		return "deleted = 1"
	case ViewAll:
		return "1 = 1"
	default:
		return "deleted = 0"
	}
}
