package dbx

import (
	"database/sql/driver"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/textx"
	"modernc.org/sqlite"
)

// FoldFunc is the name of the SQL scalar that applies textx.Fold. It is
// registered for every sqlite connection opened by this process.
const FoldFunc = "fold"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(FoldFunc, 1, foldScalar)
}

func foldScalar(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return "", nil
	case string:
		return textx.Fold(v), nil
	case []byte:
		return textx.Fold(string(v)), nil
	default:
		return textx.Fold(fmt.Sprint(v)), nil
	}
}

// ContainsFolded returns a SQL predicate that is true when any of the given
// columns contains the bound needle after folding. The needle must be passed
// through textx.Fold by the caller, once per column.
//
//	where, n := dbx.ContainsFolded("name", "id_number")
//	args := dbx.Repeat(textx.Fold(q), n)
func ContainsFolded(columns ...string) (string, int) {
	clause := "("
	for i, c := range columns {
		if i > 0 {
			clause += " OR "
		}
		clause += "instr(" + FoldFunc + "(" + c + "), ?) > 0"
	}
	return clause + ")", len(columns)
}

// Repeat returns v repeated n times as query arguments.
func Repeat(v any, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = v
	}
	return out
}
