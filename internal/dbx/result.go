package dbx

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/common"
)

// RequireAffected returns common.ErrorNotFound when res touched no row.
// entity and id only decorate the message.
func RequireAffected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", Classify(err))
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, common.ErrorNotFound)
	}
	return nil
}
