package dbx

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Classify maps a driver error onto the common sentinels so callers can use
// errors.Is without knowing about sqlite:
//
//	UNIQUE / PRIMARY KEY violation -> common.ErrDuplicateKey
//	FOREIGN KEY violation          -> common.ErrInvalidReference
//	CHECK / NOT NULL violation     -> common.ErrValidation
//	sql.ErrNoRows                  -> common.ErrorNotFound
//	anything else                  -> common.ErrStorageUnavailable
//
// The original error stays in the chain. Already classified errors and nil
// are returned unchanged.
func Classify(err error) error {
	if err == nil || isClassified(err) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", common.ErrorNotFound, err)
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %w", common.ErrDuplicateKey, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %w", common.ErrInvalidReference, err)
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%w: %w", common.ErrValidation, err)
		}
	}
	return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
}

func isClassified(err error) bool {
	for _, target := range []error{
		common.ErrorNotFound,
		common.ErrDuplicateKey,
		common.ErrInvalidReference,
		common.ErrStorageUnavailable,
		common.ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
