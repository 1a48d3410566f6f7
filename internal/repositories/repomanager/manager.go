// Package repomanager vends the per-entity gateways bound to a dbx.DBTX, so
// a service can run several gateways inside one dbx.WithTx call or against
// the plain storage handle.
package repomanager

import (
	"github.com/dmitrijs2005/lexdesk/internal/dbx"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/accounting"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/calendar"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/clients"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/documents"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/liquidators"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/processes"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/users"
)

type RepositoryManager interface {
	Clients(db dbx.DBTX) clients.Repository
	Processes(db dbx.DBTX) processes.Repository
	Documents(db dbx.DBTX) documents.Repository
	Accounting(db dbx.DBTX) accounting.Repository
	Calendar(db dbx.DBTX) calendar.Repository
	Liquidators(db dbx.DBTX) liquidators.Repository
	Users(db dbx.DBTX) users.Repository
}

// SQLiteRepositoryManager vends the sqlite implementations.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Clients(db dbx.DBTX) clients.Repository {
	return clients.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Processes(db dbx.DBTX) processes.Repository {
	return processes.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Documents(db dbx.DBTX) documents.Repository {
	return documents.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Accounting(db dbx.DBTX) accounting.Repository {
	return accounting.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Calendar(db dbx.DBTX) calendar.Repository {
	return calendar.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Liquidators(db dbx.DBTX) liquidators.Repository {
	return liquidators.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}
