package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophportal/internal/dbx"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/statushistory"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/submissions"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a *sql.DB or *sql.Tx so
// services can compose them inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Submissions(db dbx.DBTX) submissions.Repository
	StatusHistory(db dbx.DBTX) statushistory.Repository
}
