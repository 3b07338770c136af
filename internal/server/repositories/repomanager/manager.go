// Package repomanager vends repositories bound to a database handle and
// prepares the store schema. A PostgreSQL and an in-memory implementation
// are provided.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/motorpool/internal/dbx"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/administrators"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/vehicles"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Administrators(db dbx.DBTX) administrators.Repository
	Vehicles(db dbx.DBTX) vehicles.Repository
}
