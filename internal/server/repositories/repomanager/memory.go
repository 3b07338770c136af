package repomanager

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/dbx"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/administrators"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/vehicles"
)

// BootstrapAdministrator is the account seeded into an empty store, matching
// the seed row of the SQL migrations.
var BootstrapAdministrator = models.Administrator{
	Email:  "adm@teste.com",
	Secret: "123456",
	Role:   models.RoleAdmin,
}

// MemoryRepositoryManager hands out the same in-memory repositories for
// every handle. Its db arguments are ignored and may be nil.
type MemoryRepositoryManager struct {
	administrators *administrators.MemoryRepository
	vehicles       *vehicles.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		administrators: administrators.NewMemoryRepository(),
		vehicles:       vehicles.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Administrators(dbx.DBTX) administrators.Repository {
	return m.administrators
}

func (m *MemoryRepositoryManager) Vehicles(dbx.DBTX) vehicles.Repository {
	return m.vehicles
}

// RunMigrations seeds the bootstrap administrator. It is safe to call more
// than once.
func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, _ *sql.DB) error {
	seed := BootstrapAdministrator
	if _, err := m.administrators.Create(ctx, &seed); err != nil && !errors.Is(err, common.ErrorAlreadyExists) {
		return err
	}
	return nil
}
