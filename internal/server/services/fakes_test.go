package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/motorpool/internal/dbx"
	"github.com/dmitrijs2005/motorpool/internal/logging"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/administrators"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/vehicles"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// brokenAdmins fails every call with err.
type brokenAdmins struct{ err error }

func (b brokenAdmins) GetByID(context.Context, int64) (*models.Administrator, error) {
	return nil, b.err
}
func (b brokenAdmins) LockByID(context.Context, int64) (*models.Administrator, error) {
	return nil, b.err
}
func (b brokenAdmins) FindByCredentials(context.Context, string, string) (*models.Administrator, error) {
	return nil, b.err
}
func (b brokenAdmins) List(context.Context, int) ([]models.Administrator, error) { return nil, b.err }
func (b brokenAdmins) Create(context.Context, *models.Administrator) (*models.Administrator, error) {
	return nil, b.err
}
func (b brokenAdmins) Update(context.Context, *models.Administrator) error { return b.err }
func (b brokenAdmins) Delete(context.Context, int64) error                 { return b.err }

type brokenVehicles struct{ err error }

func (b brokenVehicles) GetByID(context.Context, int64) (*models.Vehicle, error)  { return nil, b.err }
func (b brokenVehicles) LockByID(context.Context, int64) (*models.Vehicle, error) { return nil, b.err }
func (b brokenVehicles) List(context.Context, vehicles.Filter) ([]models.Vehicle, error) {
	return nil, b.err
}
func (b brokenVehicles) Create(context.Context, *models.Vehicle) (*models.Vehicle, error) {
	return nil, b.err
}
func (b brokenVehicles) Update(context.Context, *models.Vehicle) error { return b.err }
func (b brokenVehicles) Delete(context.Context, int64) error           { return b.err }

type fakeManager struct {
	admins   administrators.Repository
	vehicles vehicles.Repository
}

func (f *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeManager) Administrators(dbx.DBTX) administrators.Repository {
	return f.admins
}
func (f *fakeManager) Vehicles(dbx.DBTX) vehicles.Repository { return f.vehicles }

type fakeIssuer struct {
	token string
	err   error
}

func (f fakeIssuer) Issue(*models.Administrator) (string, error) { return f.token, f.err }
