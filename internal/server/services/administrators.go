package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/dbx"
	"github.com/dmitrijs2005/motorpool/internal/logging"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/repomanager"
)

// AdministratorService manages administrator records. Inputs are expected
// to be validated by the caller.
type AdministratorService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewAdministratorService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *AdministratorService {
	return &AdministratorService{db: db, repomanager: m, log: log}
}

func (s *AdministratorService) Create(ctx context.Context, admin *models.Administrator) (*models.Administrator, error) {
	created, err := s.repomanager.Administrators(s.db).Create(ctx, admin)
	if err != nil {
		return nil, mapStoreError(ctx, s.log, "create administrator", err)
	}
	return created, nil
}

func (s *AdministratorService) Get(ctx context.Context, id int64) (*models.Administrator, error) {
	admin, err := s.repomanager.Administrators(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(ctx, s.log, "get administrator", err)
	}
	return admin, nil
}

func (s *AdministratorService) List(ctx context.Context, page int) ([]models.Administrator, error) {
	admins, err := s.repomanager.Administrators(s.db).List(ctx, page)
	if err != nil {
		return nil, mapStoreError(ctx, s.log, "list administrators", err)
	}
	return admins, nil
}

// Update replaces email, secret and role of the administrator with
// admin.ID. The row is locked for the duration of the change.
func (s *AdministratorService) Update(ctx context.Context, admin *models.Administrator) (*models.Administrator, error) {
	err := dbx.RunInTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Administrators(tx)
		if _, err := repo.LockByID(ctx, admin.ID); err != nil {
			return err
		}
		return repo.Update(ctx, admin)
	})
	if err != nil {
		return nil, mapStoreError(ctx, s.log, "update administrator", err)
	}
	return admin, nil
}

// Delete removes the administrator with id. It reports false without an
// error when the store refuses the removal.
func (s *AdministratorService) Delete(ctx context.Context, id int64) (bool, error) {
	err := s.repomanager.Administrators(s.db).Delete(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, common.ErrorNotFound) {
		return false, err
	}
	s.log.Warn(ctx, "delete administrator failed", "id", id, "error", err)
	return false, nil
}
