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
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/vehicles"
)

type VehicleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewVehicleService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *VehicleService {
	return &VehicleService{db: db, repomanager: m, log: log}
}

func (s *VehicleService) Create(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	created, err := s.repomanager.Vehicles(s.db).Create(ctx, v)
	if err != nil {
		return nil, mapStoreError(ctx, s.log, "create vehicle", err)
	}
	return created, nil
}

func (s *VehicleService) Get(ctx context.Context, id int64) (*models.Vehicle, error) {
	v, err := s.repomanager.Vehicles(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(ctx, s.log, "get vehicle", err)
	}
	return v, nil
}

// List returns one page of vehicles, optionally filtered by name.
func (s *VehicleService) List(ctx context.Context, page int, name string) ([]models.Vehicle, error) {
	list, err := s.repomanager.Vehicles(s.db).List(ctx, vehicles.Filter{Page: page, Name: name})
	if err != nil {
		return nil, mapStoreError(ctx, s.log, "list vehicles", err)
	}
	return list, nil
}

func (s *VehicleService) Update(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	err := dbx.RunInTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Vehicles(tx)
		if _, err := repo.LockByID(ctx, v.ID); err != nil {
			return err
		}
		return repo.Update(ctx, v)
	})
	if err != nil {
		return nil, mapStoreError(ctx, s.log, "update vehicle", err)
	}
	return v, nil
}

// Delete removes the vehicle with id. It reports false without an error
// when the store refuses the removal.
func (s *VehicleService) Delete(ctx context.Context, id int64) (bool, error) {
	err := s.repomanager.Vehicles(s.db).Delete(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, common.ErrorNotFound) {
		return false, err
	}
	s.log.Warn(ctx, "delete vehicle failed", "id", id, "error", err)
	return false, nil
}
