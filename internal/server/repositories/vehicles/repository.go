// Package vehicles stores the vehicle catalogue.
package vehicles

import (
	"context"

	"github.com/dmitrijs2005/motorpool/internal/server/models"
)

// Filter narrows a listing. An empty Name matches every vehicle.
type Filter struct {
	Page int
	// Name is matched case-insensitively as a substring.
	Name string
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (*models.Vehicle, error)
	LockByID(ctx context.Context, id int64) (*models.Vehicle, error)
	List(ctx context.Context, filter Filter) ([]models.Vehicle, error)
	Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
