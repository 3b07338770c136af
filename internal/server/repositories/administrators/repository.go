// Package administrators stores the administrator identities that may sign
// in to the API.
package administrators

import (
	"context"

	"github.com/dmitrijs2005/motorpool/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*models.Administrator, error)
	// LockByID is GetByID that also holds a row lock until the surrounding
	// transaction ends.
	LockByID(ctx context.Context, id int64) (*models.Administrator, error)
	// FindByCredentials returns the lowest-id administrator whose email and
	// secret both equal the inputs.
	FindByCredentials(ctx context.Context, email, secret string) (*models.Administrator, error)
	List(ctx context.Context, page int) ([]models.Administrator, error)
	Create(ctx context.Context, admin *models.Administrator) (*models.Administrator, error)
	Update(ctx context.Context, admin *models.Administrator) error
	Delete(ctx context.Context, id int64) error
}
