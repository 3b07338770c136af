package administrators

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
)

// MemoryRepository keeps administrators in a map guarded by a mutex.
// Email uniqueness is enforced like the database index does.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]models.Administrator
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]models.Administrator)}
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*models.Administrator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &admin, nil
}

func (r *MemoryRepository) LockByID(ctx context.Context, id int64) (*models.Administrator, error) {
	return r.GetByID(ctx, id)
}

func (r *MemoryRepository) FindByCredentials(_ context.Context, email, secret string) (*models.Administrator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, admin := range r.sorted() {
		if admin.Email == email && admin.Secret == secret {
			return &admin, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) List(_ context.Context, page int) ([]models.Administrator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sorted()
	offset := common.PageOffset(page)
	if offset >= len(all) {
		return []models.Administrator{}, nil
	}
	end := min(offset+common.PageSize, len(all))

	return slices.Clone(all[offset:end]), nil
}

func (r *MemoryRepository) Create(_ context.Context, admin *models.Administrator) (*models.Administrator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(admin.Email, 0) {
		return nil, common.ErrorAlreadyExists
	}

	r.nextID++
	admin.ID = r.nextID
	r.items[admin.ID] = *admin

	return admin, nil
}

func (r *MemoryRepository) Update(_ context.Context, admin *models.Administrator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[admin.ID]; !ok {
		return common.ErrorNotFound
	}
	if r.emailTaken(admin.Email, admin.ID) {
		return common.ErrorAlreadyExists
	}

	r.items[admin.ID] = *admin
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}

// sorted returns all records ordered by id. Callers must hold mu.
func (r *MemoryRepository) sorted() []models.Administrator {
	out := make([]models.Administrator, 0, len(r.items))
	for _, admin := range r.items {
		out = append(out, admin)
	}
	slices.SortFunc(out, func(a, b models.Administrator) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func (r *MemoryRepository) emailTaken(email string, except int64) bool {
	for id, admin := range r.items {
		if id != except && admin.Email == email {
			return true
		}
	}
	return false
}
