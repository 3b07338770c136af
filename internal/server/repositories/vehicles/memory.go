package vehicles

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]models.Vehicle
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]models.Vehicle)}
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &v, nil
}

func (r *MemoryRepository) LockByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	return r.GetByID(ctx, id)
}

func (r *MemoryRepository) List(_ context.Context, filter Filter) ([]models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(filter.Name)
	matched := make([]models.Vehicle, 0, len(r.items))
	for _, v := range r.items {
		if needle == "" || strings.Contains(strings.ToLower(v.Name), needle) {
			matched = append(matched, v)
		}
	}
	slices.SortFunc(matched, func(a, b models.Vehicle) int {
		return cmp.Compare(a.ID, b.ID)
	})

	offset := common.PageOffset(filter.Page)
	if offset >= len(matched) {
		return []models.Vehicle{}, nil
	}
	end := min(offset+common.PageSize, len(matched))

	return matched[offset:end], nil
}

func (r *MemoryRepository) Create(_ context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	v.ID = r.nextID
	r.items[v.ID] = *v

	return v, nil
}

func (r *MemoryRepository) Update(_ context.Context, v *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[v.ID]; !ok {
		return common.ErrorNotFound
	}
	r.items[v.ID] = *v
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
