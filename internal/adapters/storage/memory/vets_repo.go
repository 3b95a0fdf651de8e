package memory

import (
	"context"
	"sync"

	"vet-clinic/internal/domain/vets"
)

type vetRepo struct {
	mu    sync.RWMutex
	items []vets.Veterinarian
}

func NewVetRepo() vets.Repository {
	return &vetRepo{}
}

func (r *vetRepo) Create(ctx context.Context, v vets.Veterinarian) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ID == v.ID {
			return ErrAlreadyExists
		}
	}
	r.items = append(r.items, v)
	return nil
}

func (r *vetRepo) List(ctx context.Context) ([]vets.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]vets.Veterinarian{}, r.items...), nil
}
