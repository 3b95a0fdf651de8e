package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
)

type ownerRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]owners.Owner
}

func NewOwnerRepo() owners.Repository {
	return &ownerRepo{
		byID: make(map[string]owners.Owner),
	}
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.byID[o.ID]; exists {
		return ErrAlreadyExists
	}
	r.byID[o.ID] = cloneOwner(o)
	r.order = append(r.order, o.ID)
	return nil
}

func (r *ownerRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; !exists {
		return ErrNotFound
	}
	r.byID[o.ID] = cloneOwner(o)
	return nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, ErrNotFound
	}
	return cloneOwner(o), nil
}

// List respeta el orden de registro.
func (r *ownerRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneOwner(r.byID[id]))
	}
	return out, nil
}

// La lista de mascotas se copia para que quien llama no mute lo guardado.
func cloneOwner(o owners.Owner) owners.Owner {
	o.Pets = append([]pets.Pet{}, o.Pets...)
	return o
}
