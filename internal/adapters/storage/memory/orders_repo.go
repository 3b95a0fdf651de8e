package memory

import (
	"context"
	"errors"
	"sync"

	"vet-clinic/internal/domain/orders"
)

type orderRepo struct {
	mu    sync.RWMutex
	order []int
	byID  map[int]*orders.Order
}

func NewOrderRepo() orders.Repository {
	return &orderRepo{
		byID: make(map[int]*orders.Order),
	}
}

func (r *orderRepo) Create(ctx context.Context, o *orders.Order) error {
	if o == nil {
		return errors.New("order required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; exists {
		return ErrAlreadyExists
	}
	r.byID[o.ID] = o
	r.order = append(r.order, o.ID)
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int) (*orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (r *orderRepo) List(ctx context.Context) ([]*orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*orders.Order, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
