package memory

import (
	"context"
	"sync"

	"vet-clinic/internal/domain/visits"
)

type visitRepo struct {
	mu    sync.RWMutex
	items []visits.CompleteVisit
}

func NewVisitRepo() visits.Repository {
	return &visitRepo{}
}

func (r *visitRepo) Append(ctx context.Context, cv visits.CompleteVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, cv)
	return nil
}

func (r *visitRepo) List(ctx context.Context) ([]visits.CompleteVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]visits.CompleteVisit{}, r.items...), nil
}
