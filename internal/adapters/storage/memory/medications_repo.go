package memory

import (
	"context"
	"errors"
	"sync"

	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/platform/bizkey"
)

// medicationRepo entrega los punteros guardados: el stock es estado
// compartido entre el catálogo y las líneas de pedido.
type medicationRepo struct {
	mu    sync.RWMutex
	items []*medications.Medication
}

func NewMedicationRepo() medications.Repository {
	return &medicationRepo{}
}

// Add acepta duplicados de negocio a propósito: Unique es quien los filtra.
func (r *medicationRepo) Add(ctx context.Context, m *medications.Medication) error {
	if m == nil {
		return errors.New("medication required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, m)
	return nil
}

// GetByName devuelve el primero con ese nombre, sin distinguir mayúsculas.
func (r *medicationRepo) GetByName(ctx context.Context, name string) (*medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := bizkey.Fold(name)
	for _, m := range r.items {
		if bizkey.Fold(m.Name) == want {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

func (r *medicationRepo) List(ctx context.Context) ([]*medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*medications.Medication{}, r.items...), nil
}
