package medications

import "context"

// Repository entrega punteros al registro almacenado; mutar el stock a
// través de ellos modifica el catálogo.
type Repository interface {
	Add(ctx context.Context, m *Medication) error
	GetByName(ctx context.Context, name string) (*Medication, error)
	List(ctx context.Context) ([]*Medication, error)
}
