package visits

import "context"

// Repository es append-only y conserva el orden de registro.
type Repository interface {
	Append(ctx context.Context, cv CompleteVisit) error
	List(ctx context.Context) ([]CompleteVisit, error)
}
