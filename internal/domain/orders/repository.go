package orders

import "context"

// Repository guarda punteros: Process y AddLine mutan el pedido almacenado.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
}
