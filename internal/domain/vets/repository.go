package vets

import "context"

type Repository interface {
	Create(ctx context.Context, v Veterinarian) error
	List(ctx context.Context) ([]Veterinarian, error)
}
