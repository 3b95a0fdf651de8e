package vets

import (
	"context"
	"strings"

	"vet-clinic/internal/platform/bizkey"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Veterinarian, error) {
	return s.repo.List(ctx)
}

func (s *Service) Available(ctx context.Context) ([]Veterinarian, error) {
	return s.filter(ctx, func(v Veterinarian) bool { return v.Available })
}

// FindBySpecialty busca por substring de la especialidad, sin distinguir
// mayúsculas. Una búsqueda vacía devuelve todos.
func (s *Service) FindBySpecialty(ctx context.Context, specialty string) ([]Veterinarian, error) {
	needle := bizkey.Fold(specialty)
	return s.filter(ctx, func(v Veterinarian) bool {
		return strings.Contains(bizkey.Fold(v.Specialty), needle)
	})
}

func (s *Service) filter(ctx context.Context, keep func(Veterinarian) bool) ([]Veterinarian, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Veterinarian, 0, len(all))
	for _, v := range all {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out, nil
}
