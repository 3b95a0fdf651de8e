package medications

import (
	"context"
	"errors"
	"strings"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Service struct {
	repo    Repository
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewService(repo Repository, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		log:     log.With(map[string]any{"module": "medications"}),
		metrics: m,
	}
}

func (s *Service) List(ctx context.Context) ([]*Medication, error) {
	return s.repo.List(ctx)
}

func (s *Service) Unique(ctx context.Context) ([]*Medication, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Dedupe(all), nil
}

func (s *Service) Promoted(ctx context.Context) ([]*Medication, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Medication, 0, len(all))
	for _, m := range all {
		if m.Promoted() {
			out = append(out, m)
		}
	}
	return out, nil
}

// Get busca por nombre sin distinguir mayúsculas.
func (s *Service) Get(ctx context.Context, name string) (*Medication, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	m, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Service) Sell(ctx context.Context, name string, q int) (*Medication, error) {
	if q < 0 {
		return nil, ErrInvalidInput
	}
	m, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if !m.Sell(q) {
		s.log.Warn("venta rechazada por stock", map[string]any{
			"medication": m.Name,
			"requested":  q,
			"stock":      m.Stock,
		})
		return m, ErrInsufficientStock
	}
	s.metrics.UnitsSold(q)
	return m, nil
}

func (s *Service) Restock(ctx context.Context, name string, q int) (*Medication, error) {
	m, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if !m.Restock(q) {
		return m, ErrInvalidInput
	}
	s.log.Info("stock repuesto", map[string]any{"medication": m.Name, "added": q, "stock": m.Stock})
	return m, nil
}
