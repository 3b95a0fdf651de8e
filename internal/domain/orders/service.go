package orders

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/domain/promotions"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("order already exists")
	ErrAlreadyProcessed  = errors.New("order already processed")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Intentos para encontrar un id libre antes de rendirse.
const maxIDAttempts = 50

type Service struct {
	repo    Repository
	meds    medications.Repository
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	randID  func() int
}

func NewService(repo Repository, meds medications.Repository, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		meds:    meds,
		log:     log.With(map[string]any{"module": "orders"}),
		metrics: m,
		now:     time.Now,
		randID: func() int {
			return promotions.MinOrderNumber + rand.Intn(promotions.MaxOrderNumber-promotions.MinOrderNumber+1)
		},
	}
}

type CreateInput struct {
	ID       int // 0 = generar
	Customer string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Order, error) {
	customer := strings.TrimSpace(in.Customer)
	if customer == "" {
		return nil, ErrInvalidInput
	}

	id := in.ID
	if id == 0 {
		var err error
		if id, err = s.freeID(ctx); err != nil {
			return nil, err
		}
	}
	if !promotions.ValidOrderNumber(id) {
		return nil, ErrInvalidInput
	}
	if _, err := s.repo.GetByID(ctx, id); err == nil {
		return nil, ErrAlreadyExists
	}

	o := New(id, customer, s.now())
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	s.log.Info("pedido creado", map[string]any{"order_id": o.ID, "customer": o.Customer})
	return o, nil
}

func (s *Service) freeID(ctx context.Context) (int, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.randID()
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return id, nil
		}
	}
	return 0, ErrAlreadyExists
}

func (s *Service) Get(ctx context.Context, id int) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

// AddLine busca el medicamento por nombre y lo agrega sin reservar stock.
func (s *Service) AddLine(ctx context.Context, orderID int, medication string, q int) (*Order, error) {
	o, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status == StatusProcessed {
		return nil, ErrAlreadyProcessed
	}
	if q <= 0 {
		return nil, ErrInvalidInput
	}

	m, err := s.meds.GetByName(ctx, strings.TrimSpace(medication))
	if err != nil {
		return nil, ErrNotFound
	}

	if !o.AddLine(m, q) {
		s.log.Warn("línea rechazada por stock", map[string]any{
			"order_id":   o.ID,
			"medication": m.Name,
			"requested":  q,
			"stock":      m.Stock,
		})
		return nil, ErrInsufficientStock
	}
	return o, nil
}

func (s *Service) Process(ctx context.Context, orderID int) (*Order, error) {
	o, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status == StatusProcessed {
		return nil, ErrAlreadyProcessed
	}

	if !o.Process() {
		s.metrics.OrderProcessed(false)
		s.log.Warn("pedido rechazado por stock", map[string]any{"order_id": o.ID})
		return nil, ErrInsufficientStock
	}

	s.metrics.OrderProcessed(true)
	s.metrics.UnitsSold(o.Units())
	s.log.Info("pedido procesado", map[string]any{"order_id": o.ID, "total": o.Total()})
	return o, nil
}

// Merge combina dos pedidos existentes y guarda el resultado.
func (s *Service) Merge(ctx context.Context, idA, idB int) (*Order, error) {
	a, err := s.Get(ctx, idA)
	if err != nil {
		return nil, err
	}
	b, err := s.Get(ctx, idB)
	if err != nil {
		return nil, err
	}

	merged := Merge(a, b, s.now())
	if _, err := s.repo.GetByID(ctx, merged.ID); err == nil {
		return nil, ErrAlreadyExists
	}
	if err := s.repo.Create(ctx, merged); err != nil {
		return nil, err
	}

	s.log.Info("pedidos combinados", map[string]any{"order_id": merged.ID, "from": []int{idA, idB}})
	return merged, nil
}

func (s *Service) Summary(ctx context.Context, id int) (string, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return o.Summary(), nil
}
