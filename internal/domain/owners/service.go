package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/platform/format"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/validate"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"module": "owners"}),
		now:  time.Now,
	}
}

type RegisterInput struct {
	Name       string `validate:"required,min=2,max=80"`
	Phone      string `validate:"required,clphone"`
	Email      string `validate:"required,email"`
	Address    string `validate:"max=200"`
	NationalID string `validate:"omitempty,rut"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Owner, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = format.NormalizeEmail(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	in.NationalID = strings.TrimSpace(in.NationalID)

	if err := validate.Struct(in); err != nil {
		s.log.Warn("registro de dueño rechazado", map[string]any{"error": err.Error()})
		return Owner{}, ErrInvalidInput
	}

	nationalID := in.NationalID
	if nationalID != "" {
		nationalID = format.RUT(nationalID)
	}

	o := Owner{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Phone:      format.Phone(in.Phone),
		Email:      in.Email,
		Address:    in.Address,
		NationalID: nationalID,
		Pets:       []pets.Pet{},
		CreatedAt:  s.now(),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	s.log.Info("dueño registrado", map[string]any{"owner_id": o.ID})
	return o, nil
}

func (s *Service) AddPet(ctx context.Context, ownerID string, in pets.RegisterInput) (Owner, error) {
	o, err := s.GetByID(ctx, ownerID)
	if err != nil {
		return Owner{}, err
	}

	p, err := pets.New(in)
	if err != nil {
		s.log.Warn("mascota inválida", map[string]any{"owner_id": ownerID})
		return Owner{}, ErrInvalidInput
	}

	o.AddPet(p)
	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Owner{}, ErrInvalidInput
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, ErrNotFound
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

// Unique lista los dueños sin duplicados de negocio.
func (s *Service) Unique(ctx context.Context) ([]Owner, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Dedupe(all), nil
}

// Last devuelve el último dueño registrado; ok=false si no hay ninguno.
func (s *Service) Last(ctx context.Context) (Owner, bool, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Owner{}, false, err
	}
	if len(all) == 0 {
		return Owner{}, false, nil
	}
	return all[len(all)-1], true, nil
}

// Reminders indica por qué canales se le puede avisar a un dueño.
type Reminders struct {
	Email bool
	SMS   bool
}

func (s *Service) PlanReminders(ctx context.Context, ownerID string) (Reminders, error) {
	o, err := s.GetByID(ctx, ownerID)
	if err != nil {
		return Reminders{}, err
	}

	r := Reminders{
		Email: strings.Contains(o.Email, "@") && strings.Contains(o.Email, "."),
		SMS:   strings.TrimSpace(o.Phone) != "",
	}

	fields := map[string]any{"owner_id": o.ID}
	if r.Email {
		s.log.Info("recordatorio por email", fields)
	} else {
		s.log.Warn("sin email válido para recordatorio", fields)
	}
	if r.SMS {
		s.log.Info("recordatorio por SMS", fields)
	}
	return r, nil
}
