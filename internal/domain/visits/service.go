package visits

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/vets"
	"vet-clinic/internal/platform/bizkey"
	"vet-clinic/internal/platform/format"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"
)

const topServices = 5

type Service struct {
	repo    Repository
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	randID  func() int
}

func NewService(repo Repository, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		log:     log.With(map[string]any{"module": "visits"}),
		metrics: m,
		now:     time.Now,
		randID:  func() int { return 1000 + rand.Intn(9000) },
	}
}

// NextID devuelve un id aleatorio entre 1000 y 9999. No verifica colisiones.
func (s *Service) NextID() int {
	return s.randID()
}

type NewVisitInput struct {
	ID          int
	Description string
	Cost        float64
	Status      string
	ServiceType string
	ScheduledAt time.Time
	Comments    *string
}

// NewVisitSafe nunca falla: descripción vacía o costo negativo se
// reemplazan por valores por defecto y se deja registro.
func (s *Service) NewVisitSafe(in NewVisitInput) Visit {
	v := Visit{
		ID:          in.ID,
		Description: strings.TrimSpace(in.Description),
		Cost:        in.Cost,
		Status:      strings.TrimSpace(in.Status),
		ServiceType: strings.TrimSpace(in.ServiceType),
		ScheduledAt: in.ScheduledAt,
		Comments:    in.Comments,
	}

	if v.Description == "" {
		s.log.Warn("consulta sin descripción, usando valor por defecto", map[string]any{"visit_id": v.ID})
		v.Description = "Sin descripción"
	}
	if v.Cost < 0 {
		s.log.Warn("costo negativo, usando 0", map[string]any{"visit_id": v.ID, "cost": in.Cost})
		v.Cost = 0
	}
	if v.Status == "" {
		v.Status = string(StatusPending)
	}
	if v.ServiceType == "" {
		v.ServiceType = ServiceName(1)
	}
	if v.ScheduledAt.IsZero() {
		v.ScheduledAt = s.now()
	}
	if v.Comments != nil && strings.TrimSpace(*v.Comments) == "" {
		v.Comments = nil
	}
	return v
}

// Add registra una consulta aún sin dueño, mascota ni veterinario
// asignados; se completan con datos provisorios.
func (s *Service) Add(ctx context.Context, v Visit) (CompleteVisit, error) {
	cv := CompleteVisit{
		Visit: v,
		Owner: owners.Owner{
			Name:  "Por asignar",
			Phone: "000000000",
			Email: "temp@clinic.com",
		},
		Pet: pets.Pet{
			Name:    "Por registrar",
			Species: pets.SpeciesNA,
		},
		Vet: vets.Veterinarian{
			Name:      "Por asignar",
			Specialty: "General",
		},
		At: format.DateTime(s.now()),
	}
	return s.append(ctx, cv)
}

func (s *Service) Register(ctx context.Context, v Visit, o owners.Owner, p pets.Pet, vet vets.Veterinarian, at string) (CompleteVisit, error) {
	if strings.TrimSpace(at) == "" {
		at = format.DateTime(v.ScheduledAt)
	}
	return s.append(ctx, CompleteVisit{Visit: v, Owner: o, Pet: p, Vet: vet, At: at})
}

func (s *Service) append(ctx context.Context, cv CompleteVisit) (CompleteVisit, error) {
	if err := s.repo.Append(ctx, cv); err != nil {
		s.log.Error("no se pudo registrar la consulta", map[string]any{"visit_id": cv.Visit.ID, "error": err.Error()})
		return CompleteVisit{}, err
	}
	s.metrics.VisitRegistered()
	s.log.Info("consulta registrada", map[string]any{"visit_id": cv.Visit.ID, "service_type": cv.Visit.ServiceType})
	return cv, nil
}

func (s *Service) All(ctx context.Context) ([]CompleteVisit, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// FilterByStatus compara el estado exacto sin distinguir mayúsculas y
// mantiene el orden de registro.
func (s *Service) FilterByStatus(ctx context.Context, status string) ([]CompleteVisit, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	want := bizkey.Fold(status)
	out := make([]CompleteVisit, 0)
	for _, cv := range all {
		if bizkey.Fold(cv.Visit.Status) == want {
			out = append(out, cv)
		}
	}
	return out, nil
}

func (s *Service) Pending(ctx context.Context) ([]CompleteVisit, error) {
	return s.FilterByStatus(ctx, string(StatusPending))
}

func (s *Service) Scheduled(ctx context.Context) ([]CompleteVisit, error) {
	return s.FilterByStatus(ctx, string(StatusScheduled))
}

func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return computeStatistics(all), nil
}

// computeStatistics hace una sola pasada. Estados fuera de los tres buckets
// cuentan en total e ingresos pero en ningún bucket.
func computeStatistics(all []CompleteVisit) Statistics {
	st := Statistics{Total: len(all), Top: []ServiceCount{}}

	counts := map[string]int{}
	order := []string{}

	for _, cv := range all {
		switch bizkey.Fold(cv.Visit.Status) {
		case "pendiente":
			st.Pending++
		case "programada":
			st.Scheduled++
		case "completada", "realizada":
			st.Completed++
		}
		st.Revenue += cv.Visit.Cost

		t := cv.Visit.ServiceType
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}

	if st.Total > 0 {
		st.Average = st.Revenue / float64(st.Total)
	}

	top := make([]ServiceCount, 0, len(order))
	for _, t := range order {
		top = append(top, ServiceCount{ServiceType: t, Count: counts[t]})
	}
	// Estable: a igual cantidad queda el primero que apareció.
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topServices {
		top = top[:topServices]
	}
	st.Top = top
	return st
}

func (s *Service) Report(ctx context.Context) (string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return "No hay consultas registradas en el sistema.\n", nil
	}

	var b strings.Builder
	rule := strings.Repeat("─", 50)

	b.WriteString("INFORME DE CONSULTAS REGISTRADAS\n")
	fmt.Fprintf(&b, "Total de consultas: %d\n\n", len(all))

	for i, cv := range all {
		fmt.Fprintf(&b, "CONSULTA #%d\n", i+1)
		fmt.Fprintf(&b, "ID: #%d | Estado: %s\n", cv.Visit.ID, cv.Visit.Status)
		fmt.Fprintf(&b, "Dueño:        %s\n", cv.Owner.Name)
		fmt.Fprintf(&b, "Email:        %s\n", cv.Owner.Email)
		fmt.Fprintf(&b, "Teléfono:     %s\n", cv.Owner.Phone)
		fmt.Fprintf(&b, "Mascota:      %s (%s)\n", cv.Pet.Name, cv.Pet.Species)
		fmt.Fprintf(&b, "Motivo:       %s\n", cv.Visit.Description)
		fmt.Fprintf(&b, "Veterinario:  Dr(a). %s\n", cv.Vet.Name)
		fmt.Fprintf(&b, "Especialidad: %s\n", cv.Vet.Specialty)
		fmt.Fprintf(&b, "Fecha/Hora:   %s\n", cv.At)
		fmt.Fprintf(&b, "Costo:        %s\n", format.Currency(cv.Visit.Cost))
		if cv.Visit.Comments != nil {
			fmt.Fprintf(&b, "Comentarios:  %s\n", *cv.Visit.Comments)
		}
		b.WriteString(rule + "\n")
	}

	st := computeStatistics(all)
	fmt.Fprintf(&b, "Pendientes: %d | Programadas: %d | Completadas: %d\n", st.Pending, st.Scheduled, st.Completed)
	fmt.Fprintf(&b, "Ingreso total: %s | Promedio: %s\n", format.Currency(st.Revenue), format.Currency(st.Average))
	return b.String(), nil
}
