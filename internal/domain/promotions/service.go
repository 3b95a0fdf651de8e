package promotions

import (
	"time"

	"vet-clinic/internal/platform/format"
	"vet-clinic/internal/platform/logger"
)

type Service struct {
	table []Promotion
	log   logger.Logger
	now   func() time.Time
}

func NewService(table []Promotion, log logger.Logger) *Service {
	if table == nil {
		table = DefaultTable()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		table: table,
		log:   log.With(map[string]any{"module": "promotions"}),
		now:   time.Now,
	}
}

// Table devuelve una copia de la tabla en orden de declaración.
func (s *Service) Table() []Promotion {
	return append([]Promotion(nil), s.table...)
}

// ActiveOn devuelve la primera promoción cuyo rango contiene la fecha.
func (s *Service) ActiveOn(date time.Time) (Promotion, bool) {
	for _, p := range s.table {
		if p.Contains(date) {
			return p, true
		}
	}
	return Promotion{}, false
}

// ActiveOnString acepta "dd/MM/yyyy". Una fecha ilegible equivale a
// "sin promoción".
func (s *Service) ActiveOnString(date string) (Promotion, bool) {
	d, ok := format.ParseDate(date)
	if !ok {
		s.log.Warn("fecha de promoción inválida, use dd/MM/yyyy", map[string]any{"date": date})
		return Promotion{}, false
	}
	return s.ActiveOn(d)
}

func (s *Service) ActiveToday() (Promotion, bool) {
	return s.ActiveOn(s.now())
}

// ApplyPromotion descuenta la promoción vigente en date; sin promoción
// devuelve el costo original.
func (s *Service) ApplyPromotion(cost float64, date time.Time) float64 {
	p, ok := s.ActiveOn(date)
	if !ok || p.Percent <= 0 {
		return cost
	}
	discount := cost * float64(p.Percent) / 100
	s.log.Debug("promoción aplicada", map[string]any{
		"promotion": p.Name,
		"percent":   p.Percent,
		"saving":    format.Currency(discount),
	})
	return cost - discount
}

// CombinedPrice descuenta promoción y volumen, ambos calculados sobre el
// subtotal original (se suman, no se componen). Cantidad inválida da 0.
func (s *Service) CombinedPrice(unitPrice float64, q int, date time.Time) float64 {
	if !ValidQuantity(q) {
		s.log.Warn("cantidad fuera de rango", map[string]any{"quantity": q})
		return 0
	}

	subtotal := unitPrice * float64(q)
	total := subtotal

	if p, ok := s.ActiveOn(date); ok && p.Percent > 0 {
		total -= subtotal * float64(p.Percent) / 100
	}
	if pct := VolumePercent(q); pct > 0 {
		total -= subtotal * float64(pct) / 100
	}
	return total
}
