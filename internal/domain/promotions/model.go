package promotions

import "time"

// Promotion es un rango de fechas inclusivo con su porcentaje.
// From y To son fechas civiles a medianoche UTC.
type Promotion struct {
	Name    string
	From    time.Time
	To      time.Time
	Percent int
}

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateOf lleva un instante a su fecha civil (en su propia zona) a medianoche UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return civil(y, m, d)
}

// Contains incluye ambos extremos.
func (p Promotion) Contains(date time.Time) bool {
	return InPeriod(date, p.From, p.To)
}

// DefaultTable es la tabla de campañas en orden de declaración. Navidad y
// Año Nuevo se solapan: gana la primera.
func DefaultTable() []Promotion {
	return []Promotion{
		{Name: "Black Friday Veterinaria", From: civil(2025, time.November, 20), To: civil(2025, time.November, 30), Percent: 30},
		{Name: "Navidad Pet Friendly", From: civil(2025, time.December, 15), To: civil(2025, time.December, 31), Percent: 20},
		{Name: "Año Nuevo Saludable", From: civil(2025, time.December, 26), To: civil(2026, time.January, 10), Percent: 25},
		{Name: "Día del Animal", From: civil(2025, time.April, 25), To: civil(2025, time.May, 5), Percent: 15},
		{Name: "Mes del Cachorro", From: civil(2025, time.June, 1), To: civil(2025, time.June, 30), Percent: 10},
	}
}

// StockLevel clasifica cantidades de inventario.
type StockLevel string

const (
	StockInvalid   StockLevel = "invalid"
	StockLow       StockLevel = "low"
	StockMedium    StockLevel = "medium"
	StockGood      StockLevel = "good"
	StockExcellent StockLevel = "excellent"
)

func (l StockLevel) Label() string {
	switch l {
	case StockLow:
		return "Stock Bajo"
	case StockMedium:
		return "Stock Medio"
	case StockGood:
		return "Stock Bueno"
	case StockExcellent:
		return "Stock Excelente"
	default:
		return "Cantidad inválida"
	}
}

func (l StockLevel) Advice() string {
	switch l {
	case StockLow:
		return "Se recomienda realizar nuevo pedido"
	case StockMedium:
		return "Nivel aceptable de inventario"
	case StockGood:
		return "Nivel óptimo de inventario"
	case StockExcellent:
		return "Inventario en nivel excelente"
	default:
		return ""
	}
}
