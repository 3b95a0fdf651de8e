package promotions

import "time"

const (
	MinQuantity = 1
	MaxQuantity = 100

	MinOrderNumber = 1000
	MaxOrderNumber = 9999
)

func ValidQuantity(q int) bool {
	return q >= MinQuantity && q <= MaxQuantity
}

// VolumePercent devuelve el porcentaje por tramo de cantidad.
// Fuera de [6,100] no hay descuento.
func VolumePercent(q int) int {
	switch {
	case q >= 6 && q <= 10:
		return 5
	case q >= 11 && q <= 25:
		return 10
	case q >= 26 && q <= 50:
		return 15
	case q >= 51 && q <= 100:
		return 20
	default:
		return 0
	}
}

type VolumeResult struct {
	Valid    bool
	Quantity int
	Subtotal float64
	Percent  int
	Discount float64
	Total    float64
	Message  string
}

// VolumeDiscount aplica el descuento por volumen a unit×q. Una cantidad
// fuera de [1,100] da un resultado inválido con total 0.
func VolumeDiscount(q int, unitPrice float64) VolumeResult {
	if !ValidQuantity(q) {
		return VolumeResult{Quantity: q, Message: "Cantidad inválida"}
	}

	subtotal := unitPrice * float64(q)
	pct := VolumePercent(q)
	discount := subtotal * float64(pct) / 100

	msg := "Sin descuento por volumen"
	if pct > 0 {
		msg = "Descuento por volumen aplicado"
	}

	return VolumeResult{
		Valid:    true,
		Quantity: q,
		Subtotal: subtotal,
		Percent:  pct,
		Discount: discount,
		Total:    subtotal - discount,
		Message:  msg,
	}
}

// ClassifyStock es total sobre los enteros no negativos.
func ClassifyStock(q int) StockLevel {
	switch {
	case q < 0:
		return StockInvalid
	case q <= 10:
		return StockLow
	case q <= 50:
		return StockMedium
	case q <= 100:
		return StockGood
	default:
		return StockExcellent
	}
}

// IsLowStock alerta entre 1 y 10 unidades; 0 ya es quiebre de stock.
func IsLowStock(q int) bool {
	return q >= 1 && q <= 10
}

func ValidOrderNumber(n int) bool {
	return n >= MinOrderNumber && n <= MaxOrderNumber
}

// InPeriod compara fechas civiles, incluyendo ambos extremos.
func InPeriod(date, from, to time.Time) bool {
	d := DateOf(date)
	return !d.Before(DateOf(from)) && !d.After(DateOf(to))
}
