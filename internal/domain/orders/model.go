package orders

import (
	"fmt"
	"strings"
	"time"

	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/platform/format"
)

type Status string

const (
	StatusPending   Status = "Pendiente"
	StatusProcessed Status = "Procesado"
)

// Line apunta al medicamento del catálogo; el stock se lee al momento.
type Line struct {
	Medication *medications.Medication
	Quantity   int
}

func (l Line) Subtotal() float64 {
	return l.Medication.Price * float64(l.Quantity)
}

func (l Line) Discount() float64 {
	pct := l.Medication.DiscountPercent()
	if pct <= 0 {
		return 0
	}
	return l.Subtotal() * float64(pct) / 100
}

func (l Line) Total() float64 {
	return l.Subtotal() - l.Discount()
}

func (l Line) Promoted() bool {
	return l.Medication.Promoted()
}

// Detail: "Antipulgas Premium x2 - $16.000 (15% OFF) = $13.600".
func (l Line) Detail() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s x%d - %s", l.Medication.Name, l.Quantity, format.CurrencySimple(l.Subtotal()))
	if l.Promoted() {
		fmt.Fprintf(&b, " (%d%% OFF) = %s", l.Medication.DiscountPercent(), format.CurrencySimple(l.Total()))
	}
	return b.String()
}

type Order struct {
	ID        int
	Customer  string
	CreatedAt time.Time
	Status    Status
	lines     []Line
}

func New(id int, customer string, at time.Time) *Order {
	return &Order{
		ID:        id,
		Customer:  customer,
		CreatedAt: at,
		Status:    StatusPending,
	}
}

// AddLine solo verifica stock, no lo reserva. Devuelve false sin tocar el
// pedido si q <= 0 o no alcanza el stock actual.
func (o *Order) AddLine(m *medications.Medication, q int) bool {
	if m == nil || q <= 0 || !m.HasStock(q) {
		return false
	}
	o.lines = append(o.lines, Line{Medication: m, Quantity: q})
	return true
}

// Lines devuelve una copia.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

func (o *Order) Subtotal() float64 {
	var sum float64
	for _, l := range o.lines {
		sum += l.Subtotal()
	}
	return sum
}

func (o *Order) Discounts() float64 {
	var sum float64
	for _, l := range o.lines {
		sum += l.Discount()
	}
	return sum
}

func (o *Order) Total() float64 {
	return o.Subtotal() - o.Discounts()
}

func (o *Order) PromotedLines() int {
	n := 0
	for _, l := range o.lines {
		if l.Promoted() {
			n++
		}
	}
	return n
}

// Process descuenta el stock de todas las líneas o de ninguna. Las
// cantidades se agrupan por medicamento antes de verificar, así dos líneas
// del mismo producto no pasan por separado.
func (o *Order) Process() bool {
	if o.Status == StatusProcessed {
		return false
	}

	required := make(map[*medications.Medication]int, len(o.lines))
	for _, l := range o.lines {
		required[l.Medication] += l.Quantity
	}
	for m, q := range required {
		if !m.HasStock(q) {
			return false
		}
	}

	for _, l := range o.lines {
		l.Medication.Sell(l.Quantity)
	}
	o.Status = StatusProcessed
	return true
}

// Units suma las cantidades de todas las líneas.
func (o *Order) Units() int {
	n := 0
	for _, l := range o.lines {
		n += l.Quantity
	}
	return n
}

// Merge combina dos pedidos en uno nuevo:
//   - id = (a+b)/2 truncado
//   - cliente compartido, o "A + B"
//   - líneas de a primero; cada línea de b suma su cantidad a la primera
//     línea con el mismo medicamento (clave de negocio) o se agrega al final
//
// No es conmutativa ni asociativa.
func Merge(a, b *Order, at time.Time) *Order {
	customer := a.Customer
	if a.Customer != b.Customer {
		customer = a.Customer + " + " + b.Customer
	}

	out := New((a.ID+b.ID)/2, customer, at)
	out.lines = append(out.lines, a.lines...)

	for _, bl := range b.lines {
		merged := false
		for i := range out.lines {
			if out.lines[i].Medication.Same(bl.Medication) {
				out.lines[i].Quantity += bl.Quantity
				merged = true
				break
			}
		}
		if !merged {
			out.lines = append(out.lines, bl)
		}
	}
	return out
}

func (o *Order) Summary() string {
	var b strings.Builder
	rule := strings.Repeat("─", 50)

	fmt.Fprintf(&b, "PEDIDO #%d\n", o.ID)
	fmt.Fprintf(&b, "Cliente:      %s\n", o.Customer)
	fmt.Fprintf(&b, "Fecha:        %s\n", format.DateTime(o.CreatedAt))
	fmt.Fprintf(&b, "Estado:       %s\n\n", o.Status)
	b.WriteString("ITEMS:\n")
	b.WriteString(rule + "\n")
	for i, l := range o.lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, l.Detail())
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Subtotal:     %s\n", format.CurrencySimple(o.Subtotal()))
	fmt.Fprintf(&b, "Descuentos:   -%s\n", format.CurrencySimple(o.Discounts()))
	fmt.Fprintf(&b, "TOTAL:        %s\n\n", format.CurrencySimple(o.Total()))
	fmt.Fprintf(&b, "Items con promoción: %d/%d\n", o.PromotedLines(), len(o.lines))
	return b.String()
}
