package medications

import (
	"strings"

	"vet-clinic/internal/platform/bizkey"
)

const DefaultDosage = "Estándar"

// Promotion marca un medicamento en oferta.
type Promotion struct {
	Percent     int
	Description string
}

// Medication se comparte por puntero: las líneas de pedido apuntan al mismo
// registro del catálogo y ven su stock actual.
type Medication struct {
	Name        string
	Price       float64
	Stock       int
	Description string
	Dosage      string
	Promotion   *Promotion
}

func New(name string, price float64, stock int, description, dosage string) *Medication {
	if strings.TrimSpace(dosage) == "" {
		dosage = DefaultDosage
	}
	if stock < 0 {
		stock = 0
	}
	return &Medication{
		Name:        name,
		Price:       price,
		Stock:       stock,
		Description: description,
		Dosage:      dosage,
	}
}

// NewPromoted crea un medicamento con promoción.
func NewPromoted(name string, price float64, stock int, description, dosage string, percent int, promo string) *Medication {
	m := New(name, price, stock, description, dosage)
	m.Promotion = &Promotion{Percent: percent, Description: promo}
	return m
}

func (m *Medication) HasStock(q int) bool {
	return m.Stock >= q
}

// Sell descuenta q unidades. Devuelve false sin tocar el stock si q es
// negativa o supera el stock.
func (m *Medication) Sell(q int) bool {
	if q < 0 || q > m.Stock {
		return false
	}
	m.Stock -= q
	return true
}

// Restock suma q unidades; una cantidad negativa se ignora.
func (m *Medication) Restock(q int) bool {
	if q < 0 {
		return false
	}
	m.Stock += q
	return true
}

func (m *Medication) Promoted() bool {
	return m.Promotion != nil
}

// DiscountPercent es 0 para medicamentos sin promoción.
func (m *Medication) DiscountPercent() int {
	if m.Promotion == nil {
		return 0
	}
	return m.Promotion.Percent
}

type Key struct {
	Name   string
	Dosage string
}

// Key es la clave de negocio (nombre, dosis); precio y stock no cuentan.
func (m *Medication) Key() Key {
	return Key{Name: bizkey.Fold(m.Name), Dosage: bizkey.Fold(m.Dosage)}
}

func (m *Medication) Same(other *Medication) bool {
	return m.Key() == other.Key()
}

func Dedupe(list []*Medication) []*Medication {
	return bizkey.Dedupe(list, (*Medication).Key)
}
