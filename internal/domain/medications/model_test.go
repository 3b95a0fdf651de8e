package medications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSell(t *testing.T) {
	cases := []struct {
		name      string
		stock     int
		qty       int
		wantOK    bool
		wantStock int
	}{
		{"within stock", 10, 4, true, 6},
		{"exact stock", 10, 10, true, 0},
		{"zero", 10, 0, true, 10},
		{"over stock", 10, 11, false, 10},
		{"negative", 10, -1, false, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New("Test", 1000, tc.stock, "", "")
			assert.Equal(t, tc.wantOK, m.Sell(tc.qty))
			assert.Equal(t, tc.wantStock, m.Stock)
		})
	}
}

func TestRestock(t *testing.T) {
	m := New("Test", 1000, 5, "", "")

	assert.True(t, m.Restock(10))
	assert.Equal(t, 15, m.Stock)

	assert.False(t, m.Restock(-3))
	assert.Equal(t, 15, m.Stock)
}

func TestNew_Defaults(t *testing.T) {
	m := New("Test", 1000, -5, "", "  ")
	assert.Equal(t, DefaultDosage, m.Dosage)
	assert.Equal(t, 0, m.Stock)
	assert.False(t, m.Promoted())
	assert.Equal(t, 0, m.DiscountPercent())
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	assert.Len(t, cat, 5)

	promoted := 0
	for _, m := range cat {
		if m.Promoted() {
			promoted++
		}
	}
	assert.Equal(t, 3, promoted)
	assert.Equal(t, 15, Antipulgas().DiscountPercent())
	assert.Equal(t, 20, Desparasitante().DiscountPercent())
	assert.Equal(t, 10, Vitaminas().DiscountPercent())
	assert.Equal(t, 0, Antibiotico().DiscountPercent())
}

func TestDedupe_BusinessKey(t *testing.T) {
	a := New("Antipulgas Premium", 8000, 50, "", "Aplicar cada 30 días")
	b := New("ANTIPULGAS premium", 9999, 1, "otra", "aplicar cada 30 DÍAS")
	c := New("Antipulgas Premium", 8000, 50, "", "Cada 15 días")

	assert.True(t, a.Same(b))
	assert.False(t, a.Same(c))

	got := Dedupe([]*Medication{a, b, c, a})
	assert.Equal(t, []*Medication{a, c}, got)
	assert.Equal(t, got, Dedupe(got))
}
