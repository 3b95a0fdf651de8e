package promotions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestActiveOn(t *testing.T) {
	svc := NewService(nil, nil)

	p, ok := svc.ActiveOn(date(2025, time.November, 25))
	require.True(t, ok)
	assert.Equal(t, "Black Friday Veterinaria", p.Name)
	assert.Equal(t, 30, p.Percent)

	_, ok = svc.ActiveOn(date(2025, time.January, 1))
	assert.False(t, ok)
}

func TestActiveOn_InclusiveBounds(t *testing.T) {
	svc := NewService(nil, nil)

	for _, d := range []time.Time{date(2025, time.November, 20), date(2025, time.November, 30)} {
		p, ok := svc.ActiveOn(d)
		require.True(t, ok)
		assert.Equal(t, "Black Friday Veterinaria", p.Name)
	}
	_, ok := svc.ActiveOn(date(2025, time.December, 1))
	assert.False(t, ok)
}

func TestActiveOn_FirstMatchWinsOnOverlap(t *testing.T) {
	svc := NewService(nil, nil)

	p, ok := svc.ActiveOn(date(2025, time.December, 28))
	require.True(t, ok)
	assert.Equal(t, "Navidad Pet Friendly", p.Name)

	p, ok = svc.ActiveOn(date(2026, time.January, 5))
	require.True(t, ok)
	assert.Equal(t, "Año Nuevo Saludable", p.Name)
}

func TestActiveOn_LocalZoneUsesCivilDate(t *testing.T) {
	svc := NewService(nil, nil)
	santiago := time.FixedZone("CLT", -3*60*60)

	// 23:00 del 30/11 en Chile ya es 1/12 en UTC; cuenta la fecha local.
	_, ok := svc.ActiveOn(time.Date(2025, time.November, 30, 23, 0, 0, 0, santiago))
	assert.True(t, ok)
}

func TestActiveOnString(t *testing.T) {
	svc := NewService(nil, nil)

	p, ok := svc.ActiveOnString("01/06/2025")
	require.True(t, ok)
	assert.Equal(t, "Mes del Cachorro", p.Name)

	_, ok = svc.ActiveOnString("2025-06-01")
	assert.False(t, ok)
}

func TestApplyPromotion(t *testing.T) {
	svc := NewService(nil, nil)

	assert.InDelta(t, 70000, svc.ApplyPromotion(100000, date(2025, time.November, 25)), 0.001)
	assert.InDelta(t, 100000, svc.ApplyPromotion(100000, date(2025, time.March, 1)), 0.001)
}

func TestCombinedPrice_AdditiveDiscounts(t *testing.T) {
	svc := NewService(nil, nil)

	// 100.000 - 30% promo - 5% volumen, ambos sobre el subtotal original.
	assert.InDelta(t, 65000, svc.CombinedPrice(10000, 10, date(2025, time.November, 25)), 0.001)
	assert.InDelta(t, 95000, svc.CombinedPrice(10000, 10, date(2025, time.March, 1)), 0.001)
	assert.InDelta(t, 0, svc.CombinedPrice(10000, 0, date(2025, time.November, 25)), 0.001)
	assert.InDelta(t, 0, svc.CombinedPrice(10000, 101, date(2025, time.November, 25)), 0.001)
}

func TestCustomTable(t *testing.T) {
	svc := NewService([]Promotion{
		{Name: "Semana Test", From: civil(2030, time.March, 1), To: civil(2030, time.March, 7), Percent: 50},
	}, nil)

	p, ok := svc.ActiveOn(date(2030, time.March, 7))
	require.True(t, ok)
	assert.Equal(t, 50, p.Percent)
	assert.Len(t, svc.Table(), 1)
}
