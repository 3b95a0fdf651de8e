package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "CLP $25.000", Currency(25000))
	assert.Equal(t, "CLP $1.500.000", Currency(1500000))
	assert.Equal(t, "$18.500", CurrencySimple(18500))
	assert.Equal(t, "$0", CurrencySimple(0))
	assert.Equal(t, "$250", CurrencySimple(250))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "15%", Percent(0.15))
	assert.Equal(t, "30%", Percent(0.30))
}

func TestDateLayouts(t *testing.T) {
	ts := time.Date(2025, 11, 9, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "09/11/2025 14:30", DateTime(ts))
	assert.Equal(t, "09/11/2025", Date(ts))
	assert.Equal(t, "14:30", Time(ts))
	assert.Equal(t, "09/11/25", ShortDate(ts))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("25/11/2025")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("2025-11-25")
	assert.False(t, ok)

	_, ok = ParseDateTime("25/11/2025 10:00")
	assert.True(t, ok)
	_, ok = ParseDateTime("mañana")
	assert.False(t, ok)
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+56 (9) 1234-5678", Phone("912345678"))
	assert.Equal(t, "+56 (9) 1234-5678", Phone("+56 9 1234 5678"))
	assert.Equal(t, "1234", Phone("1234"))
}

func TestRUT(t *testing.T) {
	assert.Equal(t, "12.345.678-9", RUT("123456789"))
	assert.Equal(t, "1.234.567-K", RUT("1234567k"))
	assert.Equal(t, "1", RUT("1"))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "1h 30m", Duration(90))
	assert.Equal(t, "2h", Duration(120))
	assert.Equal(t, "45m", Duration(45))
}

func TestTextHelpers(t *testing.T) {
	assert.Equal(t, "María José", CapitalizeWords("maría josé"))
	assert.Equal(t, "ana@vet.cl", NormalizeEmail("  Ana@Vet.CL "))
	assert.Equal(t, "Anti...", Truncate("Antipulgas Premium", 7))
	assert.Equal(t, "Corto", Truncate("Corto", 10))
}
