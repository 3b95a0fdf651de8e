// Package format concentra los formatos de moneda, fecha/hora y texto que
// consumen los reportes y la capa HTTP.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	LayoutDateTime  = "02/01/2006 15:04"
	LayoutDate      = "02/01/2006"
	LayoutTime      = "15:04"
	LayoutShortDate = "02/01/06"
)

// Separador de miles "." y sin decimales (es-CL).
const clpNumber = "#.###,"

var (
	nonDigits   = regexp.MustCompile(`[^0-9]`)
	nonRUTChars = regexp.MustCompile(`[^0-9kK]`)
)

// Currency formatea un monto como moneda chilena: "CLP $25.000".
func Currency(amount float64) string {
	return "CLP " + CurrencySimple(amount)
}

// CurrencySimple: "$25.000".
func CurrencySimple(amount float64) string {
	return "$" + Number(amount)
}

// Number formatea con separador de miles y sin decimales.
func Number(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	return humanize.FormatFloat(clpNumber, n)
}

// Percent: 0.15 -> "15%".
func Percent(fraction float64) string {
	return fmt.Sprintf("%.0f%%", fraction*100)
}

func DateTime(t time.Time) string  { return t.Format(LayoutDateTime) }
func Date(t time.Time) string      { return t.Format(LayoutDate) }
func Time(t time.Time) string      { return t.Format(LayoutTime) }
func ShortDate(t time.Time) string { return t.Format(LayoutShortDate) }

// ParseDateTime parsea "dd/MM/yyyy HH:mm". ok=false si no calza.
func ParseDateTime(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(LayoutDateTime, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDate parsea "dd/MM/yyyy" como fecha civil en UTC.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(LayoutDate, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Phone lleva un teléfono chileno a "+56 (9) 1234-5678".
// Si no reconoce el formato, devuelve el valor original.
func Phone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")

	switch {
	case len(digits) == 9 && strings.HasPrefix(digits, "9"):
		return fmt.Sprintf("+56 (%s) %s-%s", digits[:1], digits[1:5], digits[5:])
	case len(digits) == 11 && strings.HasPrefix(digits, "56"):
		n := digits[2:]
		return fmt.Sprintf("+56 (%s) %s-%s", n[:1], n[1:5], n[5:])
	default:
		return phone
	}
}

// RUT: "123456789" -> "12.345.678-9".
func RUT(rut string) string {
	clean := nonRUTChars.ReplaceAllString(rut, "")
	if len(clean) < 2 {
		return rut
	}

	body := clean[:len(clean)-1]
	dv := clean[len(clean)-1:]

	var b strings.Builder
	for i, r := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String() + "-" + strings.ToUpper(dv)
}

// Duration: 90 -> "1h 30m".
func Duration(minutes int) string {
	h := minutes / 60
	m := minutes % 60

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// NormalizeEmail: trim + minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CapitalizeWords: "maría josé" -> "María José".
func CapitalizeWords(s string) string {
	return cases.Title(language.Spanish).String(s)
}

// Truncate corta con "..." cuando excede max runas.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
