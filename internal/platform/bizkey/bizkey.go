// Package bizkey implementa igualdad por clave de negocio: un subconjunto de
// campos normalizados, no la igualdad estructural completa.
package bizkey

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold normaliza un campo para compararlo sin distinguir mayúsculas.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Dedupe conserva la primera aparición de cada clave y descarta las
// siguientes. Es estable e idempotente.
func Dedupe[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))

	for _, it := range items {
		k := key(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}
