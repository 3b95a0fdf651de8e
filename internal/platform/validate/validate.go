// Package validate agrupa las validaciones de entrada del registro
// (email, teléfono chileno, RUT, nombres) y la validación de structs.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Result es el resultado de validar un valor suelto.
type Result struct {
	Valid   bool
	Message string
}

func ok(msg string) Result   { return Result{Valid: true, Message: msg} }
func fail(msg string) Result { return Result{Valid: false, Message: msg} }

var (
	phoneSeparators = regexp.MustCompile(`[\s\-()]`)
	chileanPhone    = regexp.MustCompile(`^(\+?56)?[9876][0-9]{8}$`)
	rutDots         = regexp.MustCompile(`[.\s]`)
	rutPattern      = regexp.MustCompile(`^[0-9]{7,8}-[0-9Kk]$`)
	namePattern     = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ][a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s']+$`)
	addressPattern  = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚñÑüÜ\s#.'\-,]+$`)
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("clphone", func(fl validator.FieldLevel) bool {
			return IsChileanPhone(fl.Field().String())
		})
		_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
			return IsRUT(fl.Field().String())
		})
	})
	return v
}

// Struct valida un struct con tags `validate:"..."`.
// Además de los tags estándar acepta "clphone" y "rut".
func Struct(s any) error {
	return instance().Struct(s)
}

func IsChileanPhone(phone string) bool {
	clean := phoneSeparators.ReplaceAllString(phone, "")
	return chileanPhone.MatchString(clean)
}

func IsRUT(rut string) bool {
	clean := rutDots.ReplaceAllString(rut, "")
	return rutPattern.MatchString(clean)
}

func IsEmail(email string) bool {
	return instance().Var(strings.TrimSpace(email), "required,email") == nil
}

func Email(email string) Result {
	if strings.TrimSpace(email) == "" {
		return fail("El email no puede estar vacío")
	}
	if !IsEmail(email) {
		return fail("Formato de email inválido. Ejemplo: usuario@dominio.com")
	}
	return ok("Email válido")
}

func Phone(phone string) Result {
	if strings.TrimSpace(phone) == "" {
		return fail("El teléfono no puede estar vacío")
	}
	if !IsChileanPhone(phone) {
		return fail("Formato de teléfono inválido. Ejemplo: +56912345678 o 912345678")
	}
	return ok("Teléfono válido")
}

func Name(name string) Result {
	if strings.TrimSpace(name) == "" {
		return fail("El nombre no puede estar vacío")
	}
	if len([]rune(name)) < 2 {
		return fail("El nombre debe tener al menos 2 caracteres")
	}
	if !namePattern.MatchString(name) {
		return fail("El nombre solo puede contener letras, espacios y acentos")
	}
	return ok("Nombre válido")
}

func RUT(rut string) Result {
	if strings.TrimSpace(rut) == "" {
		return fail("El RUT no puede estar vacío")
	}
	if !IsRUT(rut) {
		return fail("Formato de RUT inválido. Ejemplo: 12345678-9")
	}
	return ok("RUT válido")
}

func Address(addr string) Result {
	if strings.TrimSpace(addr) == "" {
		return fail("La dirección no puede estar vacía")
	}
	if len([]rune(addr)) < 5 {
		return fail("La dirección debe tener al menos 5 caracteres")
	}
	if !addressPattern.MatchString(addr) {
		return fail("La dirección contiene caracteres no permitidos")
	}
	return ok("Dirección válida")
}

func Age(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail("La edad no puede estar vacía")
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	switch {
	case err != nil:
		return fail("La edad debe ser un número")
	case n < 0:
		return fail("La edad no puede ser negativa")
	case n > 30:
		return fail("La edad parece demasiado alta para una mascota")
	}
	return ok("Edad válida")
}

func Weight(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail("El peso no puede estar vacío")
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	switch {
	case err != nil:
		return fail("El peso debe ser un número")
	case w <= 0:
		return fail("El peso debe ser mayor a 0")
	case w > 200:
		return fail("El peso parece demasiado alto")
	}
	return ok("Peso válido")
}

func Quantity(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail("La cantidad no puede estar vacía")
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	switch {
	case err != nil:
		return fail("La cantidad debe ser un número entero")
	case n <= 0:
		return fail("La cantidad debe ser mayor a 0")
	case n > 100:
		return fail("La cantidad máxima es 100")
	}
	return ok("Cantidad válida")
}
