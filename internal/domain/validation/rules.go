// Package validation implementa la validación declarativa de payloads: una
// lista ordenada de reglas campo+predicado+mensaje que se evalúan todas de
// forma independiente, sin cortocircuito, para poder reportar varios errores
// en una sola respuesta.
package validation

import (
	"fmt"
	"time"

	"github.com/jhoicas/carshop-api/internal/domain"
)

// Rule es una regla sobre un campo del payload. Valid debe ser una función
// pura sobre el valor ya capturado; Run nunca la omite.
type Rule struct {
	Field   string
	Message string
	Valid   func() bool
}

// Run evalúa todas las reglas en orden y acumula una entrada por regla
// violada. Devuelve nil si el payload es válido.
func Run(rules []Rule) []domain.FieldError {
	var errs []domain.FieldError
	for _, r := range rules {
		if !r.Valid() {
			errs = append(errs, domain.FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}

// Required exige un string no vacío.
func Required(field, value string) Rule {
	return Rule{
		Field:   field,
		Message: field + " is required",
		Valid:   func() bool { return value != "" },
	}
}

// YearBetween exige un año dentro del rango inclusivo [min, max].
func YearBetween(field string, year, min, max int) Rule {
	return Rule{
		Field:   field,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Valid:   func() bool { return year >= min && year <= max },
	}
}

// DateTime exige un timestamp parseable como RFC 3339.
func DateTime(field, value string) Rule {
	return Rule{
		Field:   field,
		Message: field + " must be a valid ISO-8601 date-time",
		Valid: func() bool {
			_, err := time.Parse(time.RFC3339, value)
			return err == nil
		},
	}
}
