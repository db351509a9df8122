package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada uno es terminal para la
// petición: el handler lo traduce a un status HTTP y no hay reintentos.
var (
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrSlotUnavailable = errors.New("time slot unavailable")
)

// FieldError es una violación de una regla de validación sobre un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa las violaciones de todas las reglas evaluadas, en el
// orden en que se declararon. Nunca se construye vacío.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validación: " + e.Errors[0].Field + ": " + e.Errors[0].Message
	}
	return "validación: múltiples campos inválidos"
}
