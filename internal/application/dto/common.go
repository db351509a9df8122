package dto

import "github.com/jhoicas/carshop-api/internal/domain"

// ErrorResponse cuerpo de error HTTP con mensaje único.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de error 400 con la lista ordenada de
// violaciones por campo, suficiente para re-renderizar el formulario.
type ValidationErrorResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

// MessageResponse cuerpo de acuse simple.
type MessageResponse struct {
	Message string `json:"message"`
}
