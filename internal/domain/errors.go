package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")

	// ErrDataAccess es el único error que las capas superiores ven ante una
	// falla del store. El detalle del driver se registra en el log, nunca
	// viaja hacia el cliente.
	ErrDataAccess = errors.New("error de acceso a datos")
)

// ValidationError agrupa errores de validación por campo, para que el
// formulario pueda re-pintarse con el detalle de cada campo fallido.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye un ValidationError vacío listo para acumular campos.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add registra el mensaje de error para un campo.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// HasErrors indica si se acumuló al menos un campo inválido.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error lista los campos inválidos en orden estable.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validación fallida: %s", strings.Join(keys, ", "))
}
