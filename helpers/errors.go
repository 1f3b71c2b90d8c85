package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError representa un error controlado con código HTTP y mensaje funcional.
type AppError struct {
	Status  int
	Message string
	Err     error
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite extraer el error original cuando exista.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError construye un AppError con mensaje y status.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// AsAppError convierte cualquier error en AppError con status 500 por defecto.
// Los HTTPError del backend conservan su código original.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return &AppError{Status: he.Status, Message: he.Body, Err: he}
	}
	var ve *ValidacionError
	if errors.As(err, &ve) {
		return &AppError{Status: http.StatusBadRequest, Message: ve.Error(), Err: ve}
	}
	msg := defaultMessage
	if msg == "" {
		msg = "error inesperado"
	}
	return &AppError{Status: 500, Message: msg, Err: err}
}

// ValidacionError agrupa los mensajes de validación detectados antes de cualquier
// llamada al backend. Nunca se envía al CRUD.
type ValidacionError struct {
	Mensajes []string
}

// Error concatena los mensajes en una sola línea legible.
func (e *ValidacionError) Error() string {
	if e == nil || len(e.Mensajes) == 0 {
		return "validación fallida"
	}
	return strings.Join(e.Mensajes, "; ")
}

// NewValidacionError construye el error a partir de la lista de mensajes.
func NewValidacionError(mensajes ...string) *ValidacionError {
	return &ValidacionError{Mensajes: mensajes}
}

// IsValidacionError extrae el detalle de validación si corresponde.
func IsValidacionError(err error) (*ValidacionError, bool) {
	var ve *ValidacionError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
