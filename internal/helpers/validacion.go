package helpers

import (
	"fmt"
	"strings"
	"sync"

	roothelpers "github.com/dmaops/operaciones_mid/helpers"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validador() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidarStruct corre las reglas declaradas en los tags del DTO y traduce cada
// infracción a un mensaje legible. Las validaciones ocurren antes de cualquier
// llamada al backend.
func ValidarStruct(s interface{}) *roothelpers.ValidacionError {
	err := validador().Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return roothelpers.NewValidacionError(err.Error())
	}

	mensajes := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		mensajes = append(mensajes, mensajeCampo(fe))
	}
	return roothelpers.NewValidacionError(mensajes...)
}

func mensajeCampo(fe validator.FieldError) string {
	campo := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", campo)
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", campo, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", campo, fe.Param())
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual a %s", campo, fe.Param())
	case "min":
		return fmt.Sprintf("%s requiere al menos %s elemento(s)", campo, fe.Param())
	default:
		return fmt.Sprintf("%s no cumple la regla %s", campo, fe.Tag())
	}
}
