package helpers

import (
	"net/http"

	roothelpers "github.com/dmaops/operaciones_mid/helpers"
	internaldto "github.com/dmaops/operaciones_mid/internal/dto"
	"github.com/dmaops/operaciones_mid/models/requestresponse"
)

// Ok construye una respuesta estándar exitosa.
func Ok(data interface{}) internaldto.APIResponseDTO {
	return requestresponse.NewSuccess(http.StatusOK, "OK", data)
}

// DemoOk construye una respuesta exitosa servida desde las fixtures de demo.
func DemoOk(data interface{}) internaldto.APIResponseDTO {
	return requestresponse.NewDemoSuccess(http.StatusOK, data)
}

// Fail construye una respuesta estándar de error.
func Fail(status int, message string) internaldto.APIResponseDTO {
	if status <= 0 {
		status = http.StatusInternalServerError
	}
	return requestresponse.NewError(status, message, nil)
}

// FailErr mapea un error de servicio a la respuesta estándar: los errores de
// validación viajan como lista de mensajes en Data, los HTTPError del backend
// conservan su status y el resto cae en 500.
func FailErr(err error) internaldto.APIResponseDTO {
	if ve, ok := roothelpers.IsValidacionError(err); ok {
		return requestresponse.NewError(http.StatusBadRequest, "validación fallida", ve.Mensajes)
	}
	appErr := roothelpers.AsAppError(err, "error inesperado")
	return requestresponse.NewError(appErr.Status, appErr.Message, nil)
}
