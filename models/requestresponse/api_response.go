package requestresponse

// APIResponseDTO encapsula la respuesta estándar del MID.
type APIResponseDTO struct {
	Success bool        `json:"Success"`
	Status  int         `json:"Status"`
	Message string      `json:"Message"`
	Demo    bool        `json:"Demo,omitempty"`
	Data    interface{} `json:"Data"`
}

// NewSuccess construye una respuesta exitosa.
func NewSuccess(status int, message string, data interface{}) APIResponseDTO {
	if message == "" {
		message = "OK"
	}
	return APIResponseDTO{
		Success: true,
		Status:  status,
		Message: message,
		Data:    data,
	}
}

// NewDemoSuccess marca la respuesta como servida desde las fixtures de demostración,
// para que el frontend muestre el banner de modo demo.
func NewDemoSuccess(status int, data interface{}) APIResponseDTO {
	resp := NewSuccess(status, "modo demo: backend no disponible", data)
	resp.Demo = true
	return resp
}

// NewError construye una respuesta de error.
func NewError(status int, message string, data interface{}) APIResponseDTO {
	if message == "" {
		message = "Error"
	}
	return APIResponseDTO{
		Success: false,
		Status:  status,
		Message: message,
		Data:    data,
	}
}
