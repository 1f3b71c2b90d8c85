package dto

import (
	"github.com/dmaops/operaciones_mid/models/requestresponse"
)

// APIResponseDTO reutiliza el DTO estándar expuesto por requestresponse.
// Alias para mantener compatibilidad con consumidores existentes.
type APIResponseDTO = requestresponse.APIResponseDTO

// PageDTO representa una colección paginada. El CRUD no reporta totales, así que
// la página se describe solo por su posición y tamaño.
type PageDTO[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

// SaludDTO describe el estado del backend CRUD visto desde el MID.
type SaludDTO struct {
	BackendDisponible bool   `json:"backend_disponible"`
	ModoDemo          bool   `json:"modo_demo"`
	UltimoChequeo     string `json:"ultimo_chequeo,omitempty"`
}
