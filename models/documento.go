package models

import "time"

// Estados calculados de vigencia de un documento. Nunca se persisten: se recalculan
// contra "ahora" en cada lectura.
const (
	EstadoSinFecha  = "sin_fecha"
	EstadoVencido   = "vencido"
	EstadoPorVencer = "por_vencer"
	EstadoVigente   = "vigente"
)

// DiasAlertaVencimiento define la ventana (inclusive) en la que un documento se
// reporta como por vencer.
const DiasAlertaVencimiento = 30

// TiposDocumentoRequeridos es el conjunto fijo de tipos exigidos para considerar
// la documentación de una persona como completa.
var TiposDocumentoRequeridos = []string{
	"certificado_curso",
	"certificado_medico",
	"licencia_conducir",
	"certificado_seguridad",
}

// Documento es un documento o credencial asociado a una persona.
type Documento struct {
	Id               int64      `json:"id"`
	RutPersona       string     `json:"rut_persona"`
	TipoDocumento    string     `json:"tipo_documento"`
	NombreDocumento  string     `json:"nombre_documento,omitempty"`
	FechaEmision     *time.Time `json:"fecha_emision,omitempty"`
	FechaVencimiento *time.Time `json:"fecha_vencimiento,omitempty"`

	// Derivados (ver ClasificarVencimiento); no forman parte del registro del CRUD.
	EstadoCalculado string `json:"estado_calculado,omitempty"`
	DiasRestantes   *int   `json:"dias_restantes,omitempty"`
}

// ResumenDocumentos agrupa los contadores globales del dashboard.
type ResumenDocumentos struct {
	Total     int `json:"total"`
	Vigentes  int `json:"vigentes"`
	Vencidos  int `json:"vencidos"`
	PorVencer int `json:"por_vencer"`
	SinFecha  int `json:"sin_fecha"`
	Cursos    int `json:"cursos"`
}
