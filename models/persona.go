package models

// Persona representa un trabajador del personal operativo, identificado por su RUT.
type Persona struct {
	Rut            string `json:"rut"`
	Nombre         string `json:"nombre"`
	Cargo          string `json:"cargo,omitempty"`
	ZonaGeografica string `json:"zona_geografica,omitempty"`
	Activo         bool   `json:"activo"`
}

// PersonaConDocumentacion es una persona junto al resultado de evaluar su documentación.
type PersonaConDocumentacion struct {
	Persona
	Evaluacion EvaluacionDocumentacion `json:"evaluacion"`
}

// EvaluacionDocumentacion resume la elegibilidad documental de una persona.
// Motivo queda vacío cuando Cumple es true.
type EvaluacionDocumentacion struct {
	Rut       string      `json:"rut"`
	Cumple    bool        `json:"cumple"`
	Motivo    string      `json:"motivo,omitempty"`
	Faltantes []string    `json:"faltantes,omitempty"`
	Detalle   []Documento `json:"detalle,omitempty"`
}

// Motivos de no cumplimiento documental.
const (
	MotivoDocumentosFaltantes = "documentos_faltantes"
	MotivoDocumentosVencidos  = "documentos_vencidos"
	MotivoDocumentosPorVencer = "documentos_por_vencer"
)
