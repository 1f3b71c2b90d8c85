package models

// Estados de una programación semanal según los maneja el CRUD de operaciones.
const (
	ProgramacionEstadoActiva    = "activa"
	ProgramacionEstadoConfirmada = "confirmada"
	ProgramacionEstadoCancelada = "cancelada"
)
