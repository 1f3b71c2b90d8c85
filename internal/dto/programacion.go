package dto

import (
	"github.com/dmaops/operaciones_mid/models"
)

// ProgramacionCreateDTO es el payload para crear (upsert) una programación semanal.
// La granularidad es jerárquica: nodo exige cliente, cliente exige cartera.
type ProgramacionCreateDTO struct {
	Rut            string  `json:"rut" validate:"required"`
	CarteraId      int64   `json:"cartera_id" validate:"required,gt=0"`
	ClienteId      *int64  `json:"cliente_id,omitempty" validate:"omitempty,gt=0"`
	NodoId         *int64  `json:"nodo_id,omitempty" validate:"omitempty,gt=0"`
	SemanaInicio   string  `json:"semana_inicio" validate:"required"`
	Lunes          bool    `json:"lunes"`
	Martes         bool    `json:"martes"`
	Miercoles      bool    `json:"miercoles"`
	Jueves         bool    `json:"jueves"`
	Viernes        bool    `json:"viernes"`
	Sabado         bool    `json:"sabado"`
	Domingo        bool    `json:"domingo"`
	HorasEstimadas float64 `json:"horas_estimadas" validate:"gte=0,lte=168"`
	Observaciones  string  `json:"observaciones,omitempty"`
	Estado         string  `json:"estado,omitempty"`
}

// AProgramacion convierte el DTO al modelo de dominio, sin normalizar la semana.
func (d ProgramacionCreateDTO) AProgramacion() models.Programacion {
	p := models.Programacion{
		Rut:            d.Rut,
		CarteraId:      d.CarteraId,
		ClienteId:      d.ClienteId,
		NodoId:         d.NodoId,
		SemanaInicio:   d.SemanaInicio,
		Lunes:          d.Lunes,
		Martes:         d.Martes,
		Miercoles:      d.Miercoles,
		Jueves:         d.Jueves,
		Viernes:        d.Viernes,
		Sabado:         d.Sabado,
		Domingo:        d.Domingo,
		HorasEstimadas: d.HorasEstimadas,
		Observaciones:  d.Observaciones,
		Estado:         d.Estado,
	}
	if p.Estado == "" {
		p.Estado = models.ProgramacionEstadoActiva
	}
	return p
}

// ProgramacionLoteDTO agrupa varias creaciones que se despachan en paralelo.
// Confirmar debe venir en true cuando el lote incluye filas sin días asignados.
type ProgramacionLoteDTO struct {
	Items     []ProgramacionCreateDTO `json:"items" validate:"required,min=1,dive"`
	Confirmar bool                    `json:"confirmar,omitempty"`
}

// MatchBatchDTO es el cuerpo del match de prerrequisitos por lote.
type MatchBatchDTO struct {
	Ruts []string `json:"ruts" validate:"required,min=1"`
}
