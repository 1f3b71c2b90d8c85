package models

import (
	"fmt"
	"strings"
	"time"
)

// DiasSemana lista las claves de día en el orden que maneja el CRUD.
var DiasSemana = []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}

// FormatoSemana es el layout de fecha usado para semana_inicio.
const FormatoSemana = "2006-01-02"

// Programacion es la unidad de planificación semanal: una persona asignada a una
// cartera (y opcionalmente cliente/nodo) con banderas por día.
type Programacion struct {
	Id             int64   `json:"id"`
	Rut            string  `json:"rut"`
	CarteraId      int64   `json:"cartera_id"`
	ClienteId      *int64  `json:"cliente_id,omitempty"`
	NodoId         *int64  `json:"nodo_id,omitempty"`
	SemanaInicio   string  `json:"semana_inicio"`
	Lunes          bool    `json:"lunes"`
	Martes         bool    `json:"martes"`
	Miercoles      bool    `json:"miercoles"`
	Jueves         bool    `json:"jueves"`
	Viernes        bool    `json:"viernes"`
	Sabado         bool    `json:"sabado"`
	Domingo        bool    `json:"domingo"`
	HorasEstimadas float64 `json:"horas_estimadas"`
	Observaciones  string  `json:"observaciones,omitempty"`
	Estado         string  `json:"estado,omitempty"`
}

// DiaActivo retorna la bandera del día indicado.
func (p *Programacion) DiaActivo(dia string) (bool, error) {
	switch normalizarDia(dia) {
	case "lunes":
		return p.Lunes, nil
	case "martes":
		return p.Martes, nil
	case "miercoles":
		return p.Miercoles, nil
	case "jueves":
		return p.Jueves, nil
	case "viernes":
		return p.Viernes, nil
	case "sabado":
		return p.Sabado, nil
	case "domingo":
		return p.Domingo, nil
	}
	return false, fmt.Errorf("día inválido: %s", dia)
}

// FijarDia asigna la bandera del día indicado dejando el resto intacto.
func (p *Programacion) FijarDia(dia string, activo bool) error {
	switch normalizarDia(dia) {
	case "lunes":
		p.Lunes = activo
	case "martes":
		p.Martes = activo
	case "miercoles":
		p.Miercoles = activo
	case "jueves":
		p.Jueves = activo
	case "viernes":
		p.Viernes = activo
	case "sabado":
		p.Sabado = activo
	case "domingo":
		p.Domingo = activo
	default:
		return fmt.Errorf("día inválido: %s", dia)
	}
	return nil
}

// DiasActivos cuenta cuántos días de la semana quedan asignados.
func (p *Programacion) DiasActivos() int {
	total := 0
	for _, d := range DiasSemana {
		if activo, _ := p.DiaActivo(d); activo {
			total++
		}
	}
	return total
}

func normalizarDia(dia string) string {
	d := strings.ToLower(strings.TrimSpace(dia))
	// tolera acentos habituales del frontend
	switch d {
	case "miércoles":
		return "miercoles"
	case "sábado":
		return "sabado"
	}
	return d
}

// ResumenSemanal agrega los totales derivados de un conjunto de programaciones.
type ResumenSemanal struct {
	CarteraId         int64          `json:"cartera_id,omitempty"`
	SemanaInicio      string         `json:"semana_inicio,omitempty"`
	TotalAsignaciones int            `json:"total_asignaciones"`
	TotalHoras        float64        `json:"total_horas"`
	PersonasUnicas    int            `json:"personas_unicas"`
	PorDia            map[string]int `json:"por_dia"`
}

// NormalizarSemana lleva cualquier fecha yyyy-mm-dd al lunes de su semana.
func NormalizarSemana(fecha string) (string, error) {
	t, err := time.Parse(FormatoSemana, strings.TrimSpace(fecha))
	if err != nil {
		return "", fmt.Errorf("semana_inicio inválida: %s", fecha)
	}
	return LunesDeSemana(t).Format(FormatoSemana), nil
}

// LunesDeSemana retorna el lunes de la semana a la que pertenece t.
func LunesDeSemana(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
