package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmaops/operaciones_mid/helpers"
	"github.com/dmaops/operaciones_mid/internal/clients"
	"github.com/dmaops/operaciones_mid/internal/dto"
	internalhelpers "github.com/dmaops/operaciones_mid/internal/helpers"
	"github.com/dmaops/operaciones_mid/models"

	"golang.org/x/sync/errgroup"
)

// ProgramacionService implementa la planificación semanal: creación con la regla
// de duplicado benigno, volteo de días preservando el resto de la semana, lotes
// concurrentes y totales derivados.
type ProgramacionService struct {
	crud *clients.OperacionesCRUDClient
}

// NewProgramacionService construye el servicio sobre un cliente CRUD explícito.
func NewProgramacionService(crud *clients.OperacionesCRUDClient) *ProgramacionService {
	return &ProgramacionService{crud: crud}
}

// ResultadoCreacion es el resultado visible de crear una programación. Cuando el
// backend respondió 409, Duplicada es true y Programacion es el payload
// intentado (no lo que el backend tenga almacenado).
type ResultadoCreacion struct {
	Programacion models.Programacion `json:"programacion"`
	Duplicada    bool                `json:"duplicada,omitempty"`
	Advertencias []string            `json:"advertencias,omitempty"`
}

// Crear valida y crea una programación. Regla de negocio documentada: un 409 del
// backend significa "ya existe una asignación para esa persona/día" y se acepta
// como duplicado permitido, sintetizando un éxito con el payload intentado en
// lugar de propagar el error. Supuesto a validar contra el contrato real del
// CRUD: todo 409 de este endpoint es duplicado benigno.
func (s *ProgramacionService) Crear(ctx context.Context, in dto.ProgramacionCreateDTO) (*ResultadoCreacion, error) {
	if err := validarCreacion(in); err != nil {
		return nil, err
	}

	p := in.AProgramacion()
	semana, err := models.NormalizarSemana(p.SemanaInicio)
	if err != nil {
		return nil, helpers.NewValidacionError(err.Error())
	}
	p.SemanaInicio = semana

	var advertencias []string
	if p.DiasActivos() == 0 {
		advertencias = append(advertencias, "programación sin días asignados")
	}

	created, err := s.crud.CreateProgramacion(ctx, p)
	if err != nil {
		if helpers.IsHTTPError(err, http.StatusConflict) {
			return &ResultadoCreacion{Programacion: p, Duplicada: true, Advertencias: advertencias}, nil
		}
		return nil, err
	}
	return &ResultadoCreacion{Programacion: *created, Advertencias: advertencias}, nil
}

// CrearLote despacha las creaciones en paralelo y espera por todas. No hay
// semántica de éxito parcial: si alguna falla (fuera de la regla del 409), el
// lote completo se reporta como fallido.
func (s *ProgramacionService) CrearLote(ctx context.Context, lote dto.ProgramacionLoteDTO) ([]ResultadoCreacion, error) {
	if err := internalhelpers.ValidarStruct(lote); err != nil {
		return nil, err
	}
	if err := validarSolapesEnLote(lote.Items); err != nil {
		return nil, err
	}

	// misma barandilla que ToggleDia: dejar filas sin días pide confirmación
	sinDias := 0
	for _, item := range lote.Items {
		p := item.AProgramacion()
		if p.DiasActivos() == 0 {
			sinDias++
		}
	}
	if sinDias > 0 && !lote.Confirmar {
		return nil, helpers.NewValidacionError(fmt.Sprintf(
			"el lote incluye %d programaciones sin días asignados; repita con confirmar=true", sinDias))
	}

	resultados := make([]*ResultadoCreacion, len(lote.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i := range lote.Items {
		i := i
		g.Go(func() error {
			res, err := s.Crear(gctx, lote.Items[i])
			if err != nil {
				return err
			}
			resultados[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]ResultadoCreacion, 0, len(resultados))
	for _, res := range resultados {
		out = append(out, *res)
	}
	return out, nil
}

// ToggleDia voltea la bandera de un día preservando los otros seis: el backend
// reemplaza el set de días completo, no un campo suelto. Si el volteo deja la
// semana sin días, se exige confirmación explícita del llamador.
func (s *ProgramacionService) ToggleDia(ctx context.Context, id int64, dia string, confirmar bool) (*models.Programacion, error) {
	actual, err := s.crud.GetProgramacion(ctx, id)
	if err != nil {
		return nil, err
	}

	activo, err := actual.DiaActivo(dia)
	if err != nil {
		return nil, helpers.NewValidacionError(err.Error())
	}

	copia := *actual
	if err := copia.FijarDia(dia, !activo); err != nil {
		return nil, helpers.NewValidacionError(err.Error())
	}

	if copia.DiasActivos() == 0 && !confirmar {
		return nil, helpers.NewValidacionError(
			"la programación quedaría sin días asignados; repita la operación con confirmar=true")
	}

	return s.crud.UpdateProgramacion(ctx, id, copia)
}

// Actualizar reemplaza el registro completo con los datos del DTO.
func (s *ProgramacionService) Actualizar(ctx context.Context, id int64, in dto.ProgramacionCreateDTO) (*models.Programacion, error) {
	if err := validarCreacion(in); err != nil {
		return nil, err
	}
	p := in.AProgramacion()
	semana, err := models.NormalizarSemana(p.SemanaInicio)
	if err != nil {
		return nil, helpers.NewValidacionError(err.Error())
	}
	p.SemanaInicio = semana
	p.Id = id
	return s.crud.UpdateProgramacion(ctx, id, p)
}

// Eliminar borra una programación por id.
func (s *ProgramacionService) Eliminar(ctx context.Context, id int64) error {
	return s.crud.DeleteProgramacion(ctx, id)
}

// SemanaCartera lista la semana de una cartera, normalizando la fecha al lunes.
func (s *ProgramacionService) SemanaCartera(ctx context.Context, carteraID int64, semana string) ([]models.Programacion, error) {
	normalizada, err := models.NormalizarSemana(semana)
	if err != nil {
		return nil, helpers.NewValidacionError(err.Error())
	}
	return s.crud.ListProgramacionCartera(ctx, carteraID, normalizada)
}

// Semana lista la programación global de la semana a la que pertenece la fecha.
func (s *ProgramacionService) Semana(ctx context.Context, fecha string) ([]models.Programacion, error) {
	normalizada, err := models.NormalizarSemana(fecha)
	if err != nil {
		return nil, helpers.NewValidacionError(err.Error())
	}
	return s.crud.ListProgramacionSemana(ctx, normalizada)
}

// RangoOptimizado consulta la variante del backend que acepta un rango de
// fechas arbitrario, sin normalizar a semanas. Ambos extremos son inclusivos.
func (s *ProgramacionService) RangoOptimizado(ctx context.Context, carteraID int64, inicio, fin string) ([]models.Programacion, error) {
	desde, err := time.Parse("2006-01-02", strings.TrimSpace(inicio))
	if err != nil {
		return nil, helpers.NewValidacionError("fecha_inicio inválida, se espera AAAA-MM-DD")
	}
	hasta, err := time.Parse("2006-01-02", strings.TrimSpace(fin))
	if err != nil {
		return nil, helpers.NewValidacionError("fecha_fin inválida, se espera AAAA-MM-DD")
	}
	if hasta.Before(desde) {
		return nil, helpers.NewValidacionError("fecha_fin es anterior a fecha_inicio")
	}
	return s.crud.ListProgramacionOptimizada(ctx, carteraID,
		desde.Format("2006-01-02"), hasta.Format("2006-01-02"))
}

// Resumen computa los totales derivados de la semana de una cartera: horas
// estimadas, personas únicas y asignaciones por día.
func (s *ProgramacionService) Resumen(ctx context.Context, carteraID int64, semana string) (*models.ResumenSemanal, error) {
	items, err := s.SemanaCartera(ctx, carteraID, semana)
	if err != nil {
		return nil, err
	}

	normalizada, _ := models.NormalizarSemana(semana)
	resumen := ResumirProgramaciones(items)
	resumen.CarteraId = carteraID
	resumen.SemanaInicio = normalizada
	return resumen, nil
}

// ResumirProgramaciones agrega un conjunto de programaciones. Pura.
func ResumirProgramaciones(items []models.Programacion) *models.ResumenSemanal {
	resumen := &models.ResumenSemanal{
		TotalAsignaciones: len(items),
		PorDia:            make(map[string]int, len(models.DiasSemana)),
	}
	for _, dia := range models.DiasSemana {
		resumen.PorDia[dia] = 0
	}

	ruts := make(map[string]struct{})
	for _, item := range items {
		resumen.TotalHoras += item.HorasEstimadas
		if rut := strings.TrimSpace(item.Rut); rut != "" {
			ruts[rut] = struct{}{}
		}
		for _, dia := range models.DiasSemana {
			if activo, _ := item.DiaActivo(dia); activo {
				resumen.PorDia[dia]++
			}
		}
	}
	resumen.PersonasUnicas = len(ruts)
	return resumen
}

func validarCreacion(in dto.ProgramacionCreateDTO) error {
	if err := internalhelpers.ValidarStruct(in); err != nil {
		return err
	}
	// jerarquía: un nodo no existe sin cliente
	if in.NodoId != nil && in.ClienteId == nil {
		return helpers.NewValidacionError("nodo_id requiere cliente_id")
	}
	return nil
}

// validarSolapesEnLote detecta dos asignaciones de la misma persona al mismo día
// de la misma semana dentro del lote enviado. Es validación de formulario: los
// duplicados contra lo ya almacenado los resuelve el backend (409).
func validarSolapesEnLote(items []dto.ProgramacionCreateDTO) error {
	vistos := make(map[string]struct{})
	mensajes := make([]string, 0)
	for _, item := range items {
		semana, err := models.NormalizarSemana(item.SemanaInicio)
		if err != nil {
			continue // la validación por item lo reporta después
		}
		p := item.AProgramacion()
		for _, dia := range models.DiasSemana {
			if activo, _ := p.DiaActivo(dia); !activo {
				continue
			}
			clave := fmt.Sprintf("%s|%s|%s", strings.TrimSpace(item.Rut), semana, dia)
			if _, ok := vistos[clave]; ok {
				mensajes = append(mensajes, fmt.Sprintf(
					"el rut %s aparece dos veces el %s de la semana %s", item.Rut, dia, semana))
				continue
			}
			vistos[clave] = struct{}{}
		}
	}
	if len(mensajes) > 0 {
		return helpers.NewValidacionError(mensajes...)
	}
	return nil
}
