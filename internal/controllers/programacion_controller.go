package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	rootcontrollers "github.com/dmaops/operaciones_mid/controllers"
	internaldto "github.com/dmaops/operaciones_mid/internal/dto"
	internalhelpers "github.com/dmaops/operaciones_mid/internal/helpers"
	internalservices "github.com/dmaops/operaciones_mid/internal/services"
	"github.com/dmaops/operaciones_mid/models"
)

// ProgramacionController gestiona la programación semanal de personal.
type ProgramacionController struct {
	rootcontrollers.BaseController
}

// @Summary Programación de una cartera
// @Description Programaciones de la cartera en la semana indicada (normalizada a lunes).
// @Tags Programacion
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetCartera lista la programación semanal de una cartera.
func (c *ProgramacionController) GetCartera() {
	ctx := c.Ctx.Request.Context()
	carteraID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, err.Error())
		c.writeJSON(resp.Status, resp)
		return
	}
	semana := strings.TrimSpace(c.GetString("semana"))

	if modoDemo(ctx) {
		items := filtrarProgramacionCartera(internalservices.FixtureProgramacion(time.Now()), carteraID)
		resp := internalhelpers.DemoOk(items)
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Programacion().SemanaCartera(ctx, carteraID, semana)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Programación global de una semana
// @Tags Programacion
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetSemana lista la programación de todas las carteras para una semana.
func (c *ProgramacionController) GetSemana() {
	ctx := c.Ctx.Request.Context()
	fecha := strings.TrimSpace(c.GetString("fecha"))

	if modoDemo(ctx) {
		resp := internalhelpers.DemoOk(internalservices.FixtureProgramacion(time.Now()))
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Programacion().Semana(ctx, fecha)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Programación por rango de fechas
// @Description Programaciones de una cartera dentro de un rango de fechas inclusivo, vía la consulta optimizada del backend.
// @Tags Programacion
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// GetOptimizada consulta la programación de una cartera por rango de fechas.
func (c *ProgramacionController) GetOptimizada() {
	ctx := c.Ctx.Request.Context()
	carteraID, err := strconv.ParseInt(strings.TrimSpace(c.GetString("cartera_id")), 10, 64)
	if err != nil || carteraID <= 0 {
		resp := internalhelpers.Fail(http.StatusBadRequest, "cartera_id inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	inicio := strings.TrimSpace(c.GetString("fecha_inicio"))
	fin := strings.TrimSpace(c.GetString("fecha_fin"))

	if modoDemo(ctx) {
		items := filtrarProgramacionCartera(internalservices.FixtureProgramacion(time.Now()), carteraID)
		resp := internalhelpers.DemoOk(items)
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Programacion().RangoOptimizado(ctx, carteraID, inicio, fin)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Resumen semanal
// @Description Totales de asignaciones, horas, personas únicas y conteo por día.
// @Tags Programacion
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetResumen retorna el resumen semanal de una cartera.
func (c *ProgramacionController) GetResumen() {
	ctx := c.Ctx.Request.Context()
	carteraID, err := strconv.ParseInt(strings.TrimSpace(c.GetString("cartera_id")), 10, 64)
	if err != nil || carteraID <= 0 {
		resp := internalhelpers.Fail(http.StatusBadRequest, "cartera_id inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	semana := strings.TrimSpace(c.GetString("semana"))

	if modoDemo(ctx) {
		items := filtrarProgramacionCartera(internalservices.FixtureProgramacion(time.Now()), carteraID)
		resp := internalhelpers.DemoOk(internalservices.ResumirProgramaciones(items))
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Programacion().Resumen(ctx, carteraID, semana)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Crear programación
// @Description Crea una asignación semanal. Un duplicado en el backend se reporta como éxito con duplicada=true.
// @Tags Programacion
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// PostCrear crea una programación.
func (c *ProgramacionController) PostCrear() {
	ctx := c.Ctx.Request.Context()

	var req internaldto.ProgramacionCreateDTO
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	if err := internalhelpers.ValidarStruct(req); err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Programacion().Crear(ctx, req)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Crear programaciones en lote
// @Description Crea varias asignaciones. Solapes dentro del lote rechazan el lote completo.
// @Tags Programacion
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// PostLote crea un lote de programaciones.
func (c *ProgramacionController) PostLote() {
	ctx := c.Ctx.Request.Context()

	var req internaldto.ProgramacionLoteDTO
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	if err := internalhelpers.ValidarStruct(req); err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Programacion().CrearLote(ctx, req)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Actualizar programación
// @Tags Programacion
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// PutActualizar reemplaza una programación completa.
func (c *ProgramacionController) PutActualizar() {
	ctx := c.Ctx.Request.Context()
	id, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, err.Error())
		c.writeJSON(resp.Status, resp)
		return
	}

	var req internaldto.ProgramacionCreateDTO
	if err := c.ParseJSONBody(&req); err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "JSON inválido")
		c.writeJSON(resp.Status, resp)
		return
	}
	if err := internalhelpers.ValidarStruct(req); err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Programacion().Actualizar(ctx, id, req)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Alternar un día
// @Description Enciende o apaga un día preservando los otros seis. Apagar el último día requiere confirmar=true.
// @Tags Programacion
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// PutToggleDia alterna un día de la programación.
func (c *ProgramacionController) PutToggleDia() {
	ctx := c.Ctx.Request.Context()
	id, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, err.Error())
		c.writeJSON(resp.Status, resp)
		return
	}
	dia, err := internalhelpers.ParamTexto(c.Ctx, ":dia")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, err.Error())
		c.writeJSON(resp.Status, resp)
		return
	}
	confirmar := c.GetString("confirmar") == "true"

	data, err := internalservices.Programacion().ToggleDia(ctx, id, dia, confirmar)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Eliminar programación
// @Tags Programacion
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// DeleteEliminar elimina una programación.
func (c *ProgramacionController) DeleteEliminar() {
	ctx := c.Ctx.Request.Context()
	id, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, err.Error())
		c.writeJSON(resp.Status, resp)
		return
	}

	if err := internalservices.Programacion().Eliminar(ctx, id); err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(map[string]int64{"id": id})
	c.writeJSON(resp.Status, resp)
}

// --------------------- helpers locales ---------------------

func filtrarProgramacionCartera(items []models.Programacion, carteraID int64) []models.Programacion {
	out := make([]models.Programacion, 0, len(items))
	for _, it := range items {
		if it.CarteraId == carteraID {
			out = append(out, it)
		}
	}
	return out
}

func (c *ProgramacionController) writeJSON(status int, payload interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
