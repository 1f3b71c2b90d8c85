package controllers

import (
	"time"

	rootcontrollers "github.com/dmaops/operaciones_mid/controllers"
	internalhelpers "github.com/dmaops/operaciones_mid/internal/helpers"
	internalservices "github.com/dmaops/operaciones_mid/internal/services"
)

// DashboardController expone el resumen global de documentación.
type DashboardController struct {
	rootcontrollers.BaseController
}

// @Summary Resumen global de documentos
// @Description Totales de vigentes, vencidos, por vencer, sin fecha y cursos, deduplicados por id.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetDocumentos retorna el resumen global de documentos.
func (c *DashboardController) GetDocumentos() {
	ctx := c.Ctx.Request.Context()

	if modoDemo(ctx) {
		ahora := time.Now()
		docs := internalservices.DeduplicarPorId(internalservices.FixtureDocumentos(ahora))
		resp := internalhelpers.DemoOk(internalservices.ResumirDocumentos(docs, ahora))
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Dashboard().ResumenDocumentos(ctx)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

func (c *DashboardController) writeJSON(status int, payload interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
