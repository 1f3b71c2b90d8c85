package controllers

import (
	"time"

	rootcontrollers "github.com/dmaops/operaciones_mid/controllers"
	internaldto "github.com/dmaops/operaciones_mid/internal/dto"
	internalhelpers "github.com/dmaops/operaciones_mid/internal/helpers"
	internalservices "github.com/dmaops/operaciones_mid/internal/services"
	rootservices "github.com/dmaops/operaciones_mid/services"
)

// SaludController reporta la disponibilidad del backend CRUD.
type SaludController struct {
	rootcontrollers.BaseController
}

// @Summary Estado del backend
// @Description Chequea el backend CRUD (con cache) y reporta si el MID opera en modo demo.
// @Tags Salud
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetBackend chequea el backend; con forzar=true ignora el cache.
func (c *SaludController) GetBackend() {
	ctx := c.Ctx.Request.Context()
	demo := internalservices.Demo()

	var disponible bool
	if c.GetString("forzar") == "true" {
		disponible = demo.ForzarChequeo(ctx)
	} else {
		disponible = demo.BackendDisponible(ctx)
	}

	salud := internaldto.SaludDTO{
		BackendDisponible: disponible,
		ModoDemo:          !disponible && rootservices.GetConfig().DemoHabilitado,
	}
	if t, ok := demo.UltimoChequeo(); ok {
		salud.UltimoChequeo = t.UTC().Format(time.RFC3339)
	}

	resp := internalhelpers.Ok(salud)
	c.writeJSON(resp.Status, resp)
}

func (c *SaludController) writeJSON(status int, payload interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
