package controllers

import (
	"net/http"
	"strings"

	rootcontrollers "github.com/dmaops/operaciones_mid/controllers"
	internaldto "github.com/dmaops/operaciones_mid/internal/dto"
	internalhelpers "github.com/dmaops/operaciones_mid/internal/helpers"
	internalservices "github.com/dmaops/operaciones_mid/internal/services"
)

// PrerrequisitosController expone los prerrequisitos por cliente y el match documental.
type PrerrequisitosController struct {
	rootcontrollers.BaseController
}

// @Summary Prerrequisitos por cliente
// @Tags Prerrequisitos
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetClientes lista los prerrequisitos de todos los clientes.
func (c *PrerrequisitosController) GetClientes() {
	ctx := c.Ctx.Request.Context()

	data, err := internalservices.Prerrequisitos().ListPrerrequisitos(ctx)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Match persona vs cliente
// @Description Compara los documentos de una persona contra los prerrequisitos del cliente.
// @Tags Prerrequisitos
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// GetMatch evalúa el match de una persona contra un cliente.
func (c *PrerrequisitosController) GetMatch() {
	ctx := c.Ctx.Request.Context()
	clienteID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, err.Error())
		c.writeJSON(resp.Status, resp)
		return
	}
	rut := strings.TrimSpace(c.GetString("rut"))
	if rut == "" {
		resp := internalhelpers.Fail(http.StatusBadRequest, "rut requerido")
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Prerrequisitos().MatchCliente(ctx, clienteID, rut)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Match en lote
// @Description Evalúa varias personas contra los prerrequisitos de un cliente.
// @Tags Prerrequisitos
// @Accept json
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// PostMatch evalúa el match de un lote de ruts contra un cliente.
func (c *PrerrequisitosController) PostMatch() {
	ctx := c.Ctx.Request.Context()
	clienteID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, err.Error())
		c.writeJSON(resp.Status, resp)
		return
	}

	var req internaldto.MatchBatchDTO
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

	data, err := internalservices.Prerrequisitos().MatchClienteBatch(ctx, clienteID, req.Ruts)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

func (c *PrerrequisitosController) writeJSON(status int, payload interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
