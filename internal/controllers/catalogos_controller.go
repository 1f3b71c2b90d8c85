package controllers

import (
	"net/http"
	"strings"

	rootcontrollers "github.com/dmaops/operaciones_mid/controllers"
	internaldto "github.com/dmaops/operaciones_mid/internal/dto"
	internalhelpers "github.com/dmaops/operaciones_mid/internal/helpers"
	internalservices "github.com/dmaops/operaciones_mid/internal/services"
	"github.com/dmaops/operaciones_mid/models"
)

// CatalogosController expone los catálogos de carteras, clientes y nodos.
type CatalogosController struct {
	rootcontrollers.BaseController
}

// @Summary Listar carteras
// @Description Carteras activas con filtro q y paginación. Catálogo cacheado.
// @Tags Catalogos
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetCarteras lista las carteras.
func (c *CatalogosController) GetCarteras() {
	ctx := c.Ctx.Request.Context()
	q := strings.TrimSpace(c.GetString("q"))
	page, size := internalhelpers.ParsePageSize(c.GetString("page"), c.GetString("size"))

	if modoDemo(ctx) {
		resp := internalhelpers.DemoOk(internaldto.PageDTO[models.Cartera]{
			Items: internalservices.FixtureCarteras(), Page: page, Size: size,
		})
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Carteras().ListCarteras(ctx, q, page, size)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(internaldto.PageDTO[models.Cartera]{Items: data, Page: page, Size: size})
	c.writeJSON(resp.Status, resp)
}

// @Summary Clientes de una cartera
// @Tags Catalogos
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetClientes lista los clientes de una cartera.
func (c *CatalogosController) GetClientes() {
	ctx := c.Ctx.Request.Context()
	carteraID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, err.Error())
		c.writeJSON(resp.Status, resp)
		return
	}

	if modoDemo(ctx) {
		resp := internalhelpers.DemoOk(internalservices.FixtureClientes(carteraID))
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Carteras().ListClientes(ctx, carteraID)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Nodos de un cliente
// @Tags Catalogos
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetNodos lista los nodos de un cliente.
func (c *CatalogosController) GetNodos() {
	ctx := c.Ctx.Request.Context()
	clienteID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, err.Error())
		c.writeJSON(resp.Status, resp)
		return
	}

	if modoDemo(ctx) {
		resp := internalhelpers.DemoOk(internalservices.FixtureNodos(clienteID))
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Carteras().ListNodos(ctx, clienteID)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

func (c *CatalogosController) writeJSON(status int, payload interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
