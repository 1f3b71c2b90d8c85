package controllers

import (
	"net/http"
	"strings"
	"time"

	rootcontrollers "github.com/dmaops/operaciones_mid/controllers"
	internaldto "github.com/dmaops/operaciones_mid/internal/dto"
	internalhelpers "github.com/dmaops/operaciones_mid/internal/helpers"
	internalservices "github.com/dmaops/operaciones_mid/internal/services"
	"github.com/dmaops/operaciones_mid/models"
)

// PersonalController expone el personal disponible y su documentación.
type PersonalController struct {
	rootcontrollers.BaseController
}

// @Summary Listar personal disponible
// @Description Lista el personal activo con nombre resuelto, filtro q y paginación.
// @Tags Personal
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetPersonal lista el personal disponible.
func (c *PersonalController) GetPersonal() {
	ctx := c.Ctx.Request.Context()
	q := strings.TrimSpace(c.GetString("q"))
	page, size := internalhelpers.ParsePageSize(c.GetString("page"), c.GetString("size"))

	if modoDemo(ctx) {
		items := filtrarPersonal(internalservices.FixturePersonal(), q)
		resp := internalhelpers.DemoOk(internaldto.PageDTO[models.Persona]{Items: items, Page: page, Size: size})
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Personal().ListPersonal(ctx, q, internalhelpers.OffsetDe(page, size), size)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(internaldto.PageDTO[models.Persona]{Items: data, Page: page, Size: size})
	c.writeJSON(resp.Status, resp)
}

// @Summary Personal con documentación evaluada
// @Description Junta personal disponible con sus documentos y evalúa cumplimiento.
// @Tags Personal
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetDocumentacionCompleta evalúa cumplimiento documental del personal.
// Con solo_cumplen=true retorna únicamente quienes cumplen.
func (c *PersonalController) GetDocumentacionCompleta() {
	ctx := c.Ctx.Request.Context()
	q := strings.TrimSpace(c.GetString("q"))
	soloCumplen := c.GetString("solo_cumplen") == "true"

	if modoDemo(ctx) {
		resp := internalhelpers.DemoOk(demoPersonalConDocumentacion(q, soloCumplen))
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Personal().PersonalConDocumentacion(ctx, q, soloCumplen)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// @Summary Documentos de una persona
// @Description Documentos con estado calculado y días restantes.
// @Tags Personal
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// GetDocumentos retorna los documentos anotados de una persona.
func (c *PersonalController) GetDocumentos() {
	ctx := c.Ctx.Request.Context()
	rut, err := internalhelpers.ParamTexto(c.Ctx, ":rut")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, err.Error())
		c.writeJSON(resp.Status, resp)
		return
	}

	if modoDemo(ctx) {
		ahora := time.Now()
		docs := docsDePersona(internalservices.FixtureDocumentos(ahora), rut)
		resp := internalhelpers.DemoOk(internalservices.AnotarDocumentos(docs, ahora))
		c.writeJSON(resp.Status, resp)
		return
	}

	data, err := internalservices.Personal().DocumentosPersona(ctx, rut)
	if err != nil {
		resp := internalhelpers.FailErr(err)
		c.writeJSON(resp.Status, resp)
		return
	}
	resp := internalhelpers.Ok(data)
	c.writeJSON(resp.Status, resp)
}

// --------------------- helpers locales ---------------------

func filtrarPersonal(personas []models.Persona, q string) []models.Persona {
	if q == "" {
		return personas
	}
	q = strings.ToLower(q)
	out := make([]models.Persona, 0, len(personas))
	for _, p := range personas {
		if strings.Contains(strings.ToLower(p.Nombre), q) || strings.Contains(p.Rut, q) {
			out = append(out, p)
		}
	}
	return out
}

func docsDePersona(docs []models.Documento, rut string) []models.Documento {
	out := make([]models.Documento, 0, len(docs))
	for _, d := range docs {
		if d.RutPersona == rut {
			out = append(out, d)
		}
	}
	return out
}

func demoPersonalConDocumentacion(q string, soloCumplen bool) []models.PersonaConDocumentacion {
	ahora := time.Now()
	personas := filtrarPersonal(internalservices.FixturePersonal(), q)
	docs := internalservices.FixtureDocumentos(ahora)

	out := make([]models.PersonaConDocumentacion, 0, len(personas))
	for _, p := range personas {
		eval := internalservices.EvaluarDocumentacion(p.Rut, docsDePersona(docs, p.Rut), ahora)
		if soloCumplen && !eval.Cumple {
			continue
		}
		out = append(out, models.PersonaConDocumentacion{
			Persona:    p,
			Evaluacion: eval,
		})
	}
	return out
}

func (c *PersonalController) writeJSON(status int, payload interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
