package routers

import (
	"github.com/dmaops/operaciones_mid/controllers/errorhandler"
	internalcontrollers "github.com/dmaops/operaciones_mid/internal/controllers"

	beego "github.com/beego/beego/v2/server/web"
)

func init() {
	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	beego.Router("/v1/salud/backend", &internalcontrollers.SaludController{}, "get:GetBackend")

	beego.Router("/v1/personal", &internalcontrollers.PersonalController{}, "get:GetPersonal")
	beego.Router("/v1/personal/documentacion-completa", &internalcontrollers.PersonalController{}, "get:GetDocumentacionCompleta")
	beego.Router("/v1/personal/:rut/documentos", &internalcontrollers.PersonalController{}, "get:GetDocumentos")

	beego.Router("/v1/carteras", &internalcontrollers.CatalogosController{}, "get:GetCarteras")
	beego.Router("/v1/carteras/:id/clientes", &internalcontrollers.CatalogosController{}, "get:GetClientes")
	beego.Router("/v1/clientes/:id/nodos", &internalcontrollers.CatalogosController{}, "get:GetNodos")

	beego.Router("/v1/dashboard/documentos", &internalcontrollers.DashboardController{}, "get:GetDocumentos")

	beego.Router("/v1/prerrequisitos/clientes", &internalcontrollers.PrerrequisitosController{}, "get:GetClientes")
	beego.Router("/v1/prerrequisitos/clientes/:id/match", &internalcontrollers.PrerrequisitosController{}, "get:GetMatch;post:PostMatch")

	beego.Router("/v1/programacion/cartera/:id", &internalcontrollers.ProgramacionController{}, "get:GetCartera")
	beego.Router("/v1/programacion/semana", &internalcontrollers.ProgramacionController{}, "get:GetSemana")
	beego.Router("/v1/programacion/optimizada", &internalcontrollers.ProgramacionController{}, "get:GetOptimizada")
	beego.Router("/v1/programacion/resumen", &internalcontrollers.ProgramacionController{}, "get:GetResumen")
	beego.Router("/v1/programacion", &internalcontrollers.ProgramacionController{}, "post:PostCrear")
	beego.Router("/v1/programacion/lote", &internalcontrollers.ProgramacionController{}, "post:PostLote")
	beego.Router("/v1/programacion/:id", &internalcontrollers.ProgramacionController{}, "put:PutActualizar;delete:DeleteEliminar")
	beego.Router("/v1/programacion/:id/dia/:dia/toggle", &internalcontrollers.ProgramacionController{}, "put:PutToggleDia")
}
