package services

import (
	"time"

	"github.com/dmaops/operaciones_mid/models"
)

// Fixtures estáticas servidas en modo demo. Las fechas de vencimiento se generan
// relativas a "ahora" para que la clasificación siga siendo representativa sin
// importar cuándo se levante el servicio.

// FixturePersonal retorna el personal de demostración.
func FixturePersonal() []models.Persona {
	return []models.Persona{
		{Rut: "16924504-5", Nombre: "María Contreras", Cargo: "supervisora", ZonaGeografica: "norte", Activo: true},
		{Rut: "12345678-9", Nombre: "Pedro Soto", Cargo: "operador", ZonaGeografica: "centro", Activo: true},
		{Rut: "9876543-2", Nombre: "Ana Riquelme", Cargo: "operadora", ZonaGeografica: "sur", Activo: true},
		{Rut: "11111111-1", Nombre: "Jorge Fuentes", Cargo: "conductor", ZonaGeografica: "centro", Activo: false},
	}
}

// FixtureDocumentos retorna documentos de demostración con vencimientos
// relativos a ahora.
func FixtureDocumentos(ahora time.Time) []models.Documento {
	enDias := func(n int) *time.Time {
		t := ahora.AddDate(0, 0, n)
		return &t
	}
	return []models.Documento{
		{Id: 1, RutPersona: "16924504-5", TipoDocumento: "certificado_curso", NombreDocumento: "Curso de altura", FechaVencimiento: enDias(120)},
		{Id: 2, RutPersona: "16924504-5", TipoDocumento: "certificado_medico", FechaVencimiento: enDias(45)},
		{Id: 3, RutPersona: "16924504-5", TipoDocumento: "licencia_conducir", FechaVencimiento: enDias(200)},
		{Id: 4, RutPersona: "16924504-5", TipoDocumento: "certificado_seguridad", FechaVencimiento: enDias(90)},
		{Id: 5, RutPersona: "12345678-9", TipoDocumento: "licencia_conducir"},
		{Id: 6, RutPersona: "12345678-9", TipoDocumento: "certificado_medico", FechaVencimiento: enDias(-10)},
		{Id: 7, RutPersona: "9876543-2", TipoDocumento: "certificado_curso", NombreDocumento: "Diploma prevención", FechaVencimiento: enDias(15)},
	}
}

// FixtureCarteras retorna la jerarquía de demostración.
func FixtureCarteras() []models.Cartera {
	return []models.Cartera{
		{Id: 1, Nombre: "Cartera Minería"},
		{Id: 2, Nombre: "Cartera Retail"},
	}
}

func FixtureClientes(carteraID int64) []models.Cliente {
	todos := []models.Cliente{
		{Id: 10, CarteraId: 1, Nombre: "Minera del Norte"},
		{Id: 11, CarteraId: 1, Nombre: "Minera Austral"},
		{Id: 20, CarteraId: 2, Nombre: "Supermercados Unidos"},
	}
	result := make([]models.Cliente, 0, len(todos))
	for _, cliente := range todos {
		if carteraID == 0 || cliente.CarteraId == carteraID {
			result = append(result, cliente)
		}
	}
	return result
}

func FixtureNodos(clienteID int64) []models.Nodo {
	todos := []models.Nodo{
		{Id: 100, ClienteId: 10, Nombre: "Faena Tocopilla"},
		{Id: 101, ClienteId: 10, Nombre: "Faena Calama"},
		{Id: 200, ClienteId: 20, Nombre: "Sucursal Maipú"},
	}
	result := make([]models.Nodo, 0, len(todos))
	for _, nodo := range todos {
		if clienteID == 0 || nodo.ClienteId == clienteID {
			result = append(result, nodo)
		}
	}
	return result
}

// FixtureProgramacion retorna la semana de demostración de la cartera 1,
// anclada al lunes de la semana de ahora.
func FixtureProgramacion(ahora time.Time) []models.Programacion {
	semana := models.LunesDeSemana(ahora).Format(models.FormatoSemana)
	clienteID := int64(10)
	return []models.Programacion{
		{
			Id: 1000, Rut: "16924504-5", CarteraId: 1, ClienteId: &clienteID,
			SemanaInicio: semana, Lunes: true, Martes: true, Miercoles: true,
			HorasEstimadas: 27, Estado: models.ProgramacionEstadoActiva,
		},
		{
			Id: 1001, Rut: "9876543-2", CarteraId: 1,
			SemanaInicio: semana, Jueves: true, Viernes: true,
			HorasEstimadas: 18, Estado: models.ProgramacionEstadoActiva,
		},
	}
}
