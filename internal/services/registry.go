package services

import (
	"sync"

	"github.com/dmaops/operaciones_mid/internal/clients"
)

// Instancias compartidas de los servicios, construidas sobre el cliente CRUD único.
var (
	registryOnce sync.Once

	personal       *PersonalService
	programacion   *ProgramacionService
	prerrequisitos *PrerrequisitosService
	dashboard      *DashboardService
	carteras       *CarterasService
)

func initRegistry() {
	registryOnce.Do(func() {
		crud := clients.OperacionesCRUD()
		personal = NewPersonalService(crud)
		programacion = NewProgramacionService(crud)
		prerrequisitos = NewPrerrequisitosService(crud)
		dashboard = NewDashboardService(crud)
		carteras = NewCarterasService(crud)
	})
}

func Personal() *PersonalService {
	initRegistry()
	return personal
}

func Programacion() *ProgramacionService {
	initRegistry()
	return programacion
}

func Prerrequisitos() *PrerrequisitosService {
	initRegistry()
	return prerrequisitos
}

func Dashboard() *DashboardService {
	initRegistry()
	return dashboard
}

func Carteras() *CarterasService {
	initRegistry()
	return carteras
}
