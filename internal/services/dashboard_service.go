package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmaops/operaciones_mid/internal/clients"
	"github.com/dmaops/operaciones_mid/models"
)

// DashboardService computa los contadores globales de documentación que pinta el
// home del dashboard.
type DashboardService struct {
	crud *clients.OperacionesCRUDClient
}

// NewDashboardService construye el servicio sobre un cliente CRUD explícito.
func NewDashboardService(crud *clients.OperacionesCRUDClient) *DashboardService {
	return &DashboardService{crud: crud}
}

// ResumenDocumentos une los cortes de vencidos y por-vencer del backend,
// deduplica por id y particiona por el estado recalculado ahora. Los dos cortes
// pueden traer el mismo documento si la frontera de 30 días se movió entre una
// consulta y otra, por eso el dedupe es por identidad y no por contenido.
func (s *DashboardService) ResumenDocumentos(ctx context.Context) (*models.ResumenDocumentos, error) {
	vencidos, err := s.crud.ListDocumentosVencidos(ctx)
	if err != nil {
		return nil, err
	}
	porVencer, err := s.crud.ListDocumentosPorVencer(ctx)
	if err != nil {
		return nil, err
	}

	docs := DeduplicarPorId(append(vencidos, porVencer...))
	resumen := ResumirDocumentos(docs, time.Now())
	return &resumen, nil
}

// DeduplicarPorId conserva la primera aparición de cada id de documento.
func DeduplicarPorId(docs []models.Documento) []models.Documento {
	vistos := make(map[int64]struct{}, len(docs))
	result := make([]models.Documento, 0, len(docs))
	for _, doc := range docs {
		if _, ok := vistos[doc.Id]; ok {
			continue
		}
		vistos[doc.Id] = struct{}{}
		result = append(result, doc)
	}
	return result
}

// ResumirDocumentos particiona el pool por estado calculado y aplica la
// heurística de cursos. Pura sobre docs + ahora.
func ResumirDocumentos(docs []models.Documento, ahora time.Time) models.ResumenDocumentos {
	resumen := models.ResumenDocumentos{Total: len(docs)}
	for _, doc := range docs {
		estado, _ := ClasificarVencimiento(doc.FechaVencimiento, ahora)
		switch estado {
		case models.EstadoVigente:
			resumen.Vigentes++
		case models.EstadoVencido:
			resumen.Vencidos++
		case models.EstadoPorVencer:
			resumen.PorVencer++
		case models.EstadoSinFecha:
			resumen.SinFecha++
		}
		if EsDocumentoCurso(doc) {
			resumen.Cursos++
		}
	}
	return resumen
}

// EsDocumentoCurso aplica la heurística de cursos: el tipo o nombre contiene
// "curso", "certificado" o "diploma". Sustituye un endpoint dedicado de cursos
// que el backend no tiene.
func EsDocumentoCurso(doc models.Documento) bool {
	tipo := strings.ToLower(doc.TipoDocumento)
	nombre := strings.ToLower(doc.NombreDocumento)
	for _, marca := range []string{"curso", "certificado", "diploma"} {
		if strings.Contains(tipo, marca) || strings.Contains(nombre, marca) {
			return true
		}
	}
	return false
}
