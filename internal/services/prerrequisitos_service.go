package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmaops/operaciones_mid/helpers"
	"github.com/dmaops/operaciones_mid/internal/clients"
	"github.com/dmaops/operaciones_mid/models"
)

// PrerrequisitosService compara los tipos de documento que exige un cliente
// contra los documentos reales de las personas.
type PrerrequisitosService struct {
	crud *clients.OperacionesCRUDClient
}

// NewPrerrequisitosService construye el servicio sobre un cliente CRUD explícito.
func NewPrerrequisitosService(crud *clients.OperacionesCRUDClient) *PrerrequisitosService {
	return &PrerrequisitosService{crud: crud}
}

// ListPrerrequisitos retorna el mapeo completo de prerrequisitos por cliente.
func (s *PrerrequisitosService) ListPrerrequisitos(ctx context.Context) ([]models.PrerrequisitosCliente, error) {
	return s.crud.GetPrerrequisitosClientes(ctx)
}

// RequisitosCliente retorna los tipos requeridos por un cliente puntual. Un
// cliente sin entrada en el mapeo no exige nada.
func (s *PrerrequisitosService) RequisitosCliente(ctx context.Context, clienteID int64) ([]string, error) {
	todos, err := s.crud.GetPrerrequisitosClientes(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range todos {
		if entry.ClienteId == clienteID {
			return entry.TiposRequeridos, nil
		}
	}
	return []string{}, nil
}

// MatchCliente resuelve el match de prerrequisitos para un rut. La vía primaria
// es el endpoint de match del backend; si ese endpoint no está desplegado (404)
// se calcula localmente con los requisitos del cliente y los documentos de la
// persona consultados por separado. Cualquier otro error HTTP se propaga sin
// tocar.
func (s *PrerrequisitosService) MatchCliente(ctx context.Context, clienteID int64, rut string) (*models.ResultadoMatch, error) {
	rut = strings.TrimSpace(rut)
	if rut == "" {
		return nil, helpers.NewValidacionError("rut requerido")
	}

	result, err := s.crud.MatchPrerrequisitos(ctx, clienteID, rut)
	if err == nil {
		return result, nil
	}
	if !helpers.IsHTTPError(err, http.StatusNotFound) {
		return nil, err
	}

	return s.matchLocal(ctx, clienteID, rut)
}

// MatchClienteBatch resuelve el match para un lote de ruts. Si el endpoint por
// lote no existe (404) se degrada a llamadas secuenciales por rut; el resultado
// debe ser equivalente al del lote.
func (s *PrerrequisitosService) MatchClienteBatch(ctx context.Context, clienteID int64, ruts []string) ([]models.ResultadoMatch, error) {
	limpios := make([]string, 0, len(ruts))
	for _, rut := range ruts {
		if trimmed := strings.TrimSpace(rut); trimmed != "" {
			limpios = append(limpios, trimmed)
		}
	}
	if len(limpios) == 0 {
		return nil, helpers.NewValidacionError("se requiere al menos un rut")
	}

	result, err := s.crud.MatchPrerrequisitosBatch(ctx, clienteID, limpios)
	if err == nil {
		return result, nil
	}
	if !helpers.IsHTTPError(err, http.StatusNotFound) {
		return nil, err
	}

	out := make([]models.ResultadoMatch, 0, len(limpios))
	for _, rut := range limpios {
		match, err := s.MatchCliente(ctx, clienteID, rut)
		if err != nil {
			return nil, err
		}
		out = append(out, *match)
	}
	return out, nil
}

func (s *PrerrequisitosService) matchLocal(ctx context.Context, clienteID int64, rut string) (*models.ResultadoMatch, error) {
	requeridos, err := s.RequisitosCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	docs, err := s.crud.GetDocumentosPersona(ctx, rut)
	if err != nil {
		return nil, err
	}
	result := MatchLocal(rut, requeridos, docs)
	return &result, nil
}

// MatchLocal hace la resta de conjuntos requeridos - presentes. Pura; el orden
// de faltantes respeta el orden de los requisitos del cliente.
func MatchLocal(rut string, requeridos []string, docs []models.Documento) models.ResultadoMatch {
	presentes := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		if doc.RutPersona == rut || doc.RutPersona == "" {
			presentes[doc.TipoDocumento] = struct{}{}
		}
	}

	faltantes := make([]string, 0)
	provistos := 0
	for _, tipo := range requeridos {
		if _, ok := presentes[tipo]; ok {
			provistos++
			continue
		}
		faltantes = append(faltantes, tipo)
	}

	return models.ResultadoMatch{
		Rut:           rut,
		Cumple:        len(faltantes) == 0,
		RequiredCount: len(requeridos),
		ProvidedCount: provistos,
		Faltantes:     faltantes,
	}
}
