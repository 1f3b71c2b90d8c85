package services

import (
	"context"
	"time"

	"github.com/dmaops/operaciones_mid/internal/clients"
	"github.com/dmaops/operaciones_mid/models"

	"golang.org/x/sync/errgroup"
)

// tope de consultas de documentos en vuelo durante el join personal+documentación
const maxConsultasDocumentos = 8

// PersonalService orquesta las consultas de personal y su documentación.
type PersonalService struct {
	crud *clients.OperacionesCRUDClient
}

// NewPersonalService construye el servicio sobre un cliente CRUD explícito.
func NewPersonalService(crud *clients.OperacionesCRUDClient) *PersonalService {
	return &PersonalService{crud: crud}
}

// ListPersonal lista el personal disponible con búsqueda y paginación simples.
func (s *PersonalService) ListPersonal(ctx context.Context, q string, offset, limit int) ([]models.Persona, error) {
	return s.crud.ListPersonalDisponible(ctx, q, nil, offset, limit)
}

// DocumentosPersona retorna los documentos de una persona con el estado de
// vencimiento recalculado al momento de la consulta.
func (s *PersonalService) DocumentosPersona(ctx context.Context, rut string) ([]models.Documento, error) {
	docs, err := s.crud.GetDocumentosPersona(ctx, rut)
	if err != nil {
		return nil, err
	}
	return AnotarDocumentos(docs, time.Now()), nil
}

// PersonalConDocumentacion une el personal disponible con su evaluación
// documental. Las consultas de documentos por persona se hacen en paralelo con
// un tope de concurrencia; si alguna falla, falla la operación completa.
// Con soloCumplen=true se filtran las personas no habilitadas.
func (s *PersonalService) PersonalConDocumentacion(ctx context.Context, q string, soloCumplen bool) ([]models.PersonaConDocumentacion, error) {
	personas, err := s.crud.ListPersonalDisponible(ctx, q, nil, 0, 0)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	evaluaciones := make([]models.EvaluacionDocumentacion, len(personas))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConsultasDocumentos)
	for i := range personas {
		i := i
		g.Go(func() error {
			docs, err := s.crud.GetDocumentosPersona(gctx, personas[i].Rut)
			if err != nil {
				return err
			}
			evaluaciones[i] = EvaluarDocumentacion(personas[i].Rut, docs, ahora)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]models.PersonaConDocumentacion, 0, len(personas))
	for i, persona := range personas {
		if soloCumplen && !evaluaciones[i].Cumple {
			continue
		}
		result = append(result, models.PersonaConDocumentacion{
			Persona:    persona,
			Evaluacion: evaluaciones[i],
		})
	}
	return result, nil
}
