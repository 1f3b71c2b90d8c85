package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmaops/operaciones_mid/internal/clients"
	"github.com/dmaops/operaciones_mid/models"
)

// CarterasService expone los catálogos de carteras, clientes y nodos.
type CarterasService struct {
	crud *clients.OperacionesCRUDClient

	cacheTTL time.Duration
	cache    struct {
		mu        sync.RWMutex
		expiresAt time.Time
		data      []models.Cartera
	}
}

func NewCarterasService(crud *clients.OperacionesCRUDClient) *CarterasService {
	return &CarterasService{crud: crud, cacheTTL: 30 * time.Minute}
}

// ListCarteras retorna las carteras activas con filtro por nombre y paginación.
// El catálogo cambia poco, así que se cachea en memoria.
func (s *CarterasService) ListCarteras(ctx context.Context, q string, page, size int) ([]models.Cartera, error) {
	all, err := s.carterasCatalogo(ctx)
	if err != nil {
		return nil, err
	}

	if t := strings.TrimSpace(q); t != "" {
		all = filtrarCarterasPorNombre(all, t)
	}
	ordenarCarterasPorNombre(all)
	return paginarCarteras(all, page, size), nil
}

// ListClientes retorna los clientes de una cartera.
func (s *CarterasService) ListClientes(ctx context.Context, carteraID int64) ([]models.Cliente, error) {
	return s.crud.ListClientesCartera(ctx, carteraID)
}

// ListNodos retorna los nodos (faenas / puntos de servicio) de un cliente.
func (s *CarterasService) ListNodos(ctx context.Context, clienteID int64) ([]models.Nodo, error) {
	return s.crud.ListNodosCliente(ctx, clienteID)
}

// InvalidarCache fuerza la recarga del catálogo en la siguiente consulta.
func (s *CarterasService) InvalidarCache() {
	s.cache.mu.Lock()
	s.cache.expiresAt = time.Time{}
	s.cache.data = nil
	s.cache.mu.Unlock()
}

func (s *CarterasService) carterasCatalogo(ctx context.Context) ([]models.Cartera, error) {
	s.cache.mu.RLock()
	if time.Now().Before(s.cache.expiresAt) && s.cache.data != nil {
		cl := make([]models.Cartera, len(s.cache.data))
		copy(cl, s.cache.data)
		s.cache.mu.RUnlock()
		return cl, nil
	}
	s.cache.mu.RUnlock()

	all, err := s.crud.ListCarteras(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.mu.Lock()
	s.cache.data = all
	s.cache.expiresAt = time.Now().Add(s.cacheTTL)
	s.cache.mu.Unlock()

	cl := make([]models.Cartera, len(all))
	copy(cl, all)
	return cl, nil
}

func filtrarCarterasPorNombre(xs []models.Cartera, q string) []models.Cartera {
	q = strings.ToLower(q)
	out := make([]models.Cartera, 0, len(xs))
	for _, it := range xs {
		if strings.Contains(strings.ToLower(it.Nombre), q) {
			out = append(out, it)
		}
	}
	return out
}

func ordenarCarterasPorNombre(xs []models.Cartera) {
	sort.Slice(xs, func(i, j int) bool {
		return strings.Compare(xs[i].Nombre, xs[j].Nombre) < 0
	})
}

func paginarCarteras(xs []models.Cartera, page, size int) []models.Cartera {
	if len(xs) == 0 {
		return xs
	}
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 500 {
		size = 50
	}
	from := (page - 1) * size
	if from >= len(xs) {
		return []models.Cartera{}
	}
	to := from + size
	if to > len(xs) {
		to = len(xs)
	}
	return xs[from:to]
}
