package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmaops/operaciones_mid/internal/clients"
	rootservices "github.com/dmaops/operaciones_mid/services"

	"github.com/beego/beego/v2/core/logs"
)

// DemoService decide si el MID debe servir fixtures de demostración porque el
// backend CRUD no responde. El chequeo de salud se cachea con TTL para no
// golpear al backend en cada request; el estado vive en la instancia del
// servicio, no en un global.
type DemoService struct {
	crud *clients.OperacionesCRUDClient
	ttl  time.Duration

	mu          sync.Mutex
	lastChecked time.Time
	cachedOK    bool
}

var (
	demoSvc  *DemoService
	demoOnce sync.Once
)

// Demo retorna la instancia compartida construida desde la configuración.
func Demo() *DemoService {
	demoOnce.Do(func() {
		cfg := rootservices.GetConfig()
		demoSvc = NewDemoService(clients.OperacionesCRUD(), cfg.SaludCacheTTL)
	})
	return demoSvc
}

// NewDemoService construye el servicio con TTL explícito. Útil en pruebas.
func NewDemoService(crud *clients.OperacionesCRUDClient, ttl time.Duration) *DemoService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &DemoService{crud: crud, ttl: ttl}
}

// BackendDisponible responde desde el caché mientras no venza el TTL.
func (s *DemoService) BackendDisponible(ctx context.Context) bool {
	s.mu.Lock()
	if !s.lastChecked.IsZero() && time.Since(s.lastChecked) < s.ttl {
		ok := s.cachedOK
		s.mu.Unlock()
		return ok
	}
	s.mu.Unlock()
	return s.ForzarChequeo(ctx)
}

// ForzarChequeo consulta la salud del backend saltándose el caché y lo refresca.
func (s *DemoService) ForzarChequeo(ctx context.Context) bool {
	err := s.crud.Salud(ctx)
	ok := err == nil
	if !ok {
		logs.Warn("backend de operaciones no disponible:", err)
	}

	s.mu.Lock()
	s.lastChecked = time.Now()
	s.cachedOK = ok
	s.mu.Unlock()
	return ok
}

// UltimoChequeo expone la marca de tiempo del último chequeo para el endpoint
// de salud. El segundo retorno indica si ya ocurrió algún chequeo, no su
// resultado: la marca se reporta también cuando el backend está caído.
func (s *DemoService) UltimoChequeo() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastChecked, !s.lastChecked.IsZero()
}
