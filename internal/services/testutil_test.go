package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmaops/operaciones_mid/internal/clients"
	rootservices "github.com/dmaops/operaciones_mid/services"
)

// crudDePrueba levanta un backend falso y un cliente apuntando a él.
func crudDePrueba(t *testing.T, handler http.Handler) *clients.OperacionesCRUDClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return clients.NewOperacionesCRUD(rootservices.Config{
		OperacionesCRUDBaseURL: srv.URL,
		RequestTimeout:         2 * time.Second,
	})
}

// crudSinBackend construye un cliente sin base URL configurada.
func crudSinBackend() *clients.OperacionesCRUDClient {
	return clients.NewOperacionesCRUD(rootservices.Config{RequestTimeout: time.Second})
}
