package controllers

import (
	"context"

	internalservices "github.com/dmaops/operaciones_mid/internal/services"
	rootservices "github.com/dmaops/operaciones_mid/services"
)

// modoDemo indica si las lecturas deben servirse desde fixtures locales:
// el demo está habilitado y el backend CRUD no responde.
func modoDemo(ctx context.Context) bool {
	if !rootservices.GetConfig().DemoHabilitado {
		return false
	}
	return !internalservices.Demo().BackendDisponible(ctx)
}
