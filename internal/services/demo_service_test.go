package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendDisponible_CacheaPorTTL(t *testing.T) {
	var llamadas int32
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&llamadas, 1)
		w.WriteHeader(http.StatusOK)
	})

	svc := NewDemoService(crudDePrueba(t, mux), time.Minute)
	ctx := context.Background()

	assert.True(t, svc.BackendDisponible(ctx))
	assert.True(t, svc.BackendDisponible(ctx))
	assert.True(t, svc.BackendDisponible(ctx))
	assert.Equal(t, int32(1), atomic.LoadInt32(&llamadas))
}

func TestBackendDisponible_ExpiraElCache(t *testing.T) {
	var llamadas int32
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&llamadas, 1)
		w.WriteHeader(http.StatusOK)
	})

	svc := NewDemoService(crudDePrueba(t, mux), 10*time.Millisecond)
	ctx := context.Background()

	assert.True(t, svc.BackendDisponible(ctx))
	time.Sleep(20 * time.Millisecond)
	assert.True(t, svc.BackendDisponible(ctx))
	assert.Equal(t, int32(2), atomic.LoadInt32(&llamadas))
}

func TestForzarChequeo_IgnoraElCache(t *testing.T) {
	var sano atomic.Bool
	sano.Store(true)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if sano.Load() {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Error(w, "caído", http.StatusServiceUnavailable)
	})

	svc := NewDemoService(crudDePrueba(t, mux), time.Hour)
	ctx := context.Background()

	require.True(t, svc.BackendDisponible(ctx))

	sano.Store(false)
	// el cache aún dice disponible
	assert.True(t, svc.BackendDisponible(ctx))
	// el chequeo forzado ve la caída y refresca el cache
	assert.False(t, svc.ForzarChequeo(ctx))
	assert.False(t, svc.BackendDisponible(ctx))

	// la marca del chequeo se reporta aunque el backend esté caído
	cuando, ok := svc.UltimoChequeo()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now(), cuando, time.Second)
}

func TestUltimoChequeo_SinChequeosPrevios(t *testing.T) {
	svc := NewDemoService(crudSinBackend(), time.Minute)
	_, ok := svc.UltimoChequeo()
	assert.False(t, ok)
}

func TestBackendDisponible_SinBaseURL(t *testing.T) {
	svc := NewDemoService(crudSinBackend(), time.Minute)
	assert.False(t, svc.BackendDisponible(context.Background()))
}
