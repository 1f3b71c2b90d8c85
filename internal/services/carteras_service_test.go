package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCarteras(t *testing.T) {
	var llamadas int32
	mux := http.NewServeMux()
	mux.HandleFunc("/carteras", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&llamadas, 1)
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 2, "nombre": "Sur"},
			{"id": 1, "nombre": "Norte"},
			{"id": 3, "nombre": "Centro"},
		})
	})

	svc := NewCarterasService(crudDePrueba(t, mux))
	ctx := context.Background()

	t.Run("ordena por nombre", func(t *testing.T) {
		items, err := svc.ListCarteras(ctx, "", 1, 50)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Centro", items[0].Nombre)
		assert.Equal(t, "Norte", items[1].Nombre)
		assert.Equal(t, "Sur", items[2].Nombre)
	})

	t.Run("el catálogo se sirve desde cache", func(t *testing.T) {
		_, err := svc.ListCarteras(ctx, "", 1, 50)
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&llamadas))
	})

	t.Run("filtra por nombre sin distinguir mayúsculas", func(t *testing.T) {
		items, err := svc.ListCarteras(ctx, "nor", 1, 50)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(1), items[0].Id)
	})

	t.Run("pagina el resultado", func(t *testing.T) {
		items, err := svc.ListCarteras(ctx, "", 2, 2)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Sur", items[0].Nombre)
	})

	t.Run("invalidar cache fuerza recarga", func(t *testing.T) {
		svc.InvalidarCache()
		_, err := svc.ListCarteras(ctx, "", 1, 50)
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&llamadas))
	})
}

func TestListClientesYNodos(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/carteras/1/clientes", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 10, "nombre": "Cliente A"},
		})
	})
	mux.HandleFunc("/clientes/10/nodos", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 100, "nombre": "Faena Norte"},
			{"id": 101, "nombre": "Bodega Central"},
		})
	})

	svc := NewCarterasService(crudDePrueba(t, mux))
	ctx := context.Background()

	clientes, err := svc.ListClientes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	assert.Equal(t, int64(1), clientes[0].CarteraId)

	nodos, err := svc.ListNodos(ctx, 10)
	require.NoError(t, err)
	require.Len(t, nodos, 2)
	assert.Equal(t, int64(10), nodos[0].ClienteId)
}
