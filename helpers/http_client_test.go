package helpers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedClient_EsUnico(t *testing.T) {
	assert.Same(t, sharedClient(), sharedClient())
}

func TestDoJSONWithHeaders(t *testing.T) {
	t.Run("decodifica y propaga headers", func(t *testing.T) {
		var correlacion, autorizacion string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlacion = r.Header.Get("X-Correlation-Id")
			autorizacion = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(map[string]string{"nombre": "cartera norte"})
		}))
		defer srv.Close()

		var out map[string]string
		err := DoJSONWithHeaders(context.Background(), "GET", srv.URL,
			map[string]string{"Authorization": "Bearer abc"}, nil, &out, 2*time.Second)
		require.NoError(t, err)
		assert.Equal(t, "cartera norte", out["nombre"])
		assert.Equal(t, "Bearer abc", autorizacion)
		assert.NotEmpty(t, correlacion)
	})

	t.Run("fuera de 2xx es HTTPError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no existe", http.StatusNotFound)
		}))
		defer srv.Close()

		err := DoJSONWithHeaders(context.Background(), "GET", srv.URL, nil, nil, nil, 2*time.Second)
		require.Error(t, err)
		assert.True(t, IsHTTPError(err, http.StatusNotFound))
	})

	t.Run("el timeout corta la llamada", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		inicio := time.Now()
		err := DoJSONWithHeaders(context.Background(), "GET", srv.URL, nil, nil, nil, 50*time.Millisecond)
		require.Error(t, err)
		assert.Less(t, time.Since(inicio), time.Second)
	})
}
