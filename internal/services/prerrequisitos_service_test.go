package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roothelpers "github.com/dmaops/operaciones_mid/helpers"
	"github.com/dmaops/operaciones_mid/models"
)

func TestMatchLocal(t *testing.T) {
	requeridos := []string{"licencia_conducir", "certificado_medico"}

	t.Run("cumple cuando están todos los tipos", func(t *testing.T) {
		docs := []models.Documento{
			{RutPersona: "1-9", TipoDocumento: "licencia_conducir"},
			{RutPersona: "1-9", TipoDocumento: "certificado_medico"},
		}
		res := MatchLocal("1-9", requeridos, docs)
		assert.True(t, res.Cumple)
		assert.Equal(t, 2, res.RequiredCount)
		assert.Equal(t, 2, res.ProvidedCount)
		assert.Empty(t, res.Faltantes)
	})

	t.Run("faltantes en el orden de los requisitos", func(t *testing.T) {
		res := MatchLocal("1-9", requeridos, nil)
		assert.False(t, res.Cumple)
		assert.Equal(t, 0, res.ProvidedCount)
		assert.Equal(t, []string{"licencia_conducir", "certificado_medico"}, res.Faltantes)
	})

	t.Run("cliente sin requisitos siempre cumple", func(t *testing.T) {
		res := MatchLocal("1-9", nil, nil)
		assert.True(t, res.Cumple)
		assert.Equal(t, 0, res.RequiredCount)
	})

	t.Run("documentos de otra persona no proveen tipos", func(t *testing.T) {
		docs := []models.Documento{{RutPersona: "2-7", TipoDocumento: "licencia_conducir"}}
		res := MatchLocal("1-9", requeridos, docs)
		assert.False(t, res.Cumple)
		assert.Equal(t, 0, res.ProvidedCount)
	})
}

func TestMatchCliente_EndpointPrimario(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/prerequisitos/clientes/7/match", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1-9", r.URL.Query().Get("rut"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"rut":            "1-9",
			"required_count": 2,
			"provided_count": 2,
			"faltantes":      []string{},
		})
	})

	svc := NewPrerrequisitosService(crudDePrueba(t, mux))
	res, err := svc.MatchCliente(context.Background(), 7, "1-9")
	require.NoError(t, err)
	assert.True(t, res.Cumple)
	assert.Equal(t, 2, res.ProvidedCount)
}

func TestMatchCliente_FallbackLocalCon404(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/prerequisitos/clientes/7/match", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/prerequisitos/clientes", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"cliente_id": 7, "tipos_requeridos": []string{"licencia_conducir"}},
		})
	})
	mux.HandleFunc("/documentos/persona/16924504-5", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 1, "rut_persona": "16924504-5", "tipo_documento": "licencia_conducir"},
		})
	})

	svc := NewPrerrequisitosService(crudDePrueba(t, mux))
	res, err := svc.MatchCliente(context.Background(), 7, "16924504-5")
	require.NoError(t, err)
	assert.True(t, res.Cumple)
	assert.Equal(t, 1, res.RequiredCount)
	assert.Equal(t, 1, res.ProvidedCount)
}

func TestMatchCliente_OtrosErroresSePropagan(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/prerequisitos/clientes/7/match", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "prohibido", http.StatusForbidden)
	})

	svc := NewPrerrequisitosService(crudDePrueba(t, mux))
	_, err := svc.MatchCliente(context.Background(), 7, "1-9")
	require.Error(t, err)
	assert.True(t, roothelpers.IsHTTPError(err, http.StatusForbidden))
}

func TestMatchCliente_RutVacio(t *testing.T) {
	svc := NewPrerrequisitosService(crudDePrueba(t, http.NewServeMux()))
	_, err := svc.MatchCliente(context.Background(), 7, "  ")
	require.Error(t, err)
	_, ok := roothelpers.IsValidacionError(err)
	assert.True(t, ok)
}

func TestMatchClienteBatch_DegradaASecuencial(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/prerequisitos/clientes/7/match", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			http.NotFound(w, r)
			return
		}
		rut := r.URL.Query().Get("rut")
		faltantes := []string{}
		if rut == "2-7" {
			faltantes = []string{"certificado_medico"}
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"rut":            rut,
			"required_count": 1,
			"provided_count": 1 - len(faltantes),
			"faltantes":      faltantes,
		})
	})

	svc := NewPrerrequisitosService(crudDePrueba(t, mux))
	res, err := svc.MatchClienteBatch(context.Background(), 7, []string{"1-9", "2-7"})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.True(t, res[0].Cumple)
	assert.False(t, res[1].Cumple)
	assert.Equal(t, []string{"certificado_medico"}, res[1].Faltantes)
}

func TestMatchClienteBatch_SinRuts(t *testing.T) {
	svc := NewPrerrequisitosService(crudDePrueba(t, http.NewServeMux()))
	_, err := svc.MatchClienteBatch(context.Background(), 7, []string{" ", ""})
	require.Error(t, err)
	_, ok := roothelpers.IsValidacionError(err)
	assert.True(t, ok)
}
