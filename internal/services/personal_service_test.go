package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaops/operaciones_mid/models"
)

func TestListPersonal_ResuelveNombresHeterogeneos(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/personal-disponible", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"rut": "1-9", "nombre_completo": "Ana Rojas", "cargo": "supervisora"},
			{"rut": "2-7", "nombres": "Luis", "apellidos": "Pérez"},
			{"rut": "3-5"},
		})
	})

	svc := NewPersonalService(crudDePrueba(t, mux))
	personas, err := svc.ListPersonal(context.Background(), "", 0, 0)
	require.NoError(t, err)
	require.Len(t, personas, 3)
	assert.Equal(t, "Ana Rojas", personas[0].Nombre)
	assert.Equal(t, "Luis Pérez", personas[1].Nombre)
	assert.Equal(t, "Persona 3-5", personas[2].Nombre)
}

func TestPersonalConDocumentacion(t *testing.T) {
	ahora := time.Now()
	completa := func() []map[string]interface{} {
		out := make([]map[string]interface{}, 0, len(models.TiposDocumentoRequeridos))
		for i, tipo := range models.TiposDocumentoRequeridos {
			out = append(out, map[string]interface{}{
				"id":                i + 1,
				"rut_persona":       "1-9",
				"tipo_documento":    tipo,
				"fecha_vencimiento": ahora.AddDate(1, 0, 0).Format("2006-01-02"),
			})
		}
		return out
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/personal-disponible", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"rut": "1-9", "nombre": "Ana Rojas"},
			{"rut": "2-7", "nombre": "Luis Pérez"},
		})
	})
	mux.HandleFunc("/documentos/persona/1-9", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(completa())
	})
	mux.HandleFunc("/documentos/persona/2-7", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{})
	})

	svc := NewPersonalService(crudDePrueba(t, mux))

	t.Run("evalúa a todos", func(t *testing.T) {
		res, err := svc.PersonalConDocumentacion(context.Background(), "", false)
		require.NoError(t, err)
		require.Len(t, res, 2)
		porRut := map[string]models.PersonaConDocumentacion{}
		for _, item := range res {
			porRut[item.Rut] = item
		}
		assert.True(t, porRut["1-9"].Evaluacion.Cumple)
		assert.False(t, porRut["2-7"].Evaluacion.Cumple)
		assert.Equal(t, models.MotivoDocumentosFaltantes, porRut["2-7"].Evaluacion.Motivo)
	})

	t.Run("solo cumplen filtra", func(t *testing.T) {
		res, err := svc.PersonalConDocumentacion(context.Background(), "", true)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "1-9", res[0].Rut)
	})

	t.Run("una consulta fallida tumba el lote", func(t *testing.T) {
		roto := http.NewServeMux()
		roto.HandleFunc("/personal-disponible", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode([]map[string]interface{}{{"rut": "1-9", "nombre": "Ana"}})
		})
		roto.HandleFunc("/documentos/persona/1-9", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		})

		rotoSvc := NewPersonalService(crudDePrueba(t, roto))
		_, err := rotoSvc.PersonalConDocumentacion(context.Background(), "", false)
		require.Error(t, err)
	})
}
