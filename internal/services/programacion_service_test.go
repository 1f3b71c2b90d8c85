package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roothelpers "github.com/dmaops/operaciones_mid/helpers"
	"github.com/dmaops/operaciones_mid/internal/dto"
	"github.com/dmaops/operaciones_mid/models"
)

func dtoBase() dto.ProgramacionCreateDTO {
	return dto.ProgramacionCreateDTO{
		Rut:            "16924504-5",
		CarteraId:      3,
		SemanaInicio:   "2026-03-11", // miércoles; debe normalizar al lunes 09
		Lunes:          true,
		Martes:         true,
		HorasEstimadas: 16,
	}
}

func TestCrear_NormalizaSemanaYCrea(t *testing.T) {
	var recibido models.Programacion
	mux := http.NewServeMux()
	mux.HandleFunc("/programacion", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		recibido.Id = 42
		_ = json.NewEncoder(w).Encode(recibido)
	})

	svc := NewProgramacionService(crudDePrueba(t, mux))
	res, err := svc.Crear(context.Background(), dtoBase())
	require.NoError(t, err)
	assert.False(t, res.Duplicada)
	assert.Empty(t, res.Advertencias)
	assert.Equal(t, int64(42), res.Programacion.Id)
	assert.Equal(t, "2026-03-09", recibido.SemanaInicio)
	assert.Equal(t, models.ProgramacionEstadoActiva, recibido.Estado)
}

func TestCrear_ConflictoEsDuplicadoBenigno(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/programacion", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ya existe", http.StatusConflict)
	})

	svc := NewProgramacionService(crudDePrueba(t, mux))
	res, err := svc.Crear(context.Background(), dtoBase())
	require.NoError(t, err)
	assert.True(t, res.Duplicada)
	// el payload intentado se devuelve con la semana ya normalizada
	assert.Equal(t, "2026-03-09", res.Programacion.SemanaInicio)
}

func TestCrear_SinDiasAdvierte(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/programacion", func(w http.ResponseWriter, r *http.Request) {
		var p models.Programacion
		_ = json.NewDecoder(r.Body).Decode(&p)
		_ = json.NewEncoder(w).Encode(p)
	})

	in := dtoBase()
	in.Lunes = false
	in.Martes = false

	svc := NewProgramacionService(crudDePrueba(t, mux))
	res, err := svc.Crear(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, res.Advertencias, 1)
	assert.Contains(t, res.Advertencias[0], "sin días")
}

func TestCrear_Validaciones(t *testing.T) {
	svc := NewProgramacionService(crudDePrueba(t, http.NewServeMux()))

	t.Run("nodo sin cliente", func(t *testing.T) {
		in := dtoBase()
		nodo := int64(9)
		in.NodoId = &nodo
		_, err := svc.Crear(context.Background(), in)
		require.Error(t, err)
		ve, ok := roothelpers.IsValidacionError(err)
		require.True(t, ok)
		assert.Contains(t, strings.Join(ve.Mensajes, " "), "nodo_id")
	})

	t.Run("semana ilegible", func(t *testing.T) {
		in := dtoBase()
		in.SemanaInicio = "11-03-2026"
		_, err := svc.Crear(context.Background(), in)
		require.Error(t, err)
		_, ok := roothelpers.IsValidacionError(err)
		assert.True(t, ok)
	})

	t.Run("rut requerido", func(t *testing.T) {
		in := dtoBase()
		in.Rut = ""
		_, err := svc.Crear(context.Background(), in)
		require.Error(t, err)
		_, ok := roothelpers.IsValidacionError(err)
		assert.True(t, ok)
	})
}

func TestCrearLote(t *testing.T) {
	t.Run("lote válido crea todos", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/programacion", func(w http.ResponseWriter, r *http.Request) {
			var p models.Programacion
			_ = json.NewDecoder(r.Body).Decode(&p)
			_ = json.NewEncoder(w).Encode(p)
		})

		otro := dtoBase()
		otro.Rut = "2-7"
		svc := NewProgramacionService(crudDePrueba(t, mux))
		res, err := svc.CrearLote(context.Background(), dto.ProgramacionLoteDTO{
			Items: []dto.ProgramacionCreateDTO{dtoBase(), otro},
		})
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("solape dentro del lote rechaza el lote entero", func(t *testing.T) {
		svc := NewProgramacionService(crudDePrueba(t, http.NewServeMux()))
		_, err := svc.CrearLote(context.Background(), dto.ProgramacionLoteDTO{
			Items: []dto.ProgramacionCreateDTO{dtoBase(), dtoBase()},
		})
		require.Error(t, err)
		ve, ok := roothelpers.IsValidacionError(err)
		require.True(t, ok)
		assert.Contains(t, strings.Join(ve.Mensajes, " "), "dos veces")
	})

	t.Run("lote vacío es inválido", func(t *testing.T) {
		svc := NewProgramacionService(crudDePrueba(t, http.NewServeMux()))
		_, err := svc.CrearLote(context.Background(), dto.ProgramacionLoteDTO{})
		require.Error(t, err)
	})

	t.Run("filas sin días exigen confirmación", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/programacion", func(w http.ResponseWriter, r *http.Request) {
			var p models.Programacion
			_ = json.NewDecoder(r.Body).Decode(&p)
			_ = json.NewEncoder(w).Encode(p)
		})

		vacia := dtoBase()
		vacia.Lunes = false
		vacia.Martes = false

		svc := NewProgramacionService(crudDePrueba(t, mux))
		_, err := svc.CrearLote(context.Background(), dto.ProgramacionLoteDTO{
			Items: []dto.ProgramacionCreateDTO{vacia},
		})
		require.Error(t, err)
		ve, ok := roothelpers.IsValidacionError(err)
		require.True(t, ok)
		assert.Contains(t, strings.Join(ve.Mensajes, " "), "confirmar=true")

		res, err := svc.CrearLote(context.Background(), dto.ProgramacionLoteDTO{
			Items:     []dto.ProgramacionCreateDTO{vacia},
			Confirmar: true,
		})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Contains(t, res[0].Advertencias[0], "sin días")
	})
}

func programacionAlmacenada() models.Programacion {
	return models.Programacion{
		Id: 42, Rut: "1-9", CarteraId: 3, SemanaInicio: "2026-03-09",
		Lunes: true, Miercoles: true, HorasEstimadas: 16,
		Estado: models.ProgramacionEstadoActiva,
	}
}

func servidorToggle(t *testing.T, almacenada models.Programacion) (*ProgramacionService, *models.Programacion) {
	t.Helper()
	var actualizada models.Programacion

	mux := http.NewServeMux()
	mux.HandleFunc("/programacion/42", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(almacenada)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&actualizada))
			_ = json.NewEncoder(w).Encode(actualizada)
		default:
			http.NotFound(w, r)
		}
	})

	return NewProgramacionService(crudDePrueba(t, mux)), &actualizada
}

func TestToggleDia(t *testing.T) {
	t.Run("apaga un día preservando el resto", func(t *testing.T) {
		svc, enviado := servidorToggle(t, programacionAlmacenada())
		res, err := svc.ToggleDia(context.Background(), 42, "lunes", false)
		require.NoError(t, err)
		assert.False(t, res.Lunes)
		assert.True(t, res.Miercoles)
		// el PUT viaja con el registro completo
		assert.Equal(t, "1-9", enviado.Rut)
		assert.Equal(t, "2026-03-09", enviado.SemanaInicio)
	})

	t.Run("enciende un día con acento tolerado", func(t *testing.T) {
		svc, _ := servidorToggle(t, programacionAlmacenada())
		res, err := svc.ToggleDia(context.Background(), 42, "sábado", false)
		require.NoError(t, err)
		assert.True(t, res.Sabado)
		assert.True(t, res.Lunes)
	})

	t.Run("quedar sin días exige confirmación", func(t *testing.T) {
		sola := programacionAlmacenada()
		sola.Miercoles = false // solo queda lunes

		svc, _ := servidorToggle(t, sola)
		_, err := svc.ToggleDia(context.Background(), 42, "lunes", false)
		require.Error(t, err)
		ve, ok := roothelpers.IsValidacionError(err)
		require.True(t, ok)
		assert.Contains(t, strings.Join(ve.Mensajes, " "), "confirmar=true")

		res, err := svc.ToggleDia(context.Background(), 42, "lunes", true)
		require.NoError(t, err)
		assert.Equal(t, 0, res.DiasActivos())
	})

	t.Run("día inválido", func(t *testing.T) {
		svc, _ := servidorToggle(t, programacionAlmacenada())
		_, err := svc.ToggleDia(context.Background(), 42, "feriado", false)
		require.Error(t, err)
		_, ok := roothelpers.IsValidacionError(err)
		assert.True(t, ok)
	})

	t.Run("doble volteo restaura el registro original", func(t *testing.T) {
		// servidor con estado: el segundo GET ve lo que guardó el primer PUT
		almacenada := programacionAlmacenada()
		mux := http.NewServeMux()
		mux.HandleFunc("/programacion/42", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = json.NewEncoder(w).Encode(almacenada)
			case http.MethodPut:
				require.NoError(t, json.NewDecoder(r.Body).Decode(&almacenada))
				_ = json.NewEncoder(w).Encode(almacenada)
			default:
				http.NotFound(w, r)
			}
		})
		svc := NewProgramacionService(crudDePrueba(t, mux))

		intermedio, err := svc.ToggleDia(context.Background(), 42, "martes", false)
		require.NoError(t, err)
		assert.True(t, intermedio.Martes)

		res, err := svc.ToggleDia(context.Background(), 42, "martes", false)
		require.NoError(t, err)
		assert.Equal(t, programacionAlmacenada(), *res)
		assert.Equal(t, programacionAlmacenada(), almacenada)
	})
}

func TestResumirProgramaciones(t *testing.T) {
	items := []models.Programacion{
		{Rut: "1-9", HorasEstimadas: 16, Lunes: true, Martes: true},
		{Rut: "2-7", HorasEstimadas: 8, Lunes: true},
		{Rut: "1-9", HorasEstimadas: 4, Domingo: true},
	}

	resumen := ResumirProgramaciones(items)
	assert.Equal(t, 3, resumen.TotalAsignaciones)
	assert.InDelta(t, 28.0, resumen.TotalHoras, 0.001)
	assert.Equal(t, 2, resumen.PersonasUnicas)
	assert.Equal(t, 2, resumen.PorDia["lunes"])
	assert.Equal(t, 1, resumen.PorDia["martes"])
	assert.Equal(t, 0, resumen.PorDia["viernes"])
	assert.Equal(t, 1, resumen.PorDia["domingo"])
}

func TestRangoOptimizado(t *testing.T) {
	t.Run("consulta el rango tal cual", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/programacion-optimizada", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			require.Equal(t, "3", q.Get("cartera_id"))
			require.Equal(t, "2026-03-09", q.Get("fecha_inicio"))
			require.Equal(t, "2026-03-22", q.Get("fecha_fin"))
			_ = json.NewEncoder(w).Encode([]models.Programacion{programacionAlmacenada()})
		})

		svc := NewProgramacionService(crudDePrueba(t, mux))
		items, err := svc.RangoOptimizado(context.Background(), 3, "2026-03-09", "2026-03-22")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(42), items[0].Id)
	})

	t.Run("rango invertido es inválido", func(t *testing.T) {
		svc := NewProgramacionService(crudDePrueba(t, http.NewServeMux()))
		_, err := svc.RangoOptimizado(context.Background(), 3, "2026-03-22", "2026-03-09")
		require.Error(t, err)
		ve, ok := roothelpers.IsValidacionError(err)
		require.True(t, ok)
		assert.Contains(t, strings.Join(ve.Mensajes, " "), "anterior")
	})

	t.Run("fechas ilegibles", func(t *testing.T) {
		svc := NewProgramacionService(crudDePrueba(t, http.NewServeMux()))
		_, err := svc.RangoOptimizado(context.Background(), 3, "09-03-2026", "2026-03-22")
		require.Error(t, err)
		_, ok := roothelpers.IsValidacionError(err)
		assert.True(t, ok)

		_, err = svc.RangoOptimizado(context.Background(), 3, "2026-03-09", "")
		require.Error(t, err)
		_, ok = roothelpers.IsValidacionError(err)
		assert.True(t, ok)
	})
}

func TestSemanaCartera_NormalizaAntesDeConsultar(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/programacion/cartera/3", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2026-03-09", r.URL.Query().Get("semana"))
		_ = json.NewEncoder(w).Encode([]models.Programacion{programacionAlmacenada()})
	})

	svc := NewProgramacionService(crudDePrueba(t, mux))
	items, err := svc.SemanaCartera(context.Background(), 3, "2026-03-13")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(42), items[0].Id)
}
