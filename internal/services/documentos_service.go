package services

import (
	"math"
	"time"

	"github.com/dmaops/operaciones_mid/models"
)

// ClasificarVencimiento clasifica una fecha de vencimiento contra "ahora".
// Retorna el estado calculado y los días restantes (nil cuando no hay fecha).
// La clasificación no se almacena nunca: "ahora" avanza y el estado con él.
//
// Reglas: sin fecha -> sin_fecha; fecha anterior a ahora -> vencido; entre ahora
// y ahora+30d (ambos extremos inclusive) -> por_vencer; después -> vigente.
func ClasificarVencimiento(vencimiento *time.Time, ahora time.Time) (string, *int) {
	if vencimiento == nil {
		return models.EstadoSinFecha, nil
	}
	dias := diasRestantes(*vencimiento, ahora)
	if vencimiento.Before(ahora) {
		return models.EstadoVencido, &dias
	}
	if dias <= models.DiasAlertaVencimiento {
		return models.EstadoPorVencer, &dias
	}
	return models.EstadoVigente, &dias
}

func diasRestantes(vencimiento, ahora time.Time) int {
	return int(math.Ceil(vencimiento.Sub(ahora).Hours() / 24))
}

// AnotarDocumentos retorna una copia de los documentos con estado_calculado y
// dias_restantes poblados contra "ahora".
func AnotarDocumentos(docs []models.Documento, ahora time.Time) []models.Documento {
	result := make([]models.Documento, 0, len(docs))
	for _, doc := range docs {
		estado, dias := ClasificarVencimiento(doc.FechaVencimiento, ahora)
		doc.EstadoCalculado = estado
		doc.DiasRestantes = dias
		result = append(result, doc)
	}
	return result
}

// EvaluarDocumentacion decide si una persona está habilitada para programación a
// partir del corpus completo de documentos. Es una función pura sobre sus
// entradas más "ahora". Las reglas se evalúan en orden estricto:
//
//  1. falta algún tipo requerido            -> documentos_faltantes
//  2. algún documento propio está vencido   -> documentos_vencidos
//  3. algún documento propio está por vencer -> documentos_por_vencer
//  4. en otro caso                          -> cumple
//
// Una persona sin documentos cae siempre en la regla 1.
func EvaluarDocumentacion(rut string, docs []models.Documento, ahora time.Time) models.EvaluacionDocumentacion {
	propios := make([]models.Documento, 0)
	for _, doc := range docs {
		if doc.RutPersona == rut {
			propios = append(propios, doc)
		}
	}
	propios = AnotarDocumentos(propios, ahora)

	eval := models.EvaluacionDocumentacion{Rut: rut, Detalle: propios}

	tiposPresentes := make(map[string]struct{}, len(propios))
	for _, doc := range propios {
		tiposPresentes[doc.TipoDocumento] = struct{}{}
	}
	faltantes := make([]string, 0)
	for _, tipo := range models.TiposDocumentoRequeridos {
		if _, ok := tiposPresentes[tipo]; !ok {
			faltantes = append(faltantes, tipo)
		}
	}
	if len(faltantes) > 0 {
		eval.Motivo = models.MotivoDocumentosFaltantes
		eval.Faltantes = faltantes
		return eval
	}

	if filtrarPorEstado(propios, models.EstadoVencido, &eval) {
		eval.Motivo = models.MotivoDocumentosVencidos
		return eval
	}
	if filtrarPorEstado(propios, models.EstadoPorVencer, &eval) {
		eval.Motivo = models.MotivoDocumentosPorVencer
		return eval
	}

	eval.Cumple = true
	return eval
}

// filtrarPorEstado deja en Detalle solo los documentos ofensores cuando los hay.
func filtrarPorEstado(docs []models.Documento, estado string, eval *models.EvaluacionDocumentacion) bool {
	ofensores := make([]models.Documento, 0)
	for _, doc := range docs {
		if doc.EstadoCalculado == estado {
			ofensores = append(ofensores, doc)
		}
	}
	if len(ofensores) == 0 {
		return false
	}
	eval.Detalle = ofensores
	return true
}
