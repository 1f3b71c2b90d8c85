package models

// Jerarquía de asignación: Cartera 1—* Cliente 1—* Nodo.

type Cartera struct {
	Id     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type Cliente struct {
	Id        int64  `json:"id"`
	CarteraId int64  `json:"cartera_id"`
	Nombre    string `json:"nombre"`
}

type Nodo struct {
	Id        int64  `json:"id"`
	ClienteId int64  `json:"cliente_id"`
	Nombre    string `json:"nombre"`
}

// PrerrequisitosCliente es el listado de tipos de documento que un cliente exige
// a cualquier persona que se le asigne.
type PrerrequisitosCliente struct {
	ClienteId       int64    `json:"cliente_id"`
	TiposRequeridos []string `json:"tipos_requeridos"`
}

// ResultadoMatch es el resultado transitorio de comparar los prerrequisitos de un
// cliente contra los documentos reales de una persona. Cumple es true sii
// Faltantes está vacío.
type ResultadoMatch struct {
	Rut           string   `json:"rut"`
	Cumple        bool     `json:"cumple"`
	RequiredCount int      `json:"required_count"`
	ProvidedCount int      `json:"provided_count"`
	Faltantes     []string `json:"faltantes"`
}
