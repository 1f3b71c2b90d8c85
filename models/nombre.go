package models

import "strings"

// El CRUD de personal no es consistente en el campo que trae el nombre para
// mostrar. Los extractores se aplican en orden y gana el primero que entregue un
// valor no vacío; el orden es contrato del resolver y no debe alterarse.
var extractoresNombre = []func(map[string]interface{}) string{
	campoTexto("nombre_completo"),
	campoTexto("nombre"),
	func(raw map[string]interface{}) string {
		nombres := textoDe(raw, "nombres")
		apellidos := textoDe(raw, "apellidos")
		if nombres == "" {
			return ""
		}
		return strings.TrimSpace(nombres + " " + apellidos)
	},
	campoTexto("NombreCompleto"),
	campoTexto("Nombre"),
	campoTexto("nombre_persona"),
	campoTexto("full_name"),
}

// ResolverNombre resuelve el nombre para mostrar de un registro crudo de personal.
// Si ningún extractor produce valor, sintetiza un nombre de relleno desde el RUT.
func ResolverNombre(raw map[string]interface{}, rut string) string {
	for _, extractor := range extractoresNombre {
		if nombre := strings.TrimSpace(extractor(raw)); nombre != "" {
			return nombre
		}
	}
	if trimmed := strings.TrimSpace(rut); trimmed != "" {
		return "Persona " + trimmed
	}
	return "Persona sin identificar"
}

func campoTexto(clave string) func(map[string]interface{}) string {
	return func(raw map[string]interface{}) string {
		return textoDe(raw, clave)
	}
}

func textoDe(raw map[string]interface{}, clave string) string {
	if raw == nil {
		return ""
	}
	if v, ok := raw[clave].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
