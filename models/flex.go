package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt permite deserializar valores que pueden venir como número, string o estructura {Id: ...}.
// El CRUD de operaciones no es consistente en el tipo de sus identificadores.
type FlexInt int64

// UnmarshalJSON soporta formatos heterogéneos en las respuestas del CRUD.
func (fi *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*fi = 0
		return nil
	}
	switch trimmed[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		if raw, ok := obj["Id"]; ok && raw != nil {
			return fi.UnmarshalJSON(raw)
		}
		if raw, ok := obj["id"]; ok && raw != nil {
			return fi.UnmarshalJSON(raw)
		}
		*fi = 0
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*fi = 0
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*fi = FlexInt(v)
		return nil
	default:
		var v int64
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return err
		}
		*fi = FlexInt(v)
		return nil
	}
}

// MarshalJSON serializa el valor interno como entero.
func (fi FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(fi))
}

// Int64 devuelve el valor entero nativo.
func (fi FlexInt) Int64() int64 {
	return int64(fi)
}
