package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntFormatosHeterogeneos(t *testing.T) {
	casos := []struct {
		nombre string
		json   string
		espera int64
	}{
		{"número", `7`, 7},
		{"string numérico", `"42"`, 42},
		{"objeto con Id", `{"Id": 9}`, 9},
		{"objeto con id minúscula", `{"id": "11"}`, 11},
		{"null", `null`, 0},
		{"string vacío", `""`, 0},
		{"objeto sin id", `{"otro": 1}`, 0},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			var fi FlexInt
			require.NoError(t, json.Unmarshal([]byte(caso.json), &fi))
			assert.Equal(t, caso.espera, fi.Int64())
		})
	}

	t.Run("string no numérico falla", func(t *testing.T) {
		var fi FlexInt
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &fi))
	})
}
