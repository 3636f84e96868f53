package normalizar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgagro/agro-api/pkg/normalizar"
)

func TestSinTildes(t *testing.T) {
	casos := map[string]string{
		"café":       "cafe",
		"Ñandú":      "Nandu",
		"fertilización": "fertilizacion",
		"sin cambios":   "sin cambios",
		"":              "",
	}
	for in, want := range casos {
		assert.Equal(t, want, normalizar.SinTildes(in))
	}
}

func TestCodigo(t *testing.T) {
	casos := map[string]string{
		"fert nítrico ":    "FERT-NITRICO",
		"  abono   urea  ": "ABONO-UREA",
		"semilla-maíz":     "SEMILLA-MAIZ",
		"x":                "X",
	}
	for in, want := range casos {
		assert.Equal(t, want, normalizar.Codigo(in))
	}
}
