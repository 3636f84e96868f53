package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgagro/agro-api/pkg/logger"
)

func TestNew_EmiteJSONConService(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "mg-agro-api", Writer: &buf})

	l.Info().Str("env", "production").Msg("arranque")

	var evt map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &evt))
	assert.Equal(t, "mg-agro-api", evt["service"], "cada evento lleva el nombre del servicio")
	assert.Equal(t, "arranque", evt["message"])
	assert.Equal(t, "production", evt["env"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "warn", Writer: &buf})

	l.Info().Msg("ruido")
	assert.Empty(t, buf.String(), "info queda por debajo del nivel warn")

	l.Warn().Msg("aviso")
	assert.Contains(t, buf.String(), "aviso")
}

func TestHTTP_MarcaComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Service: "mg-agro-api", Writer: &buf})

	h := l.HTTP()
	h.Info().Str("method", "GET").Str("path", "/api/articulos").Msg("http")

	assert.Contains(t, buf.String(), `"component":"http"`)
	assert.Contains(t, buf.String(), `"service":"mg-agro-api"`)
	assert.Contains(t, buf.String(), `"method":"GET"`)
}
