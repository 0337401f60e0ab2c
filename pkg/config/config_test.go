package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payord-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PAYORD_OUTPUT_ENCODING", "utf-8")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "utf-8", cfg.PayOrd.OutputEncoding)
	assert.Equal(t, "output.xml", cfg.PayOrd.OutputFilename)
	assert.Equal(t, 10*1024*1024, cfg.PayOrd.MaxUploadBytes())
}

func TestLoad_PuertoInvalido(t *testing.T) {
	t.Setenv("HTTP_PORT", "0")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestJWTConfig_Enabled(t *testing.T) {
	assert.False(t, config.JWTConfig{}.Enabled())
	assert.True(t, config.JWTConfig{Secret: "s"}.Enabled())
}
