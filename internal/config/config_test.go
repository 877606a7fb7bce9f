package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "PAGESHELL_ADDR", "PAGESHELL_TITLE", "PAGESHELL_LOG_LEVEL", "PAGESHELL_LOG_FORMAT", "PAGESHELL_METRICS"} {
		t.Setenv(k, "")
	}
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, DefaultPerson, c.Person)
	assert.True(t, c.Metrics)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PAGESHELL_ADDR", "")
	t.Setenv("PAGESHELL_PERSON", "Ann")
	t.Setenv("PAGESHELL_LOG_LEVEL", "debug")
	t.Setenv("PAGESHELL_LOG_FORMAT", "json")
	t.Setenv("PAGESHELL_METRICS", "false")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Addr)
	assert.Equal(t, "Ann", c.Person)
	assert.False(t, c.Metrics)
	level, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	t.Setenv("PAGESHELL_ADDR", "127.0.0.1:7000")
	c, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", c.Addr, "PAGESHELL_ADDR wins over PORT")
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("PAGESHELL_METRICS", "maybe")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PAGESHELL_METRICS", "")
	t.Setenv("PAGESHELL_LOG_FORMAT", "xml")
	_, err = Load()
	assert.Error(t, err)
}

func TestBindFlagsOverride(t *testing.T) {
	c := Config{Addr: ":8080", Person: DefaultPerson, LogLevel: "info", LogFormat: "text"}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--person", "Kim", "--addr", ":1234", "--metrics=false"}))
	assert.Equal(t, "Kim", c.Person)
	assert.Equal(t, ":1234", c.Addr)
	assert.False(t, c.Metrics)
	require.NoError(t, c.Validate())
}
