package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpdate/header"
	"github.com/zostay/go-httpdate/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "httpdate.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, header.DateFields, cfg.Fields)
	assert.False(t, cfg.Lenient)
	assert.Equal(t, "info", cfg.LogLevel)

	cfg.Fields[0] = "changed"
	assert.Equal(t, header.Date, header.DateFields[0])
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := writeConfig(t, `
fields = [" Date ", "x-cache-date", "date", ""]
lenient = true
log_level = "debug"
`)
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Fields:   []string{"Date", "x-cache-date"},
		Lenient:  true,
		LogLevel: "debug",
	}, cfg)
}

func TestLoad_Partial(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `lenient = true`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	expect := config.Default()
	expect.Lenient = true
	assert.Equal(t, expect, cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, `log_level = "loud"`))
	assert.ErrorContains(t, err, "log_level")

	_, err = config.Load(writeConfig(t, `feilds = ["Date"]`))
	assert.ErrorContains(t, err, "feilds")

	_, err = config.Load(writeConfig(t, `fields = `))
	assert.Error(t, err)
}
