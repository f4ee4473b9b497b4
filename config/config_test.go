package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ModeAuto, c.Mode)
	assert.Equal(t, "127.0.0.1:8080", c.ListenAddress)
	assert.Equal(t, logrus.InfoLevel, c.Level())
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Equal(t, 4, c.Render.DefaultSlots)
	assert.Equal(t, 30*time.Second, c.Render.AcquireTimeout)
	assert.Empty(t, c.Render.Decks)
	assert.Zero(t, c.RateLimit.RPS)
	assert.Equal(t, 10, c.RateLimit.Burst)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
mode: http
listen_address: 0.0.0.0:9090
log_level: debug
log_format: json
render:
  default_slots: 2
  acquire_timeout: 5s
  decks:
    industrial_revolution:
      size: 8
rate_limit:
  rps: 2.5
  burst: 5
`)

	c, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, ModeHTTP, c.Mode)
	assert.Equal(t, "0.0.0.0:9090", c.ListenAddress)
	assert.Equal(t, logrus.DebugLevel, c.Level())
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, 2, c.Render.DefaultSlots)
	assert.Equal(t, 5*time.Second, c.Render.AcquireTimeout)
	assert.Equal(t, DeckLimit{Size: 8}, c.Render.Decks["industrial_revolution"])
	assert.Equal(t, 2.5, c.RateLimit.RPS)
	assert.Equal(t, 5, c.RateLimit.Burst)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "listen_address: 10.0.0.1:1000\nmode: lambda\n")
	t.Setenv("PPTXGEN_LISTEN_ADDRESS", "10.0.0.2:2000")
	t.Setenv("PPTXGEN_RENDER_DEFAULT_SLOTS", "7")

	args := &CliConfig{}
	fs := NewFlagSet("test", args)
	require.NoError(t, fs.Parse([]string{"--mode", "http"}))

	c, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, ModeHTTP, c.Mode, "flag beats file")
	assert.Equal(t, "10.0.0.2:2000", c.ListenAddress, "env beats file")
	assert.Equal(t, 7, c.Render.DefaultSlots)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")

	path := writeConfig(t, `
mode: desktop
log_level: loud
log_format: xml
render:
  default_slots: 0
rate_limit:
  rps: 1
  burst: 0
`)
	_, err = Load(path, nil)
	require.Error(t, err)
	for _, want := range []string{"mode must be one of", "log_level", "log_format", "default_slots", "burst"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestParseFlags(t *testing.T) {
	args := &CliConfig{}
	fs := NewFlagSet("test", args)
	require.NoError(t, fs.Parse([]string{"-d", "--config", "c.yml", "--listen", ":1"}))

	assert.True(t, args.Debug)
	assert.Equal(t, "c.yml", args.ConfigFile)
	assert.Equal(t, ":1", args.Listen)
	assert.Equal(t, ModeAuto, args.Mode)
}
