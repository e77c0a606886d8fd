package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, "timereport.db", c.DatabasePath)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"server_endpoint_addr": "reports.example:443",
		"request_timeout":      "9s",
		"log_format":           "json",
	})
	os.Args = []string{"client", "-c", path, "-t", "2", "-l", "debug"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "reports.example:443", cfg.ServerEndpointAddr)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "timereport.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}
