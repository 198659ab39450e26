package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Host: "", Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number must be between 1 and 65535"},
		{name: "port too large", input: "localhost:70000", expectError: true, errorMsg: "port number must be between 1 and 65535"},
		{name: "invalid IP address", input: "invalid.host:8080", expectError: true, errorMsg: "incorrect IP-address provided"},
		{name: "only colon", input: ":", expectError: true, errorMsg: "invalid syntax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, rest, err := ParseFlags("serve", []string{
		"-a", "127.0.0.1:9000",
		"-config", "settings.json",
		"-env-file", "local.env",
		"-log-level", "debug",
		"-root", "site",
		"-modules", "site/node_modules",
		"-strict",
		"-remote", "http://validator:8080",
		"-request-timeout", "3s",
		"-cache-size", "32",
		"-watch-interval", "250ms",
		"-format", "toml",
		"twconf.yaml", "extra",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"twconf.yaml", "extra"}, rest)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "settings.json", cfg.JSONFilePath)
	assert.Equal(t, "local.env", cfg.EnvFilePath)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "site", cfg.App.ProjectRoot)
	assert.Equal(t, "site/node_modules", cfg.App.ModulesDir)
	assert.True(t, cfg.App.StrictModules)
	assert.Equal(t, "http://validator:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 32, cfg.Cache.Size)
	assert.Equal(t, 250*time.Millisecond, cfg.Workers.WatchInterval)
	assert.Equal(t, "toml", cfg.App.OutputFormat)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, _, err := ParseFlags("validate", []string{"-c", "settings.json"})
	require.NoError(t, err)
	assert.Equal(t, "settings.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, rest, err := ParseFlags("validate", nil)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, _, err := ParseFlags("serve", []string{"-a", "nowhere"})
	assert.Error(t, err)
}
