package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rubiojr/wswcharge/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wswcharge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, api.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, api.WuppertalBBox, cfg.BBox)
	assert.Equal(t, []string{"WSW", "Wuppertaler Stadtwerke"}, cfg.OwnerNames)
	assert.Equal(t, "Wuppertal", cfg.Locality)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "de", cfg.Language)
	assert.False(t, cfg.FallbackOnError)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
endpoint: https://overpass.kumi.systems/api/interpreter
bbox:
  south: 51.1
  west: 7.1
  north: 51.2
  east: 7.3
owner_names: ["EWR"]
locality: Remscheid
name_prefix: EWR
timeout: 5s
fallback_on_error: true
language: en
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://overpass.kumi.systems/api/interpreter", cfg.Endpoint)
	assert.Equal(t, api.BBox{South: 51.1, West: 7.1, North: 51.2, East: 7.3}, cfg.BBox)
	assert.Equal(t, []string{"EWR"}, cfg.OwnerNames)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.FallbackOnError)
	assert.Equal(t, "en", cfg.Language)
	// Unset keys keep their defaults.
	assert.Equal(t, api.DefaultOperators, cfg.QueryOperators)
	assert.Equal(t, DefaultNominatim, cfg.Nominatim)

	n := cfg.Normalizer()
	assert.Equal(t, []string{"EWR"}, n.Owners)
	assert.Equal(t, "Remscheid", n.Locality)
	assert.Equal(t, "EWR", n.NamePrefix)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad endpoint", "endpoint: not a url"},
		{"inverted bbox", "bbox: {south: 52, west: 7, north: 51, east: 8}"},
		{"latitude out of range", "bbox: {south: -95, west: 7, north: 51, east: 8}"},
		{"empty owners", "owner_names: []"},
		{"blank owner", `owner_names: [""]`},
		{"unknown language", "language: fr"},
		{"zero timeout", "timeout: 0s"},
		{"empty locality", `locality: ""`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.content))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading config file")

	_, err = Load(writeConfig(t, "bbox: [1, 2"))
	assert.ErrorContains(t, err, "error parsing config file")
}

func TestOverpassOptions(t *testing.T) {
	cfg := Default()
	cfg.BBox = api.BBox{South: 1, West: 2, North: 3, East: 4}
	cfg.QueryOperators = []string{"EWR"}

	client := api.NewOverpassAPI(cfg.OverpassOptions()...)
	assert.Contains(t, client.Query(), `["operator"~"EWR"](1,2,3,4)`)
}
