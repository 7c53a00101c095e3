package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rubiojr/wswcharge/internal/stations"
	"github.com/rubiojr/wswcharge/pkg/api"
	"gopkg.in/yaml.v3"
)

const (
	DefaultNominatim   = "https://nominatim.openstreetmap.org/"
	DefaultLanguage    = "de"
	defaultGeocodeRate = 1.0 // Nominatim usage policy: at most one request per second
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds the data source and presentation settings.
type Config struct {
	Endpoint        string        `yaml:"endpoint" validate:"required,url"`
	BBox            api.BBox      `yaml:"bbox"`
	QueryOperators  []string      `yaml:"query_operators" validate:"min=1,dive,required"`
	OwnerNames      []string      `yaml:"owner_names" validate:"min=1,dive,required"`
	Locality        string        `yaml:"locality" validate:"required"`
	NamePrefix      string        `yaml:"name_prefix"`
	Timeout         time.Duration `yaml:"timeout" validate:"gt=0"`
	FallbackOnError bool          `yaml:"fallback_on_error"`
	Language        string        `yaml:"language" validate:"oneof=de en"`
	Nominatim       string        `yaml:"nominatim" validate:"required,url"`
	GeocodeRate     float64       `yaml:"geocode_rate" validate:"gt=0"`
}

// Default returns the settings for WSW stations in Wuppertal.
func Default() *Config {
	n := stations.DefaultNormalizer()
	return &Config{
		Endpoint:       api.DefaultEndpoint,
		BBox:           api.WuppertalBBox,
		QueryOperators: append([]string(nil), api.DefaultOperators...),
		OwnerNames:     n.Owners,
		Locality:       n.Locality,
		NamePrefix:     n.NamePrefix,
		Timeout:        api.DefaultTimeout,
		Language:       DefaultLanguage,
		Nominatim:      DefaultNominatim,
		GeocodeRate:    defaultGeocodeRate,
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges, URLs and the bounding box orientation.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Normalizer builds the station normalizer for the configured operator.
func (c *Config) Normalizer() stations.Normalizer {
	n := stations.DefaultNormalizer()
	n.Owners = c.OwnerNames
	n.Locality = c.Locality
	n.NamePrefix = c.NamePrefix
	return n
}

// OverpassOptions returns the client options matching this configuration.
func (c *Config) OverpassOptions() []api.Option {
	return []api.Option{
		api.WithEndpoint(c.Endpoint),
		api.WithBBox(c.BBox),
		api.WithOperators(c.QueryOperators),
		api.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
	}
}
