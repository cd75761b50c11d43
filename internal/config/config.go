// Package config provides configuration management for the snapshot CLI.
// Values are resolved in precedence order: command-line flags, then an
// optional YAML config file, then built-in defaults, merged with mergo and
// validated with validator.
package config

import (
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/runningstream/RestoreElasticSearchSnapshots/internal/snapshot"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "24h" parse directly.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config is the resolved tool configuration.
type Config struct {
	Elasticsearch    ElasticsearchConfig `yaml:"elasticsearch" validate:"required"`
	Cache            CacheConfig         `yaml:"cache" validate:"required"`
	ProtectedIndices []string            `yaml:"protectedIndices"`
}

// ElasticsearchConfig holds cluster connection details.
type ElasticsearchConfig struct {
	Host       string `yaml:"host" validate:"required"`
	Port       int    `yaml:"port" validate:"required,min=1,max=65535"`
	Repository string `yaml:"repository" validate:"required"`
}

// CacheConfig holds snapshot listing cache settings.
type CacheConfig struct {
	Path   string   `yaml:"path" validate:"required"`
	MaxAge Duration `yaml:"maxAge" validate:"required"`
}

// Defaults returns the built-in configuration, matching the historical
// behavior of the tool.
func Defaults() Config {
	return Config{
		Elasticsearch: ElasticsearchConfig{
			Host:       "localhost",
			Port:       9200,
			Repository: "my_s3_repository",
		},
		Cache: CacheConfig{
			Path:   snapshot.DefaultCachePath,
			MaxAge: Duration(snapshot.DefaultCacheMaxAge),
		},
		ProtectedIndices: []string{".kibana"},
	}
}

// Load resolves the configuration. Overrides carries values taken from
// command-line flags (zero values mean "not set"); path names an optional
// YAML config file. Flags win over the file, the file wins over defaults.
func Load(path string, overrides Config) (*Config, error) {
	config := overrides

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}

		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}

		// Fill fields the flags left unset
		if err := mergo.Merge(&config, fileConfig); err != nil {
			return nil, fmt.Errorf("failed to merge config file: %w", err)
		}
	}

	// Fill whatever is still unset from the defaults
	if err := mergo.Merge(&config, Defaults()); err != nil {
		return nil, fmt.Errorf("failed to merge default config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// Context carries CLI state through cobra commands.
type Context struct {
	Config *CLIConfig
}

// CLIConfig holds raw command-line flag values before resolution.
type CLIConfig struct {
	Host       string
	Port       int
	Repository string
	Pattern    string
	Reload     bool
	Debug      bool
	Quiet      bool
	ConfigFile string
	CacheFile  string

	OutputFormat string // table, json
}

// NewContext returns an empty CLI context.
func NewContext() *Context {
	return &Context{
		Config: &CLIConfig{},
	}
}

// Resolve builds the effective Config from the CLI flags plus the optional
// config file.
func (c *CLIConfig) Resolve() (*Config, error) {
	overrides := Config{
		Elasticsearch: ElasticsearchConfig{
			Host:       c.Host,
			Port:       c.Port,
			Repository: c.Repository,
		},
		Cache: CacheConfig{
			Path: c.CacheFile,
		},
	}
	return Load(c.ConfigFile, overrides)
}
