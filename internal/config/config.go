// Package config loads and validates the application configuration from
// built-in defaults, an optional YAML file and MPREVIEW_* environment
// variables, in that order of precedence (environment wins).
package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"mpreview/internal/extract"
)

// envPrefix namespaces every environment variable read by Load.
const envPrefix = "MPREVIEW"

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig     `yaml:"server" envconfig:"SERVER"`
	Security SecurityConfig   `yaml:"security" envconfig:"SECURITY"`
	Logging  LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Storage  StorageConfig    `yaml:"storage" envconfig:"STORAGE"`
	Batches  map[string]Batch `yaml:"batches" ignored:"true" validate:"min=1,dive"`
	Schemas  SchemasConfig    `yaml:"schemas" ignored:"true"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// SecurityConfig contains security-related configuration.
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" validate:"min=1"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS"`
	Burst   int     `yaml:"burst" envconfig:"BURST"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// StorageConfig names the remote object holding the source workbook.
// Bucket and Object are required: a request cannot fall back to a guessed
// location, so missing settings fail loudly at startup.
type StorageConfig struct {
	Bucket          string        `yaml:"bucket" envconfig:"BUCKET" validate:"required"`
	Object          string        `yaml:"object" envconfig:"OBJECT" validate:"required"`
	CredentialsFile string        `yaml:"credentials_file" envconfig:"CREDENTIALS_FILE"`
	DownloadTimeout time.Duration `yaml:"download_timeout" envconfig:"DOWNLOAD_TIMEOUT" validate:"gt=0"`
	DocBaseURL      string        `yaml:"doc_base_url" envconfig:"DOC_BASE_URL"`
}

// Batch selects which worksheet of the source workbook to extract and which
// document path prefix its statement PDFs live under.
type Batch struct {
	SheetName     string `yaml:"sheet_name" validate:"required"`
	DocPathPrefix string `yaml:"doc_path_prefix"`
}

// SchemasConfig optionally overrides the built-in column layouts. Keys are
// logical field names, values zero-based column indices. Overrides merge over
// the defaults, so a deployment only lists the columns that moved.
type SchemasConfig struct {
	MP  map[string]int `yaml:"mp"`
	KYM map[string]int `yaml:"kym"`
}

var validate = validator.New()

// Load assembles the configuration. The optional file path is taken from
// MPREVIEW_CONFIG_FILE, falling back to config.yaml in common locations.
func Load() (*Config, error) {
	cfg := Default()

	if path := configFilePath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks structural constraints and resolves both schemas once so a
// broken override fails at startup instead of on the first request.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if _, err := c.MPSchema(); err != nil {
		return fmt.Errorf("mp schema: %w", err)
	}
	if _, err := c.KYMSchema(); err != nil {
		return fmt.Errorf("kym schema: %w", err)
	}
	return nil
}

// BatchNames returns the configured batch names in stable order.
func (c *Config) BatchNames() []string {
	names := make([]string, 0, len(c.Batches))
	for name := range c.Batches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultBatch returns the batch used when a request names none.
func (c *Config) DefaultBatch() string {
	names := c.BatchNames()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// MPSchema resolves the MP column schema: defaults merged with overrides.
func (c *Config) MPSchema() (extract.Schema, error) {
	return resolveSchema(extract.DefaultMPSchema(), c.Schemas.MP, extract.MPFields)
}

// KYMSchema resolves the KYM column schema: defaults merged with overrides.
func (c *Config) KYMSchema() (extract.Schema, error) {
	return resolveSchema(extract.DefaultKYMSchema(), c.Schemas.KYM, extract.KYMFields)
}

func resolveSchema(base extract.Schema, overrides map[string]int, required []extract.Field) (extract.Schema, error) {
	s := make(extract.Schema, len(base))
	for f, idx := range base {
		s[f] = idx
	}
	for name, idx := range overrides {
		s[extract.Field(name)] = idx
	}
	if err := s.Validate(required); err != nil {
		return nil, err
	}
	return s, nil
}

func configFilePath() string {
	if path := os.Getenv(envPrefix + "_CONFIG_FILE"); path != "" {
		return path
	}
	for _, location := range []string{"config.yaml", "configs/config.yaml"} {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Default returns the built-in configuration. Storage bucket and object stay
// empty on purpose; they have no sensible default and must be supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:8080"},
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "both",
			FilePath: "logs/app.log",
		},
		Storage: StorageConfig{
			Object:          "underscore.xlsx",
			DownloadTimeout: 30 * time.Second,
		},
		Batches: map[string]Batch{
			"Batch 1": {SheetName: "querry", DocPathPrefix: "29_batch"},
			"Batch 2": {SheetName: "this", DocPathPrefix: "30_batch"},
		},
	}
}
