// Package configuration holds the settings for the completion client and
// the answering pipeline, with layered loading from defaults, a YAML file,
// and environment variables.
package configuration

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates that a configuration failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Environment variables overlaid by FromEnv.
const (
	EnvAPIKey    = "OPENAI_API_KEY"
	EnvBaseURL   = "API_BASE"
	EnvModel     = "MODEL_NAME"
	EnvRedisAddr = "QUORUM_REDIS_ADDR"
)

// Config holds everything needed to talk to the completion endpoint and to
// run the answering pipeline.
type Config struct {
	// Provider settings.
	APIKey    string        `yaml:"api_key"    validate:"required"`
	BaseURL   string        `yaml:"base_url"   validate:"required,url"`
	Model     string        `yaml:"model"      validate:"required"`
	MaxTokens int           `yaml:"max_tokens" validate:"min=1"`
	Timeout   time.Duration `yaml:"timeout"    validate:"gt=0"`

	// HTTPClient overrides the client used for completion calls.
	HTTPClient *http.Client `yaml:"-"`

	// Pipeline settings.
	CallBudget        int           `yaml:"call_budget"        validate:"min=3"`
	SamplePause       time.Duration `yaml:"sample_pause"       validate:"gte=0"`
	SampleTemperature float64       `yaml:"sample_temperature" validate:"gte=0,lte=2"`
	Shots             int           `yaml:"shots"              validate:"gte=0"`

	Cache         CacheConfig         `yaml:"cache"`
	Observability ObservabilityConfig `yaml:"observability"`
	Temporal      TemporalConfig      `yaml:"temporal"`
}

// CacheConfig controls the Redis response cache for deterministic calls.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"     validate:"required_if=Enabled true"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"       validate:"gte=0"`
	TTL      time.Duration `yaml:"ttl"      validate:"gt=0"`
}

// ObservabilityConfig controls process logging.
type ObservabilityConfig struct {
	LogLevel      string `yaml:"log_level"      validate:"oneof=debug info warn error"`
	LogFormat     string `yaml:"log_format"     validate:"oneof=text json"`
	RedactPrompts bool   `yaml:"redact_prompts"`
}

// TemporalConfig locates the Temporal frontend used in worker mode.
type TemporalConfig struct {
	HostPort  string `yaml:"host_port"  validate:"required"`
	Namespace string `yaml:"namespace"  validate:"required"`
	TaskQueue string `yaml:"task_queue" validate:"required"`
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadFile overlays the YAML document at path onto c. Keys absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", ErrInvalidConfig, path, err)
	}
	return nil
}

// FromEnv overlays provider settings from the environment. lookup has the
// signature of os.LookupEnv; empty values are ignored.
func (c *Config) FromEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		c.APIKey = v
	}
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup(EnvModel); ok && v != "" {
		c.Model = v
	}
	if v, ok := lookup(EnvRedisAddr); ok && v != "" {
		c.Cache.Addr = v
		c.Cache.Enabled = true
	}
}

// Load builds a Config from defaults, an optional YAML file, and the process
// environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.FromEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// String renders the configuration for logs without the API key.
func (c *Config) String() string {
	return "model=" + c.Model +
		" base_url=" + c.BaseURL +
		" max_tokens=" + strconv.Itoa(c.MaxTokens) +
		" timeout=" + c.Timeout.String() +
		" call_budget=" + strconv.Itoa(c.CallBudget) +
		" cache=" + strconv.FormatBool(c.Cache.Enabled)
}
