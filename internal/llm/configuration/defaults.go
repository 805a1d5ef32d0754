package configuration

import "time"

// Provider defaults.
const (
	DefaultAPIKey    = "local"
	DefaultBaseURL   = "http://localhost:8000/v1"
	DefaultModel     = "default"
	DefaultMaxTokens = 128
	DefaultTimeout   = 60 * time.Second
)

// Pipeline defaults.
const (
	DefaultCallBudget        = 20
	DefaultSamplePause       = 200 * time.Millisecond
	DefaultSampleTemperature = 0.7
	DefaultShots             = 2
)

// Cache defaults.
const (
	DefaultCacheTTL = 24 * time.Hour
)

// Temporal defaults.
const (
	DefaultTemporalHostPort  = "localhost:7233"
	DefaultTemporalNamespace = "default"
	DefaultTaskQueue         = "quorum"
)

// DefaultConfig returns the hardcoded defaults. The cache starts disabled.
func DefaultConfig() *Config {
	return &Config{
		APIKey:            DefaultAPIKey,
		BaseURL:           DefaultBaseURL,
		Model:             DefaultModel,
		MaxTokens:         DefaultMaxTokens,
		Timeout:           DefaultTimeout,
		CallBudget:        DefaultCallBudget,
		SamplePause:       DefaultSamplePause,
		SampleTemperature: DefaultSampleTemperature,
		Shots:             DefaultShots,
		Cache: CacheConfig{
			TTL: DefaultCacheTTL,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "text",
		},
		Temporal: TemporalConfig{
			HostPort:  DefaultTemporalHostPort,
			Namespace: DefaultTemporalNamespace,
			TaskQueue: DefaultTaskQueue,
		},
	}
}
