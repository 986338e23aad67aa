package config

import (
	"github.com/kbukum/weave/logger"
	"github.com/kbukum/weave/validation"
)

// Config is the root weave configuration.
type Config struct {
	Logging       logger.Config       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Interleave    InterleaveConfig    `mapstructure:"interleave"`
}

// ObservabilityConfig configures OTLP export of traces and metrics.
type ObservabilityConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	Endpoint    string `mapstructure:"endpoint"`
	Insecure    bool   `mapstructure:"insecure"`
}

// InterleaveConfig carries the default merge options.
type InterleaveConfig struct {
	TrustSorted bool   `mapstructure:"trust_sorted"`
	EndPolicy   string `mapstructure:"end_policy" validate:"required,oneof=clamp reject"`
	BufferSize  int    `mapstructure:"buffer_size" validate:"min=1"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = "weave"
	}
	if c.Observability.Endpoint == "" {
		c.Observability.Endpoint = "localhost:4318"
	}
	if c.Interleave.EndPolicy == "" {
		c.Interleave.EndPolicy = "clamp"
	}
	if c.Interleave.BufferSize == 0 {
		c.Interleave.BufferSize = 1024
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}
