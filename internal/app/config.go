package app

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the shell. The engine itself reads
// no environment; every knob here only affects presentation.
type Config struct {
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// ShowSymbol controls whether amounts render with the ₹ symbol.
	ShowSymbol bool `envconfig:"LEKHA_SHOW_SYMBOL" default:"true"`

	// DefaultGSTRate is used when a command omits the rate flag.
	DefaultGSTRate int `envconfig:"LEKHA_DEFAULT_GST_RATE" default:"18"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
