package sesshoku

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/edwinsyarief/sesshoku/logger"
)

// TickOrder selects how the two interaction stages are sequenced within one
// Plugin.Update.
type TickOrder uint8

const (
	// OrderTargetingFirst runs targeting before trigger handling, so fire
	// requests see the targets computed in the same tick.
	OrderTargetingFirst TickOrder = iota
	// OrderTriggerFirst runs trigger handling before targeting. Fire
	// requests then see the targets of the previous tick.
	OrderTriggerFirst
)

func (o TickOrder) String() string {
	switch o {
	case OrderTargetingFirst:
		return "targeting-first"
	case OrderTriggerFirst:
		return "trigger-first"
	default:
		return fmt.Sprintf("TickOrder(%d)", uint8(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o TickOrder) MarshalText() ([]byte, error) {
	if o > OrderTriggerFirst {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, uint8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *TickOrder) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "targeting-first", "":
		*o = OrderTargetingFirst
	case "trigger-first":
		*o = OrderTriggerFirst
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOrder, text)
	}
	return nil
}

// Config controls the interaction plugin.
type Config struct {
	// Workers is the number of goroutines the targeting pass splits
	// interactors across. 1 runs the pass serially.
	Workers int `env:"SESSHOKU_WORKERS" envDefault:"1"`
	// Order sequences targeting and trigger handling within a tick.
	Order TickOrder `env:"SESSHOKU_ORDER" envDefault:"targeting-first"`
	// InitialCapacity is the entity capacity for worlds created by the binaries.
	InitialCapacity int `env:"SESSHOKU_CAPACITY" envDefault:"1024"`
	// Log configures the logger built by the binaries.
	Log logger.Config
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Workers:         1,
		Order:           OrderTargetingFirst,
		InitialCapacity: 1024,
		Log:             logger.Config{Level: "info", Format: "text"},
	}
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the plugin cannot run with.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("sesshoku: workers must be at least 1, got %d", c.Workers)
	}
	if c.InitialCapacity < 0 {
		return fmt.Errorf("sesshoku: initial capacity must not be negative, got %d", c.InitialCapacity)
	}
	if c.Order > OrderTriggerFirst {
		return fmt.Errorf("%w: %d", ErrUnknownOrder, uint8(c.Order))
	}
	return nil
}
