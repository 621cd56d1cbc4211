package vsr

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSecondsWidth is the default zero-padded width of the
// seconds-since-midnight field in VSR filename time strings. Recorded
// filenames show both five and six digit widths, so the width is a
// configuration parameter rather than a constant.
const DefaultSecondsWidth = 5

// DefaultInterval is the default file-emission interval in seconds, the
// step applied by Increment.
const DefaultInterval = 1.0

// Config holds the tunable parts of the VSR time-string format.
type Config struct {
	// SecondsWidth is the zero-padded width of the seconds field in
	// filename time strings.
	SecondsWidth int `yaml:"seconds_width"`

	// Interval is the file-emission interval in seconds applied by
	// Increment and IncrementString.
	Interval float64 `yaml:"interval_seconds"`
}

// DefaultConfig returns a Config with the defaults above.
func DefaultConfig() Config {
	return Config{
		SecondsWidth: DefaultSecondsWidth,
		Interval:     DefaultInterval,
	}
}

// LoadConfig reads a YAML config file, filling unset fields from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read VSR config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse VSR config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid VSR config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SecondsWidth < 5 {
		return fmt.Errorf("seconds_width %d cannot hold a full day of seconds", c.SecondsWidth)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval_seconds must be positive, got %g", c.Interval)
	}
	return nil
}
