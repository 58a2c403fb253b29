package config

import "time"

// EscapeConfig controls the insert-mode exit sequence.
type EscapeConfig struct {
	// Sequence is the character sequence that leaves insert mode. A
	// sequence shorter than two characters disables the recognizer.
	Sequence string

	// Timeout is the maximum gap between sequence keys.
	Timeout time.Duration
}

// Config is the full engine configuration snapshot.
type Config struct {
	Escape EscapeConfig
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Escape: EscapeConfig{
			Sequence: "jk",
			Timeout:  300 * time.Millisecond,
		},
	}
}

// fileConfig is the on-disk schema. Durations are expressed in
// milliseconds so both TOML and YAML files stay plain integers.
type fileConfig struct {
	Escape *fileEscape `toml:"escape" yaml:"escape"`
}

type fileEscape struct {
	Sequence  *string `toml:"sequence" yaml:"sequence"`
	TimeoutMS *int    `toml:"timeout_ms" yaml:"timeout_ms"`
}

// apply overlays the file values onto a config, leaving absent fields at
// their current values.
func (f *fileConfig) apply(cfg Config) Config {
	if f == nil || f.Escape == nil {
		return cfg
	}
	if f.Escape.Sequence != nil {
		cfg.Escape.Sequence = *f.Escape.Sequence
	}
	if f.Escape.TimeoutMS != nil {
		cfg.Escape.Timeout = time.Duration(*f.Escape.TimeoutMS) * time.Millisecond
	}
	return cfg
}
