package config

import "time"

// Config represents the complete exportdiff configuration.
// It can be loaded from .exportdiff/config.yml with environment variable overrides.
type Config struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Watch  WatchConfig  `yaml:"watch" mapstructure:"watch"`
}

// OutputConfig controls how change lists are serialized.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // "json" or "yaml"
	Pretty bool   `yaml:"pretty" mapstructure:"pretty"` // indent JSON output
}

// PathsConfig defines which files take part in a directory diff.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for source files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms" mapstructure:"debounce_ms"` // quiet period before re-analyzing
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "json",
			Pretty: false,
		},
		Paths: PathsConfig{
			Include: []string{
				"**/*.ts",
				"**/*.tsx",
				"**/*.mts",
				"**/*.cts",
			},
			Ignore: []string{
				"node_modules/**",
				"dist/**",
				"build/**",
				".git/**",
				"**/*.d.ts",
			},
		},
		Watch: WatchConfig{
			DebounceMs: 300,
		},
	}
}

// Debounce returns the watch debounce as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}
