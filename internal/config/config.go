// Package config holds focal's runtime configuration, loaded from
// .focal.yaml with environment variable overrides.
package config

import "fmt"

// Config is the complete focal configuration.
type Config struct {
	Context   ContextConfig   `yaml:"context" mapstructure:"context"`
	Languages LanguagesConfig `yaml:"languages" mapstructure:"languages"`
}

// ContextConfig controls context assembly.
type ContextConfig struct {
	// MaxLines caps the assembled context, breadcrumbs included.
	MaxLines int `yaml:"max_lines" mapstructure:"max_lines"`

	// FallbackLines sizes the raw line window used when no structural
	// context is available.
	FallbackLines int `yaml:"fallback_lines" mapstructure:"fallback_lines"`
}

// LanguagesConfig restricts which grammars are used.
type LanguagesConfig struct {
	// Enabled lists grammar names to enable. Empty means all built-ins.
	Enabled []string `yaml:"enabled" mapstructure:"enabled"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Context: ContextConfig{
			MaxLines:      60,
			FallbackLines: 20,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Context.MaxLines < 1 {
		return fmt.Errorf("context.max_lines must be at least 1, got %d", c.Context.MaxLines)
	}
	if c.Context.FallbackLines < 1 {
		return fmt.Errorf("context.fallback_lines must be at least 1, got %d", c.Context.FallbackLines)
	}
	return nil
}

// LanguageEnabled reports whether the named grammar is enabled.
func (c *Config) LanguageEnabled(name string) bool {
	if len(c.Languages.Enabled) == 0 {
		return true
	}
	for _, enabled := range c.Languages.Enabled {
		if enabled == name {
			return true
		}
	}
	return false
}
