package cliconfig

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/journal/internal/domain"
)

// Config holds CLI configuration for journal.
type Config struct {
	Title   string
	Entries []string
	Output  string

	SnapshotPath string
	Watch        bool
	LogLevel     string
}

// DefaultConfig returns a Config with default values.
// The defaults reproduce the classic "Dear Diary" example.
func DefaultConfig() Config {
	return Config{
		Title:    "Dear Diary",
		Entries:  []string{"I ate a bug", "I cried today"},
		Output:   "diary.txt",
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors and normalizes derived values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: out is required", domain.ErrInvalidConfig)
	}
	if c.Watch && c.SnapshotPath != "" {
		return fmt.Errorf("%w: watch and snapshot cannot be combined", domain.ErrInvalidConfig)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %w", domain.ErrInvalidConfig, err)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings replaces a list if the new one is non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
