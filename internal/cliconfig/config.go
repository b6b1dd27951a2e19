package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/bft-labs/kalliopectl/pkg/settings"
	"github.com/bft-labs/kalliopectl/pkg/synapse"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration for kalliopectl.
type Config struct {
	Settings settings.Settings

	HTTPTimeout time.Duration

	LogLevel string
	LogFile  string
	Output   string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Settings:    settings.Default(),
		HTTPTimeout: synapse.DefaultTimeout,
		LogLevel:    "info",
		Output:      OutputText,
	}
}

// Validate checks the configuration for errors and normalizes the server URL.
// An empty URL is left for the client to reject at request time.
func (c *Config) Validate() error {
	u := c.Settings.URL
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimRight(u, "/")
	c.Settings.URL = u

	if strings.HasPrefix(u, "https://") {
		return fmt.Errorf("url must be host:port, https is not supported: %s", u)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	switch c.Output {
	case "":
		c.Output = OutputText
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output, OutputText, OutputJSON)
	}

	return nil
}

// Redacted returns a copy of c that is safe to log.
func (c Config) Redacted() Config {
	c.Settings = c.Settings.Redacted()
	return c
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

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

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
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
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
