package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateProcessing(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.SessionDir) == "" {
		return fmt.Errorf("paths.session_dir must be set")
	}
	return nil
}

func (c *Config) validateProcessing() error {
	if c.Processing.TickIntervalMS <= 0 {
		return fmt.Errorf("processing.tick_interval_ms must be positive, got %d", c.Processing.TickIntervalMS)
	}
	if c.Processing.GraceDelayMS < 0 {
		return fmt.Errorf("processing.grace_delay_ms must not be negative, got %d", c.Processing.GraceDelayMS)
	}
	if strings.TrimSpace(c.Processing.Model) == "" {
		return fmt.Errorf("processing.model must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
