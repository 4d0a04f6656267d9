package testsupport

import (
	"path/filepath"
	"testing"

	"photofix/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test
// and timings fast enough for unit tests. Options are applied last.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SessionDir = filepath.Join(base, "session")
	cfg.Paths.LogDir = ""
	cfg.Paths.DownloadDir = filepath.Join(base, "downloads")
	cfg.Processing.TickIntervalMS = 1
	cfg.Processing.GraceDelayMS = 1
	cfg.Feed.SeedSamples = false

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSeedSamples enables sample seeding on the test config.
func WithSeedSamples() ConfigOption {
	return func(c *config.Config) {
		c.Feed.SeedSamples = true
	}
}

// WithModel overrides the processing model label on the test config.
func WithModel(model string) ConfigOption {
	return func(c *config.Config) {
		c.Processing.Model = model
	}
}
