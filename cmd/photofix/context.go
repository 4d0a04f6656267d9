package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"photofix/internal/blob"
	"photofix/internal/config"
	"photofix/internal/feed"
	"photofix/internal/logging"
	"photofix/internal/processor"
	"photofix/internal/samples"
	"photofix/internal/view"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// session bundles the live collaborators a command works against. The store
// and blob registry are controller-owned; commands read records through the
// projection and mutate only via controller entry points.
type session struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *feed.Store
	blobs      *blob.Registry
	controller *processor.Controller
	projection *view.Projection
}

// withSession opens the session state, seeds the sample gallery when
// configured, runs fn, and tears everything down in reverse order.
func (c *commandContext) withSession(cmd *cobra.Command, fn func(*session) error, opts ...processor.Option) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	store, err := feed.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	blobs, err := blob.Open(cfg)
	if err != nil {
		return err
	}

	if cfg.Feed.SeedSamples {
		if err := samples.Seed(cmd.Context(), store, blobs); err != nil {
			return fmt.Errorf("seed sample gallery: %w", err)
		}
	}

	controller := processor.New(cfg, store, blobs, logger, opts...)
	defer controller.Close()

	return fn(&session{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		blobs:      blobs,
		controller: controller,
		projection: view.NewProjection(store),
	})
}
