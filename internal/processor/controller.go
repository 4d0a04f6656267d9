package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"photofix/internal/blob"
	"photofix/internal/config"
	"photofix/internal/feed"
	"photofix/internal/imagemeta"
	"photofix/internal/logging"
	"photofix/internal/upload"
)

// ErrBusy is returned when Submit is called while a cycle is pending.
// The controller owns exactly one processing slot.
var ErrBusy = errors.New("a photo is already processing")

// Per-tick progress increment is uniform in [incrementFloor,
// incrementFloor+incrementSpread).
const (
	incrementFloor  = 5.0
	incrementSpread = 15.0
)

// Option configures optional Controller behavior.
type Option func(*Controller)

// WithRandSource injects the increment source so tests can pin tick counts.
func WithRandSource(fn func() float64) Option {
	return func(c *Controller) {
		c.randFloat = fn
	}
}

// WithProgressObserver registers a callback invoked with every persisted
// progress value. Used by the CLI progress bar and by tests.
func WithProgressObserver(fn func(percent float64)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// Controller turns upload requests into completed feed records through the
// simulated processing cycle: Idle -> Pending -> Finalizing -> Idle.
type Controller struct {
	cfg    *config.Config
	store  *feed.Store
	blobs  *blob.Registry
	logger *slog.Logger

	randFloat func() float64
	observer  func(float64)

	mu       sync.Mutex
	pending  *feed.Photo
	progress float64
	cancel   context.CancelFunc
	done     chan struct{}
	wg       sync.WaitGroup
}

// New constructs a controller. The store and blob registry are owned by the
// controller for the duration of the session; projections read through it.
func New(cfg *config.Config, store *feed.Store, blobs *blob.Registry, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		cfg:       cfg,
		store:     store,
		blobs:     blobs,
		logger:    logging.NewComponentLogger(logger, "processor"),
		randFloat: rand.Float64,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit registers the upload's bytes, creates the pending record, and
// starts the owned tick goroutine. Returns ErrBusy while a cycle is
// in flight; the in-flight record is never disturbed.
func (c *Controller) Submit(ctx context.Context, req *upload.Request) (*feed.Photo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		return nil, ErrBusy
	}

	locator, err := c.blobs.Create(req.Data)
	if err != nil {
		return nil, fmt.Errorf("register upload: %w", err)
	}

	photo, err := c.store.NewUpload(ctx, feed.NewUploadParams{
		OriginalURL:  locator,
		FixedURL:     locator,
		Instructions: req.Instructions,
		FileSize:     req.SizeLabel(),
		Model:        c.cfg.Processing.Model,
	})
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.pending = photo
	c.progress = 0
	c.cancel = cancel
	c.done = make(chan struct{})

	c.logger.Info("processing started",
		logging.Int64("photo_id", photo.ID),
		logging.String("file", req.FileName),
		logging.String("size", photo.FileSize),
	)

	c.wg.Add(1)
	go c.runCycle(runCtx, photo, req.Data, c.done)

	return photo, nil
}

// FixAgain re-runs the pipeline on a completed record's enhanced output,
// carrying the original instructions forward. A failed locator fetch aborts
// before any state transition.
func (c *Controller) FixAgain(ctx context.Context, photo *feed.Photo) (*feed.Photo, error) {
	data, err := c.blobs.Fetch(photo.FixedURL)
	if err != nil {
		c.logger.Error("enhanced photo unavailable for fix again",
			logging.Int64("photo_id", photo.ID),
			logging.Error(err),
		)
		return nil, fmt.Errorf("fetch enhanced photo: %w", err)
	}

	req, err := upload.New(fmt.Sprintf("enhanced-photo-%d.jpg", photo.ID), data, photo.Instructions)
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx, req)
}

// ToggleFavorite flips a record's favorite flag. Feed records are
// controller-owned, so projections mutate through this entry point.
func (c *Controller) ToggleFavorite(ctx context.Context, id int64) (*feed.Photo, error) {
	return c.store.ToggleFavorite(ctx, id)
}

// Progress reports the pending record and its current percentage, or nil
// when the controller is idle.
func (c *Controller) Progress() (*feed.Photo, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending, c.progress
}

// Wait blocks until the current cycle publishes or ctx is done. Returns
// immediately when idle.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Close cancels any in-flight cycle and waits for the tick goroutine to
// exit, so no callback can touch state after teardown.
func (c *Controller) Close() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

func (c *Controller) runCycle(ctx context.Context, photo *feed.Photo, data []byte, done chan struct{}) {
	defer c.wg.Done()
	defer close(done)

	ticker := time.NewTicker(c.cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if c.advance(ctx, photo.ID) >= 100 {
			break
		}
	}
	ticker.Stop()

	// Grace delay between reaching 100% and publishing, so a completion
	// animation can play against the full bar.
	grace := time.NewTimer(c.cfg.GraceDelay())
	defer grace.Stop()
	select {
	case <-ctx.Done():
		return
	case <-grace.C:
	}

	c.finalize(ctx, photo, data)
}

func (c *Controller) advance(ctx context.Context, id int64) float64 {
	c.mu.Lock()
	percent := c.progress + c.randFloat()*incrementSpread + incrementFloor
	if percent > 100 {
		percent = 100
	}
	c.progress = percent
	observer := c.observer
	c.mu.Unlock()

	if err := c.store.UpdateProgress(ctx, id, percent); err != nil {
		c.logger.Warn("persist progress failed",
			logging.Int64("photo_id", id),
			logging.Error(err),
		)
	}
	if observer != nil {
		observer(percent)
	}
	return percent
}

func (c *Controller) finalize(ctx context.Context, photo *feed.Photo, data []byte) {
	dimensions, err := imagemeta.Dimensions(data)
	if err != nil {
		c.logger.Warn("dimension probe failed",
			logging.Int64("photo_id", photo.ID),
			logging.Error(err),
		)
		dimensions = imagemeta.UnknownDimensions
	}

	published, err := c.store.MarkCompleted(ctx, photo.ID, dimensions)

	c.mu.Lock()
	c.pending = nil
	c.progress = 0
	c.cancel = nil
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("publish failed",
			logging.Int64("photo_id", photo.ID),
			logging.Error(err),
		)
		return
	}
	if published != nil {
		c.logger.Info("photo published",
			logging.Int64("photo_id", published.ID),
			logging.String("dimensions", published.Dimensions),
		)
	}
}
