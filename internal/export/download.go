// Package export writes feed variants out of the session, the download
// action of the feed.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"photofix/internal/blob"
	"photofix/internal/config"
	"photofix/internal/feed"
	"photofix/internal/logging"
)

// Downloader resolves a record variant and places it in the download
// directory.
type Downloader struct {
	blobs  *blob.Registry
	dir    string
	logger *slog.Logger
}

// NewDownloader constructs a downloader targeting the configured download
// directory.
func NewDownloader(cfg *config.Config, blobs *blob.Registry, logger *slog.Logger) *Downloader {
	return &Downloader{
		blobs:  blobs,
		dir:    cfg.Paths.DownloadDir,
		logger: logging.NewComponentLogger(logger, "export"),
	}
}

// Download writes the bytes behind the record's given variant and returns
// the written path. The variant must exist on the record; the caller passes
// the currently displayed view, not a hardcoded one.
func (d *Downloader) Download(ctx context.Context, photo *feed.Photo, view feed.View) (string, error) {
	locator, ok := photo.VariantURL(view)
	if !ok {
		return "", fmt.Errorf("photo %d has no %s variant", photo.ID, view)
	}

	data, err := d.blobs.Fetch(locator)
	if err != nil {
		return "", fmt.Errorf("resolve %s variant: %w", view, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	ext := mimetype.Detect(data).Extension()
	if ext == "" {
		ext = ".bin"
	}
	path := filepath.Join(d.dir, fmt.Sprintf("photofix-%d-%s%s", photo.ID, view, ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write download: %w", err)
	}

	d.logger.Info("variant downloaded",
		logging.Int64("photo_id", photo.ID),
		logging.String("view", string(view)),
		logging.String("path", path),
	)
	return path, nil
}
