// Package share hands a record locator to the platform's share capability,
// falling back to a clipboard copy when native sharing is unavailable.
// Every failure here is benign: it is logged and the feed state is never
// touched.
package share

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"photofix/internal/logging"
)

// Native is the platform share capability. It is optional; a nil Native
// routes every share through the clipboard fallback.
type Native interface {
	Share(ctx context.Context, url string) error
}

// Clipboard receives the fallback copy.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// Method identifies which channel served a share.
type Method string

const (
	MethodNative    Method = "native"
	MethodClipboard Method = "clipboard"
	MethodNone      Method = "none"
)

// Service routes share requests.
type Service struct {
	native    Native
	clipboard Clipboard
	logger    *slog.Logger
}

// NewService constructs a share service. Either collaborator may be nil.
func NewService(native Native, clipboard Clipboard, logger *slog.Logger) *Service {
	return &Service{
		native:    native,
		clipboard: clipboard,
		logger:    logging.NewComponentLogger(logger, "share"),
	}
}

// Share attempts the native capability first and falls back to the
// clipboard. It reports which channel served the request; failures are
// logged and never propagate.
func (s *Service) Share(ctx context.Context, url string) Method {
	if s.native != nil {
		err := s.native.Share(ctx, url)
		if err == nil {
			return MethodNative
		}
		// A rejected native share (user cancel, unsupported platform) is
		// expected; fall through to the clipboard.
		s.logger.Debug("native share declined", logging.Error(err))
	}

	if s.clipboard != nil {
		if err := s.clipboard.Copy(ctx, url); err != nil {
			s.logger.Warn("clipboard copy failed", logging.Error(err))
			return MethodNone
		}
		return MethodClipboard
	}

	s.logger.Warn("no share channel available")
	return MethodNone
}

// WriterClipboard copies shared links to an io.Writer. The CLI uses it to
// surface the link on standard output.
type WriterClipboard struct {
	W io.Writer
}

// Copy writes the text followed by a newline.
func (c WriterClipboard) Copy(_ context.Context, text string) error {
	_, err := fmt.Fprintln(c.W, text)
	return err
}
