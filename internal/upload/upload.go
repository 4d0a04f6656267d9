// Package upload captures user-submitted images at the session boundary.
// It is pure input capture: MIME validation and labeling happen here, the
// lifecycle itself belongs to the processor.
package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"photofix/internal/feed"
)

// ErrNotImage is returned for files whose sniffed type is not image/*.
var ErrNotImage = errors.New("file is not an image")

// Request is a validated upload: the bytes to process plus the optional
// free-text instructions carried through the whole cycle.
type Request struct {
	FileName     string
	ContentType  string
	Instructions string
	Data         []byte
}

// New validates data as an image and builds a Request. Instructions are
// optional and unconstrained.
func New(fileName string, data []byte, instructions string) (*Request, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNotImage, fileName)
	}
	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, fmt.Errorf("%w: %s detected as %s", ErrNotImage, fileName, detected.String())
	}
	return &Request{
		FileName:     fileName,
		ContentType:  detected.String(),
		Instructions: strings.TrimSpace(instructions),
		Data:         data,
	}, nil
}

// FromFile reads path and builds a validated Request from its contents.
func FromFile(path, instructions string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return New(filepath.Base(path), data, instructions)
}

// SizeLabel renders the upload's byte size the way the feed displays it.
func (r *Request) SizeLabel() string {
	return feed.FileSizeLabel(int64(len(r.Data)))
}
