// Package samples seeds a fresh session with the sample gallery shown
// before any real upload exists. Each sample gets a generated placeholder
// image registered in the blob registry so download, share, and fix-again
// work on seeded records the same way they work on uploads.
package samples

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"github.com/disintegration/imaging"

	"photofix/internal/blob"
	"photofix/internal/feed"
)

// SampleModel is the backend label carried by the seeded gallery.
const SampleModel = "Context Pro"

type sample struct {
	instructions   string
	timestampLabel string
	fileSize       string
	hasVideo       bool
	tint           color.NRGBA
}

var gallery = []sample{
	{"Restore Family Photo Portrait from 1940s", "2 minutes ago", "2.1 MB", false, color.NRGBA{R: 168, G: 144, B: 112, A: 255}},
	{"Colorize and Repair Wedding Photo", "15 minutes ago", "1.8 MB", true, color.NRGBA{R: 196, G: 176, B: 188, A: 255}},
	{"Remove Spots and Enhance Clarity", "1 hour ago", "2.3 MB", false, color.NRGBA{R: 120, G: 136, B: 152, A: 255}},
	{"Restore Children's School Photo", "2 hours ago", "1.9 MB", false, color.NRGBA{R: 148, G: 160, B: 128, A: 255}},
	{"Enhance Military Portrait", "3 hours ago", "2.0 MB", true, color.NRGBA{R: 104, G: 112, B: 96, A: 255}},
	{"Restore Graduation Photo", "1 day ago", "1.7 MB", false, color.NRGBA{R: 88, G: 96, B: 128, A: 255}},
	{"Fix Family Reunion Photo", "2 days ago", "2.4 MB", false, color.NRGBA{R: 176, G: 152, B: 136, A: 255}},
	{"Colorize Vintage Couple Portrait", "3 days ago", "2.2 MB", true, color.NRGBA{R: 160, G: 132, B: 120, A: 255}},
}

const (
	sampleWidth  = 800
	sampleHeight = 600
)

// Seed inserts the sample gallery into an empty feed. Sessions that already
// hold records are left untouched.
func Seed(ctx context.Context, store *feed.Store, blobs *blob.Registry) error {
	summary, err := store.Stats(ctx)
	if err != nil {
		return err
	}
	if summary.Total > 0 {
		return nil
	}

	for _, s := range gallery {
		data, err := renderPlaceholder(s.tint)
		if err != nil {
			return fmt.Errorf("render sample %q: %w", s.instructions, err)
		}
		locator, err := blobs.Create(data)
		if err != nil {
			return fmt.Errorf("register sample %q: %w", s.instructions, err)
		}
		videoURL := ""
		if s.hasVideo {
			videoURL = locator
		}
		if _, err := store.InsertSample(ctx, feed.SampleParams{
			OriginalURL:    locator,
			FixedURL:       locator,
			VideoURL:       videoURL,
			Instructions:   s.instructions,
			TimestampLabel: s.timestampLabel,
			Dimensions:     fmt.Sprintf("%dx%d", sampleWidth, sampleHeight),
			FileSize:       s.fileSize,
			Model:          SampleModel,
		}); err != nil {
			return fmt.Errorf("seed sample %q: %w", s.instructions, err)
		}
	}
	return nil
}

func renderPlaceholder(tint color.NRGBA) ([]byte, error) {
	img := imaging.New(sampleWidth, sampleHeight, tint)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
