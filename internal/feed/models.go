package feed

import (
	"fmt"
	"strings"
	"time"
)

// Status represents the lifecycle of a photo record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Origin distinguishes user uploads from the seeded sample gallery.
type Origin string

const (
	OriginUpload Origin = "upload"
	OriginSample Origin = "sample"
)

// View selects which image variant of a record is displayed.
type View string

const (
	ViewOriginal View = "original"
	ViewFixed    View = "fixed"
	ViewVideo    View = "video"
)

// ParseView converts a string into a known View.
func ParseView(value string) (View, bool) {
	switch View(strings.ToLower(strings.TrimSpace(value))) {
	case ViewOriginal:
		return ViewOriginal, true
	case ViewFixed:
		return ViewFixed, true
	case ViewVideo:
		return ViewVideo, true
	default:
		return "", false
	}
}

// Display labels used across the record lifecycle.
const (
	ProcessingLabel = "Processing..."
	JustNowLabel    = "Just now"
)

// Photo represents one upload-to-result cycle persisted in the session store.
//
// FixedURL equals OriginalURL until a real enhancement backend exists; the
// simulated cycle republishes the uploaded bytes. VideoURL is empty unless an
// animated variant exists (seeded samples only, for now).
type Photo struct {
	ID              int64
	Origin          Origin
	Status          Status
	OriginalURL     string
	FixedURL        string
	VideoURL        string
	Instructions    string
	TimestampLabel  string
	Dimensions      string
	FileSize        string
	Model           string
	Favorited       bool
	ProgressPercent float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPending reports whether the record is mid-processing.
func (p Photo) IsPending() bool {
	return p.Status == StatusPending
}

// HasVideo reports whether an animated variant exists for the record.
func (p Photo) HasVideo() bool {
	return strings.TrimSpace(p.VideoURL) != ""
}

// VariantURL resolves the locator for a view. The second return is false when
// the variant does not exist on this record.
func (p Photo) VariantURL(view View) (string, bool) {
	switch view {
	case ViewOriginal:
		return p.OriginalURL, true
	case ViewFixed:
		return p.FixedURL, true
	case ViewVideo:
		if !p.HasVideo() {
			return "", false
		}
		return p.VideoURL, true
	default:
		return "", false
	}
}

// FileSizeLabel renders a byte count the way the feed displays it: megabytes
// rounded to one decimal place.
func FileSizeLabel(bytes int64) string {
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}
