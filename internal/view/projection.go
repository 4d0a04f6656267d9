// Package view projects the session feed for presentation. It owns the
// per-record display state (variant selection, fullscreen slot, favorites
// filter) and keeps it strictly apart from the controller-owned records:
// nothing here mutates a feed row.
package view

import (
	"context"
	"sync"

	"photofix/internal/feed"
)

// Reader is the slice of the feed store the projection consumes.
type Reader interface {
	GetByID(ctx context.Context, id int64) (*feed.Photo, error)
	List(ctx context.Context, opts feed.ListOptions) ([]*feed.Photo, error)
}

// Projection tracks ephemeral display state keyed by record id.
type Projection struct {
	reader Reader

	mu            sync.Mutex
	selections    map[int64]feed.View
	fullscreenID  int64
	hasFullscreen bool
	favoritesOnly bool
}

// NewProjection constructs a projection over the given feed reader.
func NewProjection(reader Reader) *Projection {
	return &Projection{
		reader:     reader,
		selections: make(map[int64]feed.View),
	}
}

// SelectView records the displayed variant for a record. Selecting video on
// a record without an animated variant, or selecting for an unknown id, is a
// no-op: the previous selection stays in effect.
func (p *Projection) SelectView(ctx context.Context, id int64, view feed.View) error {
	if _, ok := feed.ParseView(string(view)); !ok {
		return nil
	}
	photo, err := p.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if photo == nil {
		return nil
	}
	if view == feed.ViewVideo && !photo.HasVideo() {
		return nil
	}

	p.mu.Lock()
	p.selections[id] = view
	p.mu.Unlock()
	return nil
}

// ActiveView returns the selected variant for a record, defaulting to fixed.
func (p *Projection) ActiveView(id int64) feed.View {
	p.mu.Lock()
	defer p.mu.Unlock()
	if view, ok := p.selections[id]; ok {
		return view
	}
	return feed.ViewFixed
}

// ActiveURL resolves the locator of the record's currently displayed
// variant. Download and share act on this value, never unconditionally on
// the fixed locator.
func (p *Projection) ActiveURL(photo *feed.Photo) string {
	if url, ok := photo.VariantURL(p.ActiveView(photo.ID)); ok {
		return url
	}
	return photo.FixedURL
}

// OpenFullscreen marks a record as the fullscreen presentation. At most one
// record holds the slot; opening while another is open replaces it.
func (p *Projection) OpenFullscreen(ctx context.Context, id int64) error {
	photo, err := p.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if photo == nil {
		return nil
	}

	p.mu.Lock()
	p.fullscreenID = id
	p.hasFullscreen = true
	p.mu.Unlock()
	return nil
}

// CloseFullscreen clears the fullscreen slot. Closing with nothing open is a
// no-op.
func (p *Projection) CloseFullscreen() {
	p.mu.Lock()
	p.fullscreenID = 0
	p.hasFullscreen = false
	p.mu.Unlock()
}

// Fullscreen reports the fullscreen record, if any.
func (p *Projection) Fullscreen() (int64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fullscreenID, p.hasFullscreen
}

// SetFavoritesOnly toggles the favorites-only view filter.
func (p *Projection) SetFavoritesOnly(enabled bool) {
	p.mu.Lock()
	p.favoritesOnly = enabled
	p.mu.Unlock()
}

// FavoritesOnly reports the current filter state.
func (p *Projection) FavoritesOnly() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.favoritesOnly
}

// List returns the feed in presentation order under the current filter.
func (p *Projection) List(ctx context.Context) ([]*feed.Photo, error) {
	return p.reader.List(ctx, feed.ListOptions{FavoritesOnly: p.FavoritesOnly()})
}
