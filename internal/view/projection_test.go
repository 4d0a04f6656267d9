package view_test

import (
	"context"
	"testing"

	"photofix/internal/feed"
	"photofix/internal/testsupport"
	"photofix/internal/view"
)

func TestActiveViewDefaultsToFixed(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	projection := view.NewProjection(store)
	photo := testsupport.CompleteUpload(t, store, testsupport.NewUpload(t, store, "blob:p", "").ID)

	if got := projection.ActiveView(photo.ID); got != feed.ViewFixed {
		t.Fatalf("default view = %s, want fixed", got)
	}
	if got := projection.ActiveURL(photo); got != photo.FixedURL {
		t.Fatalf("default active url = %q, want fixed locator", got)
	}
}

func TestSelectViewSwitchesVariants(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	projection := view.NewProjection(store)
	ctx := context.Background()
	photo := testsupport.CompleteUpload(t, store, testsupport.NewUpload(t, store, "blob:p", "").ID)

	if err := projection.SelectView(ctx, photo.ID, feed.ViewOriginal); err != nil {
		t.Fatalf("SelectView: %v", err)
	}
	if got := projection.ActiveView(photo.ID); got != feed.ViewOriginal {
		t.Fatalf("view = %s, want original", got)
	}
	if got := projection.ActiveURL(photo); got != photo.OriginalURL {
		t.Fatalf("active url = %q, want original locator", got)
	}
}

func TestSelectVideoWithoutVariantIsNoOp(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	projection := view.NewProjection(store)
	ctx := context.Background()
	photo := testsupport.CompleteUpload(t, store, testsupport.NewUpload(t, store, "blob:p", "").ID)

	if err := projection.SelectView(ctx, photo.ID, feed.ViewOriginal); err != nil {
		t.Fatalf("SelectView: %v", err)
	}
	if err := projection.SelectView(ctx, photo.ID, feed.ViewVideo); err != nil {
		t.Fatalf("SelectView video: %v", err)
	}
	if got := projection.ActiveView(photo.ID); got != feed.ViewOriginal {
		t.Fatalf("video selection without a variant changed the view to %s", got)
	}
}

func TestSelectVideoWithVariant(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	projection := view.NewProjection(store)
	ctx := context.Background()

	sample, err := store.InsertSample(ctx, feed.SampleParams{
		OriginalURL:    "blob:s",
		FixedURL:       "blob:s",
		VideoURL:       "blob:v",
		TimestampLabel: "1 hour ago",
		Dimensions:     "800x600",
		FileSize:       "2.0 MB",
		Model:          "Context Pro",
	})
	if err != nil {
		t.Fatalf("InsertSample: %v", err)
	}

	if err := projection.SelectView(ctx, sample.ID, feed.ViewVideo); err != nil {
		t.Fatalf("SelectView: %v", err)
	}
	if got := projection.ActiveURL(sample); got != "blob:v" {
		t.Fatalf("active url = %q, want video locator", got)
	}
}

func TestSelectViewUnknownIDIsNoOp(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	projection := view.NewProjection(store)

	if err := projection.SelectView(context.Background(), 777, feed.ViewOriginal); err != nil {
		t.Fatalf("SelectView: %v", err)
	}
	if got := projection.ActiveView(777); got != feed.ViewFixed {
		t.Fatalf("unknown id selection took effect: %s", got)
	}
}

func TestFullscreenSingleSlot(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	projection := view.NewProjection(store)
	ctx := context.Background()
	first := testsupport.CompleteUpload(t, store, testsupport.NewUpload(t, store, "blob:a", "").ID)
	second := testsupport.CompleteUpload(t, store, testsupport.NewUpload(t, store, "blob:b", "").ID)

	if _, open := projection.Fullscreen(); open {
		t.Fatal("fullscreen should start closed")
	}
	projection.CloseFullscreen() // closing with nothing open is a no-op

	if err := projection.OpenFullscreen(ctx, first.ID); err != nil {
		t.Fatalf("OpenFullscreen: %v", err)
	}
	if err := projection.OpenFullscreen(ctx, second.ID); err != nil {
		t.Fatalf("OpenFullscreen: %v", err)
	}
	id, open := projection.Fullscreen()
	if !open || id != second.ID {
		t.Fatalf("fullscreen = (%d, %v), want last writer %d", id, open, second.ID)
	}

	projection.CloseFullscreen()
	if _, open := projection.Fullscreen(); open {
		t.Fatal("fullscreen should be closed")
	}
}

func TestFavoritesOnlyFilter(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	projection := view.NewProjection(store)
	ctx := context.Background()

	var ids []int64
	for range 3 {
		photo := testsupport.CompleteUpload(t, store, testsupport.NewUpload(t, store, "blob:f", "").ID)
		ids = append(ids, photo.ID)
	}
	if _, err := store.ToggleFavorite(ctx, ids[2]); err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}

	projection.SetFavoritesOnly(true)
	photos, err := projection.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(photos) != 1 || photos[0].ID != ids[2] {
		t.Fatalf("favorites projection = %#v, want only %d", photos, ids[2])
	}

	projection.SetFavoritesOnly(false)
	photos, err = projection.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(photos) != 3 {
		t.Fatalf("full projection has %d records, want 3", len(photos))
	}
}
