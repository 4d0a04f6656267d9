package testsupport

import (
	"context"
	"testing"

	"photofix/internal/blob"
	"photofix/internal/config"
	"photofix/internal/feed"
)

// MustOpenStore opens a feed.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *feed.Store {
	t.Helper()

	store, err := feed.Open(cfg)
	if err != nil {
		t.Fatalf("feed.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustOpenRegistry opens a blob.Registry for tests.
func MustOpenRegistry(t testing.TB, cfg *config.Config) *blob.Registry {
	t.Helper()

	registry, err := blob.Open(cfg)
	if err != nil {
		t.Fatalf("blob.Open: %v", err)
	}
	return registry
}

// NewUpload creates a pending upload record for tests.
func NewUpload(t testing.TB, store *feed.Store, originalURL, instructions string) *feed.Photo {
	t.Helper()

	photo, err := store.NewUpload(context.Background(), feed.NewUploadParams{
		OriginalURL:  originalURL,
		FixedURL:     originalURL,
		Instructions: instructions,
		FileSize:     "1.0 MB",
		Model:        "Kontext Pro",
	})
	if err != nil {
		t.Fatalf("store.NewUpload: %v", err)
	}
	return photo
}

// CompleteUpload publishes a pending upload for tests.
func CompleteUpload(t testing.TB, store *feed.Store, id int64) *feed.Photo {
	t.Helper()

	photo, err := store.MarkCompleted(context.Background(), id, "800x600")
	if err != nil {
		t.Fatalf("store.MarkCompleted: %v", err)
	}
	if photo == nil {
		t.Fatalf("photo %d was not pending", id)
	}
	return photo
}
