package blob_test

import (
	"bytes"
	"errors"
	"testing"

	"photofix/internal/blob"
	"photofix/internal/testsupport"
)

func TestCreateFetchRoundTrip(t *testing.T) {
	registry := testsupport.MustOpenRegistry(t, testsupport.NewConfig(t))

	payload := []byte("not really a photo")
	locator, err := registry.Create(payload)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if locator == "" || locator[:len(blob.Scheme)] != blob.Scheme {
		t.Fatalf("unexpected locator %q", locator)
	}

	got, err := registry.Fetch(locator)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("fetched bytes differ: %q", got)
	}
}

func TestFetchUnknownLocator(t *testing.T) {
	registry := testsupport.MustOpenRegistry(t, testsupport.NewConfig(t))

	for _, locator := range []string{
		"blob:0b7aa2a1-9f3c-4c43-8d6a-000000000000",
		"blob:notauuid",
		"http://example.com/photo.jpg",
		"",
	} {
		_, err := registry.Fetch(locator)
		if !errors.Is(err, blob.ErrNotFound) {
			t.Fatalf("Fetch(%q) = %v, want ErrNotFound", locator, err)
		}
	}
}
