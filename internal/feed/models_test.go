package feed_test

import (
	"testing"

	"photofix/internal/feed"
)

func TestFileSizeLabel(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{int64(2.5 * 1024 * 1024), "2.5 MB"},
		{1024 * 1024, "1.0 MB"},
		{512 * 1024, "0.5 MB"},
		{0, "0.0 MB"},
	}
	for _, tc := range cases {
		if got := feed.FileSizeLabel(tc.bytes); got != tc.want {
			t.Errorf("FileSizeLabel(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestParseView(t *testing.T) {
	for _, valid := range []string{"original", "fixed", "video", " Fixed "} {
		if _, ok := feed.ParseView(valid); !ok {
			t.Errorf("ParseView(%q) should succeed", valid)
		}
	}
	for _, invalid := range []string{"", "enhanced", "both"} {
		if _, ok := feed.ParseView(invalid); ok {
			t.Errorf("ParseView(%q) should fail", invalid)
		}
	}
}

func TestVariantURL(t *testing.T) {
	photo := feed.Photo{OriginalURL: "blob:a", FixedURL: "blob:b"}

	if url, ok := photo.VariantURL(feed.ViewOriginal); !ok || url != "blob:a" {
		t.Fatalf("original variant = %q, %v", url, ok)
	}
	if url, ok := photo.VariantURL(feed.ViewFixed); !ok || url != "blob:b" {
		t.Fatalf("fixed variant = %q, %v", url, ok)
	}
	if _, ok := photo.VariantURL(feed.ViewVideo); ok {
		t.Fatal("video variant must be absent without a video locator")
	}

	photo.VideoURL = "blob:c"
	if url, ok := photo.VariantURL(feed.ViewVideo); !ok || url != "blob:c" {
		t.Fatalf("video variant = %q, %v", url, ok)
	}
}
