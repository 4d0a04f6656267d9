package main

import (
	"strings"
	"testing"
	"time"

	"photofix/internal/feed"
)

func TestDisplayTitle(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"remove the background noise", "Remove The Background Noise"},
		{"", "(no instructions)"},
		{"Brighten", "Brighten"},
	}
	for _, tc := range cases {
		if got := displayTitle(tc.input); got != tc.want {
			t.Errorf("displayTitle(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParsePhotoID(t *testing.T) {
	id, err := parsePhotoID("12")
	if err != nil {
		t.Fatalf("parsePhotoID(12) returned error: %v", err)
	}
	if id != 12 {
		t.Fatalf("parsePhotoID(12) = %d", id)
	}

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		if _, err := parsePhotoID(bad); err == nil {
			t.Errorf("parsePhotoID(%q) accepted invalid id", bad)
		}
	}
}

func TestYesNo(t *testing.T) {
	if yesNo(true) != "yes" || yesNo(false) != "no" {
		t.Fatal("yesNo returned unexpected labels")
	}
}

func TestRenderFeedTableShowsProgressOnPendingRows(t *testing.T) {
	now := time.Now().UTC()
	photos := []*feed.Photo{
		{
			ID:              2,
			Origin:          feed.OriginUpload,
			Status:          feed.StatusPending,
			Instructions:    "fix the lighting",
			TimestampLabel:  feed.ProcessingLabel,
			Dimensions:      "",
			FileSize:        "2.4 MB",
			Model:           "Kontext Pro",
			ProgressPercent: 37.5,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:             1,
			Origin:         feed.OriginSample,
			Status:         feed.StatusCompleted,
			Instructions:   "enhance colors and sharpness",
			TimestampLabel: "2 hours ago",
			Dimensions:     "800x600",
			FileSize:       "2.4 MB",
			Model:          "Context Pro",
			Favorited:      true,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	rendered := renderFeedTable(photos)
	if !strings.Contains(rendered, "Processing... 37%") {
		t.Errorf("pending row missing progress label:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Enhance Colors And Sharpness") {
		t.Errorf("completed row missing title-cased instructions:\n%s", rendered)
	}
	if !strings.Contains(rendered, "2 hours ago") {
		t.Errorf("completed row missing timestamp label:\n%s", rendered)
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if got := renderTable(nil, nil); got != "" {
		t.Errorf("renderTable with no headers = %q", got)
	}
}
