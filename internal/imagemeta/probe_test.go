package imagemeta_test

import (
	"testing"

	"photofix/internal/imagemeta"
	"photofix/internal/testsupport"
)

func TestDimensions(t *testing.T) {
	data := testsupport.ImageBytes(t, 640, 480)

	got, err := imagemeta.Dimensions(data)
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if got != "640x480" {
		t.Fatalf("Dimensions = %q, want 640x480", got)
	}
}

func TestDimensionsRejectsGarbage(t *testing.T) {
	if _, err := imagemeta.Dimensions([]byte("definitely not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}
