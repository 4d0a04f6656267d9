package testsupport

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// ImageBytes renders a solid PNG of the given size for upload fixtures.
func ImageBytes(t testing.TB, width, height int) []byte {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{R: 120, G: 120, B: 160, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode fixture image: %v", err)
	}
	return buf.Bytes()
}

// WriteImageFile writes a PNG fixture into dir and returns its path.
func WriteImageFile(t testing.TB, dir string, name string, width, height int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, ImageBytes(t, width, height), 0o644); err != nil {
		t.Fatalf("write fixture image: %v", err)
	}
	return path
}
