package upload_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"photofix/internal/testsupport"
	"photofix/internal/upload"
)

func TestNewAcceptsImages(t *testing.T) {
	data := testsupport.ImageBytes(t, 10, 10)

	req, err := upload.New("photo.png", data, "  brighten the sky  ")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if req.ContentType != "image/png" {
		t.Fatalf("content type = %q", req.ContentType)
	}
	if req.Instructions != "brighten the sky" {
		t.Fatalf("instructions = %q", req.Instructions)
	}
	if !bytes.Equal(req.Data, data) {
		t.Fatal("request must carry the original bytes")
	}
}

func TestNewRejectsNonImages(t *testing.T) {
	cases := map[string][]byte{
		"empty":     nil,
		"plaintext": []byte("hello, world"),
		"pdfheader": []byte("%PDF-1.4 pretend document"),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := upload.New(name, data, "")
			if !errors.Is(err, upload.ErrNotImage) {
				t.Fatalf("expected ErrNotImage, got %v", err)
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteImageFile(t, dir, "upload.png", 12, 8)

	req, err := upload.FromFile(path, "colorize")
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if req.FileName != "upload.png" {
		t.Fatalf("file name = %q", req.FileName)
	}
	if req.Instructions != "colorize" {
		t.Fatalf("instructions = %q", req.Instructions)
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := upload.FromFile("/nonexistent/photo.png", "")
	if err == nil || strings.Contains(err.Error(), "not an image") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestSizeLabelRoundsToOneDecimal(t *testing.T) {
	data := make([]byte, int(2.5*1024*1024))
	req := &upload.Request{FileName: "big.png", Data: data}
	if got := req.SizeLabel(); got != "2.5 MB" {
		t.Fatalf("SizeLabel = %q, want 2.5 MB", got)
	}
}
