package share_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"photofix/internal/logging"
	"photofix/internal/share"
)

type nativeStub struct {
	err    error
	called int
}

func (n *nativeStub) Share(context.Context, string) error {
	n.called++
	return n.err
}

type clipboardStub struct {
	err  error
	text string
}

func (c *clipboardStub) Copy(_ context.Context, text string) error {
	c.text = text
	return c.err
}

func TestShareUsesNativeWhenAvailable(t *testing.T) {
	native := &nativeStub{}
	clipboard := &clipboardStub{}
	service := share.NewService(native, clipboard, logging.NewNop())

	if got := service.Share(context.Background(), "blob:x"); got != share.MethodNative {
		t.Fatalf("method = %s, want native", got)
	}
	if clipboard.text != "" {
		t.Fatal("clipboard must not be touched when native succeeds")
	}
}

func TestShareFallsBackToClipboard(t *testing.T) {
	native := &nativeStub{err: errors.New("user dismissed the share sheet")}
	clipboard := &clipboardStub{}
	service := share.NewService(native, clipboard, logging.NewNop())

	if got := service.Share(context.Background(), "blob:x"); got != share.MethodClipboard {
		t.Fatalf("method = %s, want clipboard", got)
	}
	if clipboard.text != "blob:x" {
		t.Fatalf("clipboard received %q", clipboard.text)
	}
}

func TestShareWithoutNativeGoesStraightToClipboard(t *testing.T) {
	clipboard := &clipboardStub{}
	service := share.NewService(nil, clipboard, logging.NewNop())

	if got := service.Share(context.Background(), "blob:y"); got != share.MethodClipboard {
		t.Fatalf("method = %s, want clipboard", got)
	}
}

func TestShareClipboardFailureIsBenign(t *testing.T) {
	clipboard := &clipboardStub{err: errors.New("clipboard unavailable")}
	service := share.NewService(nil, clipboard, logging.NewNop())

	if got := service.Share(context.Background(), "blob:z"); got != share.MethodNone {
		t.Fatalf("method = %s, want none", got)
	}
}

func TestWriterClipboard(t *testing.T) {
	var sb strings.Builder
	clipboard := share.WriterClipboard{W: &sb}
	if err := clipboard.Copy(context.Background(), "blob:link"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if sb.String() != "blob:link\n" {
		t.Fatalf("wrote %q", sb.String())
	}
}
