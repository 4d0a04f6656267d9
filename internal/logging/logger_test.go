package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"photofix/internal/config"
	"photofix/internal/logging"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfigWritesSessionLog(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Logging.Format = "json"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("session started", logging.String("component", "test"))

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "photofix.log"))
	if err != nil {
		t.Fatalf("read session log: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Fatalf("session log missing record: %s", data)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	// Must not panic and must report disabled at all levels.
	logger.Error("ignored")
	if logger.Enabled(t.Context(), 0) {
		t.Fatal("nop logger should be disabled")
	}
}
