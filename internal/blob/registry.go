// Package blob maps opaque locators to session-scoped files. A locator plays
// the role an object URL plays in a browser: it is minted when bytes enter
// the session, stays resolvable until the session directory is cleared, and
// carries no meaning outside the session.
package blob

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"photofix/internal/config"
)

// Scheme prefixes every locator minted by a Registry.
const Scheme = "blob:"

// ErrNotFound is returned when a locator does not resolve in this session.
var ErrNotFound = errors.New("blob not found")

// Registry stores blobs under the session directory.
type Registry struct {
	dir string
}

// Open prepares the session blob directory.
func Open(cfg *config.Config) (*Registry, error) {
	dir := filepath.Join(cfg.Paths.SessionDir, "blobs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob directory: %w", err)
	}
	return &Registry{dir: dir}, nil
}

// Create stores data and mints a locator for it.
func (r *Registry) Create(data []byte) (string, error) {
	id := uuid.NewString()
	if err := os.WriteFile(filepath.Join(r.dir, id), data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return Scheme + id, nil
}

// Fetch resolves a locator to its bytes.
func (r *Registry) Fetch(locator string) ([]byte, error) {
	path, err := r.path(locator)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, locator)
		}
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

func (r *Registry) path(locator string) (string, error) {
	id, ok := strings.CutPrefix(locator, Scheme)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: invalid locator %q", ErrNotFound, locator)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: invalid locator %q", ErrNotFound, locator)
	}
	return filepath.Join(r.dir, id), nil
}
