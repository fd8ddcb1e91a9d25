package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/mokares/internal/apperr"
)

// Confined is a Provider that only accepts relative paths staying inside
// the root of the wrapped FS. It backs surfaces driven by untrusted input.
type Confined struct {
	fs *FS
}

// Confine restricts f to its root directory.
func Confine(f *FS) *Confined {
	return &Confined{fs: f}
}

// safePath resolves a relative path against the root and rejects any
// result that escapes it (directory traversal).
func (c *Confined) safePath(rel string) (string, error) {
	root := c.fs.root
	if rel == "" {
		return root, nil
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s: %w", rel, apperr.ErrOutsideRoot)
	}
	abs := filepath.Join(root, cleaned)
	// Ensure the resolved path is still under root.
	if !strings.HasPrefix(abs, root+string(os.PathSeparator)) && abs != root {
		return "", fmt.Errorf("storage: path escapes workspace root: %s: %w", rel, apperr.ErrOutsideRoot)
	}
	return abs, nil
}

// Read implements Provider.
func (c *Confined) Read(path string) ([]byte, error) {
	abs, err := c.safePath(path)
	if err != nil {
		return nil, err
	}
	return c.fs.Read(abs)
}

// Write implements Provider.
func (c *Confined) Write(path string, content []byte) error {
	abs, err := c.safePath(path)
	if err != nil {
		return err
	}
	return c.fs.Write(abs, content)
}

// Exists implements Provider.
func (c *Confined) Exists(path string) (bool, error) {
	abs, err := c.safePath(path)
	if err != nil {
		return false, err
	}
	return c.fs.Exists(abs)
}

// Abs returns the location path would resolve to. Paths escaping the root
// resolve to the root itself.
func (c *Confined) Abs(path string) string {
	abs, err := c.safePath(path)
	if err != nil {
		return c.fs.root
	}
	return abs
}
