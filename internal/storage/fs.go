package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/starford/mokares/internal/apperr"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path of the workspace
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, apperr.NewIO("stat", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Abs resolves path against the workspace root.
func (f *FS) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(f.root, filepath.Clean(path))
}

// Read returns the raw bytes of a workspace file.
func (f *FS) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(f.Abs(path))
	if err != nil {
		return nil, apperr.NewIO("read", path, err)
	}
	return data, nil
}

// Exists reports whether anything is present at path.
func (f *FS) Exists(path string) (bool, error) {
	_, err := os.Stat(f.Abs(path))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, apperr.NewIO("stat", path, err)
	}
}

// Write atomically writes content: tmp file → fsync → rename.
// Readers never observe a partially written file.
func (f *FS) Write(path string, content []byte) error {
	abs := f.Abs(path)
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperr.NewIO("mkdir", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".mokares-tmp-*")
	if err != nil {
		return apperr.NewIO("create temp", dir, err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return apperr.NewIO("write", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return apperr.NewIO("fsync", path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperr.NewIO("close", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return apperr.NewIO("chmod", path, err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return apperr.NewIO("rename", path, err)
	}
	success = true
	return nil
}

// WriteNew writes content only if nothing exists at path yet.
func WriteNew(p Provider, path string, content []byte) error {
	ok, err := p.Exists(path)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("storage: %s: %w", path, apperr.ErrAlreadyExists)
	}
	return p.Write(path, content)
}
