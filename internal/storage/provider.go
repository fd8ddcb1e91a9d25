// Package storage persists generated documents and resource files.
package storage

// Provider is the interface for workspace file operations.
// Relative paths resolve against the provider root; absolute paths are used as-is.
type Provider interface {
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically replaces the file at path with content.
	Write(path string, content []byte) error
	// Exists reports whether a file or directory is present at path.
	Exists(path string) (bool, error)
	// Abs returns the absolute location of path.
	Abs(path string) string
}
