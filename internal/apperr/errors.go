// Package apperr defines the error taxonomy shared by the indexing core.
package apperr

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrIO            = errors.New("io error")
	ErrOutsideRoot   = errors.New("outside workspace root")
)

// IOError reports a filesystem read, write or traversal failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIO wraps err as an IOError. A nil err yields nil.
func NewIO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is matches ErrIO, and ErrNotFound when the underlying error is
// fs.ErrNotExist.
func (e *IOError) Is(target error) bool {
	switch target {
	case ErrIO:
		return true
	case ErrNotFound:
		return errors.Is(e.Err, fs.ErrNotExist)
	}
	return false
}
