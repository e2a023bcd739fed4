package imageio

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a pixel buffer whose length is not
	// width*height.
	ErrDimensionMismatch = errors.New("imageio: buffer length does not match dimensions")

	// ErrUnknownFormat indicates an output format that cannot be encoded.
	ErrUnknownFormat = errors.New("imageio: unknown image format")
)

// WriteError reports a failure to create or write the destination file.
type WriteError struct {
	Op      string
	Path    string
	Wrapped error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("imageio: %s %s: %v", e.Op, e.Path, e.Wrapped)
}

func (e *WriteError) Unwrap() error {
	return e.Wrapped
}
