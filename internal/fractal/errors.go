package fractal

import "errors"

// Validation errors for render inputs.
var (
	// ErrEmptyBounds indicates a raster with a zero or negative dimension.
	ErrEmptyBounds = errors.New("fractal: bounds must be positive")

	// ErrDegenerateViewport indicates corners that do not describe a
	// correctly oriented, non-empty rectangle.
	ErrDegenerateViewport = errors.New("fractal: degenerate viewport")

	// ErrLimit indicates a non-positive iteration limit.
	ErrLimit = errors.New("fractal: iteration limit must be positive")
)
