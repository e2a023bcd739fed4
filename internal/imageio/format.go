package imageio

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var Formats = []Format{PNG, BMP, TIFF}

func (f Format) check() error {
	switch f {
	case PNG, BMP, TIFF:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// ParseFormat accepts a format name in any case, with "tif" as an alias of
// TIFF.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the file extension, defaulting to PNG
// when there is none.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return PNG, nil
	}
	return ParseFormat(ext)
}
