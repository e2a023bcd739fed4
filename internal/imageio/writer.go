// Package imageio encodes 8-bit grayscale pixel buffers as image files.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Gray wraps a row-major buffer as an image without copying it.
func Gray(pixels []byte, width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrDimensionMismatch, len(pixels), width, height)
	}
	return &image.Gray{
		Pix:    pixels,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// Encode writes pixels to w as a single-channel 8-bit image of the given
// size. Nothing is written if the buffer does not match the dimensions.
func Encode(w io.Writer, pixels []byte, width, height int, f Format) error {
	img, err := Gray(pixels, width, height)
	if err != nil {
		return err
	}

	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return f.check()
}

// WriteFile encodes pixels into the file at path. The image is written to a
// temporary file in the same directory and renamed into place, so path is
// either the complete image or untouched.
func WriteFile(path string, pixels []byte, width, height int, f Format) (err error) {
	if _, err := Gray(pixels, width, height); err != nil {
		return err
	}
	if err := f.check(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &WriteError{Op: "create", Path: path, Wrapped: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := Encode(bw, pixels, width, height, f); err != nil {
		return &WriteError{Op: "encode", Path: path, Wrapped: err}
	}
	if err := bw.Flush(); err != nil {
		return &WriteError{Op: "write", Path: path, Wrapped: err}
	}
	if err := tmp.Chmod(0644); err != nil {
		return &WriteError{Op: "chmod", Path: path, Wrapped: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Op: "close", Path: path, Wrapped: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &WriteError{Op: "rename", Path: path, Wrapped: err}
	}
	return nil
}

// Header is the declared geometry of an encoded image.
type Header struct {
	Format string
	Width  int
	Height int
}

// ReadHeader decodes only the header of an image stream.
func ReadHeader(r io.Reader) (Header, error) {
	cfg, name, err := image.DecodeConfig(r)
	if err != nil {
		return Header{}, err
	}
	return Header{Format: name, Width: cfg.Width, Height: cfg.Height}, nil
}

// ReadHeaderFile is ReadHeader on a file.
func ReadHeaderFile(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()
	return ReadHeader(f)
}
