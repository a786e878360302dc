// Package output writes rendered images to disk.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

var ErrUnsupportedFormat = errors.New("output: unsupported image extension")

// Write encodes img to path, choosing PNG or TIFF from the extension.
func Write(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".tif", ".tiff":
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch ext {
	case ".png":
		enc := png.Encoder{CompressionLevel: png.BestSpeed}
		err = enc.Encode(f, img)
	default:
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FrameName returns the path of animation frame i inside dir.
func FrameName(dir string, i int, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return filepath.Join(dir, fmt.Sprintf("frame_%04d%s", i, ext))
}
