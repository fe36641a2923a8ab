// Package imageio loads and saves the raster images a paint canvas and its
// fill patterns are made of.
//
// PNG, JPEG, BMP, TIFF and WebP are decoded; only PNG is written.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when a file extension names a format that
// cannot be written.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

type decodeFunc func(io.Reader) (image.Image, error)

var decoders = map[string]decodeFunc{
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
}

// Load decodes the image stored at path. The decoder is chosen by file
// extension; unknown extensions fall back to content sniffing.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ext := strings.ToLower(filepath.Ext(path))
	if dec, ok := decoders[ext]; ok {
		img, err := dec(f)
		if err != nil {
			return nil, fmt.Errorf("imageio: decode %s: %w", strings.TrimPrefix(ext, "."), err)
		}
		return ToNRGBA(img), nil
	}
	return Decode(f)
}

// Decode decodes an image from r, detecting the format from its content.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return ToNRGBA(img), nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != "" && ext != ".png" {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodePNG encodes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// ToNRGBA converts img to a non-premultiplied RGBA image with its origin at
// (0, 0).
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	if src, ok := img.(*image.NRGBA); ok {
		for y := range height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], src.Pix[start:start+width*4])
		}
		return dst
	}

	for y := range height {
		for x := range width {
			dst.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return dst
}
