// Package screenshot writes rendered frames to image files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// Format is an output image format.
type Format string

// Supported formats.
const (
	PNG Format = "png"
	BMP Format = "bmp"
)

// ParseFormat accepts a format name or a file extension with or without the
// leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", string(f))
	}
}

// FromPixels builds an image from bottom-up RGBA rows as returned by
// glReadPixels, flipping it so the first row is the top of the picture.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	return img, nil
}

// Capture names and writes screenshots into a directory.
type Capture struct {
	outputDir string
	prefix    string
	format    Format
	now       func() time.Time
}

// NewCapture creates a capture handler. An empty outputDir writes to the
// working directory.
func NewCapture(outputDir, prefix string, format Format) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}
}

// Filename generates a timestamped screenshot path without saving.
func (c *Capture) Filename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("%s_%s%s", c.prefix, timestamp, c.format.Ext())
	if c.outputDir != "" {
		name = filepath.Join(c.outputDir, name)
	}
	return name
}

// Save writes img under a generated name and returns the path.
func (c *Capture) Save(img image.Image) (string, error) {
	path := c.Filename()
	if err := writeFile(path, img, c.format); err != nil {
		return "", err
	}
	return path, nil
}

// SaveAs writes img to path, choosing the format from its extension. A path
// without a known extension gets the capture's default format appended.
func (c *Capture) SaveAs(path string, img image.Image) (string, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		format = c.format
		path += format.Ext()
	}
	if err := writeFile(path, img, format); err != nil {
		return "", err
	}
	return path, nil
}

func writeFile(path string, img image.Image, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", strings.ToUpper(string(format)), err)
	}
	return file.Close()
}
