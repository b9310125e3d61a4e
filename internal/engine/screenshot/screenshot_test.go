package screenshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

// bottomUp returns 2x3 pixels where each row is filled with its GL row index.
func bottomUp() []byte {
	pixels := make([]byte, 2*3*4)
	for row := 0; row < 3; row++ {
		for x := 0; x < 2; x++ {
			i := (row*2 + x) * 4
			pixels[i] = byte(row)
			pixels[i+3] = 255
		}
	}
	return pixels
}

func TestFromPixelsFlips(t *testing.T) {
	img, err := FromPixels(bottomUp(), 2, 3)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	// GL row 2 is the top of the picture
	for y, want := range []uint8{2, 1, 0} {
		if got := img.RGBAAt(1, y).R; got != want {
			t.Errorf("row %d: got %d, want %d", y, got, want)
		}
	}
}

func TestFromPixelsSizeMismatch(t *testing.T) {
	if _, err := FromPixels(make([]byte, 10), 2, 3); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := FromPixels(nil, 0, 3); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{".PNG", PNG, false},
		{"bmp", BMP, false},
		{".bmp", BMP, false},
		{"jpg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeDecodes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 2, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	var buf bytes.Buffer
	if err := Encode(&buf, img, PNG); err != nil {
		t.Fatalf("Encode PNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if r, _, _, _ := decoded.At(1, 2).RGBA(); r>>8 != 200 {
		t.Errorf("PNG pixel red = %d, want 200", r>>8)
	}

	buf.Reset()
	if err := Encode(&buf, img, BMP); err != nil {
		t.Fatalf("Encode BMP: %v", err)
	}
	decoded, err = bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	if decoded.Bounds().Dx() != 4 {
		t.Errorf("BMP width = %d, want 4", decoded.Bounds().Dx())
	}

	if err := Encode(&buf, img, Format("gif")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestCaptureFilename(t *testing.T) {
	c := NewCapture("shots", "lathe", BMP)
	c.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC) }

	want := filepath.Join("shots", "lathe_2024-03-09_14-05-06.bmp")
	if got := c.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestCaptureSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "renders")
	c := NewCapture(dir, "lathe", PNG)

	img, err := FromPixels(bottomUp(), 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	path, err := c.Save(img)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(path, dir) || filepath.Ext(path) != ".png" {
		t.Errorf("unexpected path %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}
}

func TestCaptureSaveAs(t *testing.T) {
	dir := t.TempDir()
	c := NewCapture(dir, "lathe", PNG)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	path, err := c.SaveAs(filepath.Join(dir, "vase.bmp"), img)
	if err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if _, err := bmp.Decode(f); err != nil {
		t.Errorf("expected a BMP file: %v", err)
	}

	path, err = c.SaveAs(filepath.Join(dir, "vase"), img)
	if err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("expected default extension, got %q", path)
	}
}
