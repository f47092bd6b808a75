package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return img
}

func TestCaptureFromPixelsWritesPNG(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")

	pixels := []uint32{0xFF0000, 0x00FF00, 0x0000FF, 0x102030}
	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}

	img := decodePNG(t, path)
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("got %dx%d image, want 2x2", b.Dx(), b.Dy())
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 0xFF || g>>8 != 0 || b>>8 != 0 || a>>8 != 0xFF {
		t.Errorf("pixel (0,0) = %02x%02x%02x, want red", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(1, 1).RGBA()
	if r>>8 != 0x10 || g>>8 != 0x20 || b>>8 != 0x30 {
		t.Errorf("pixel (1,1) = %02x%02x%02x, want 102030", r>>8, g>>8, b>>8)
	}
}

func TestCaptureIndexedNamesFramesInSequence(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "frame")

	pixels := make([]uint32, 4)
	for i := 0; i < 3; i++ {
		path, err := sc.CaptureIndexed(pixels, 2, 2, i)
		if err != nil {
			t.Fatalf("CaptureIndexed(%d): %v", i, err)
		}
		want := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		if path != want {
			t.Errorf("frame %d written to %s, want %s", i, path, want)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("frame %d missing: %v", i, err)
		}
	}
}

func TestCaptureRejectsShortPixelBuffer(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")
	if _, err := sc.CaptureFromPixels(make([]uint32, 3), 2, 2); err == nil {
		t.Error("CaptureFromPixels accepted a short buffer")
	}
	if _, err := sc.CaptureIndexed(make([]uint32, 3), 2, 2, 0); err == nil {
		t.Error("CaptureIndexed accepted a short buffer")
	}
}

func TestCaptureFromImage(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "img")

	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(2, 1, color.RGBA{R: 7, G: 8, B: 9, A: 255})

	path, err := sc.CaptureFromImage(src)
	if err != nil {
		t.Fatalf("CaptureFromImage: %v", err)
	}

	img := decodePNG(t, path)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("got %dx%d image, want 3x2", b.Dx(), b.Dy())
	}
	r, g, b, _ := img.At(2, 1).RGBA()
	if r>>8 != 7 || g>>8 != 8 || b>>8 != 9 {
		t.Errorf("pixel (2,1) = %d %d %d, want 7 8 9", r>>8, g>>8, b>>8)
	}
}

func TestGenerateFilenameUsesPrefixAndDir(t *testing.T) {
	sc := NewScreenshotCapture("out", "shot")
	name := sc.GenerateFilename()
	if filepath.Dir(name) != "out" {
		t.Errorf("filename %s not under output dir", name)
	}
	base := filepath.Base(name)
	if !strings.HasPrefix(base, "shot_") || !strings.HasSuffix(base, ".png") {
		t.Errorf("filename %s does not match shot_<timestamp>.png", base)
	}
}

func TestCaptureCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures", "nested")
	sc := NewScreenshotCapture(dir, "shot")
	if _, err := sc.CaptureIndexed(make([]uint32, 1), 1, 1, 0); err != nil {
		t.Fatalf("CaptureIndexed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}
