// Package debug provides capture and overlay helpers: screenshots of
// the software framebuffer, a selection box outline, and an ecliptic
// reference grid.
package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotCapture handles screenshot capture functionality.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// CaptureFromPixels captures a screenshot from a packed 0xRRGGBB
// framebuffer, top row first.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []uint32, width, height int) (string, error) {
	if len(pixels) < width*height {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height, len(pixels))
	}
	return sc.save(imageFromPixels(pixels, width, height), sc.GenerateFilename())
}

// CaptureIndexed writes one frame of a numbered sequence, for headless
// rendering runs.
func (sc *ScreenshotCapture) CaptureIndexed(pixels []uint32, width, height, index int) (string, error) {
	if len(pixels) < width*height {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height, len(pixels))
	}

	filename := fmt.Sprintf("%s_%04d.png", sc.prefix, index)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return sc.save(imageFromPixels(pixels, width, height), filename)
}

// CaptureFromImage captures a screenshot from an existing image.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	return sc.save(img, sc.GenerateFilename())
}

// GenerateFilename generates a timestamped screenshot filename without
// saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", sc.prefix, timestamp)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

// save encodes img as PNG at filename, creating the output directory
// when needed.
func (sc *ScreenshotCapture) save(img image.Image, filename string) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// imageFromPixels unpacks a 0xRRGGBB buffer into an RGBA image.
func imageFromPixels(pixels []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(px >> 16),
				G: uint8(px >> 8),
				B: uint8(px),
				A: 255,
			})
		}
	}
	return img
}
