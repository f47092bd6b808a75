package texture

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

// tgaHeader builds an 18-byte TGA header for true-color images.
func tgaHeader(imageType byte, width, height int, bpp byte, descriptor byte) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12] = byte(width)
	h[13] = byte(width >> 8)
	h[14] = byte(height)
	h[15] = byte(height >> 8)
	h[16] = bpp
	h[17] = descriptor
	return h
}

func expectRGB(t *testing.T, img image.Image, x, y int, wantR, wantG, wantB uint8) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	if uint8(r>>8) != wantR || uint8(g>>8) != wantG || uint8(b>>8) != wantB {
		t.Errorf("pixel (%d, %d): expected (%d, %d, %d), got (%d, %d, %d)",
			x, y, wantR, wantG, wantB, r>>8, g>>8, b>>8)
	}
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1 top-to-bottom, pixels stored BGR: red then green.
	data := append(tgaHeader(2, 2, 1, 24, 0x20), 0, 0, 255, 0, 255, 0)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("expected 2x1, got %v", img.Bounds())
	}
	expectRGB(t, img, 0, 0, 255, 0, 0)
	expectRGB(t, img, 1, 0, 0, 255, 0)
}

func TestDecodeTGABottomToTop(t *testing.T) {
	// 1x2 without the top-to-bottom bit: the first stored row lands at the
	// bottom of the image.
	data := append(tgaHeader(2, 1, 2, 24, 0), 0, 0, 255, 0, 255, 0)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	expectRGB(t, img, 0, 1, 255, 0, 0)
	expectRGB(t, img, 0, 0, 0, 255, 0)
}

func TestDecodeTGARLE(t *testing.T) {
	// One RLE packet repeating a red pixel across a 2x1 image.
	data := append(tgaHeader(10, 2, 1, 24, 0x20), 0x81, 0, 0, 255)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	expectRGB(t, img, 0, 0, 255, 0, 0)
	expectRGB(t, img, 1, 0, 255, 0, 0)
}

func TestDecodeTGAErrors(t *testing.T) {
	if _, err := DecodeTGA([]byte{1, 2, 3}); err == nil {
		t.Error("expected an error for truncated data")
	}
	if _, err := DecodeTGA(tgaHeader(1, 1, 1, 24, 0)); err == nil {
		t.Error("expected an error for an unsupported image type")
	}
	if _, err := DecodeTGA(tgaHeader(2, 1, 1, 8, 0)); err == nil {
		t.Error("expected an error for 8-bit depth")
	}
}

func TestLoadTGAByExtension(t *testing.T) {
	data := append(tgaHeader(2, 2, 1, 24, 0x20), 0, 0, 255, 0, 255, 0)
	path := filepath.Join(t.TempDir(), "sky.tga")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tex, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tex.Width != 2 || tex.Height != 1 {
		t.Errorf("expected 2x1, got %dx%d", tex.Width, tex.Height)
	}
	if got := tex.Sample(0, 0); got != 0xff0000 {
		t.Errorf("expected red, got 0x%06x", got)
	}
}
