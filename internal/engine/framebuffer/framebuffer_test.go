package framebuffer

import "testing"

func TestNewClampsDimensions(t *testing.T) {
	fb := New(0, -5)
	w, h := fb.Size()
	if w != 1 || h != 1 {
		t.Errorf("expected 1x1 framebuffer, got %dx%d", w, h)
	}
}

func TestNewClearsToDefaultBackground(t *testing.T) {
	fb := New(4, 3)
	for i, px := range fb.Pixels() {
		if px != DefaultBackground {
			t.Fatalf("pixel %d: expected 0x%06x, got 0x%06x", i, uint32(DefaultBackground), px)
		}
	}
}

func TestClearUsesConfiguredBackground(t *testing.T) {
	fb := New(2, 2)
	fb.SetBackground(0x123456)
	fb.Clear()
	for i, px := range fb.Pixels() {
		if px != 0x123456 {
			t.Fatalf("pixel %d: expected 0x123456, got 0x%06x", i, px)
		}
	}
}

func TestPointRowMajorLayout(t *testing.T) {
	fb := New(3, 2)
	fb.SetCurrentColor(0xff0000)
	fb.Point(1, 0, 0)
	fb.SetCurrentColor(0x00ff00)
	fb.Point(0, 1, 0)

	pixels := fb.Pixels()
	if pixels[1] != 0xff0000 {
		t.Errorf("expected (1,0) at index 1, got 0x%06x", pixels[1])
	}
	if pixels[3] != 0x00ff00 {
		t.Errorf("expected (0,1) at index 3, got 0x%06x", pixels[3])
	}
}

func TestPointDepthTest(t *testing.T) {
	fb := New(2, 2)

	fb.SetCurrentColor(0x111111)
	fb.Point(0, 0, 0.5)
	if fb.Pixels()[0] != 0x111111 {
		t.Fatalf("first write should land, got 0x%06x", fb.Pixels()[0])
	}

	// Farther sample loses.
	fb.SetCurrentColor(0x222222)
	fb.Point(0, 0, 0.9)
	if fb.Pixels()[0] != 0x111111 {
		t.Errorf("farther sample should be rejected, got 0x%06x", fb.Pixels()[0])
	}

	// Equal depth loses too.
	fb.Point(0, 0, 0.5)
	if fb.Pixels()[0] != 0x111111 {
		t.Errorf("equal-depth sample should be rejected, got 0x%06x", fb.Pixels()[0])
	}

	// Nearer sample wins.
	fb.SetCurrentColor(0x333333)
	fb.Point(0, 0, 0.1)
	if fb.Pixels()[0] != 0x333333 {
		t.Errorf("nearer sample should win, got 0x%06x", fb.Pixels()[0])
	}
}

func TestPointOutOfBoundsIsIgnored(t *testing.T) {
	fb := New(2, 2)
	fb.SetCurrentColor(0xffffff)
	fb.Point(-1, 0, 0)
	fb.Point(0, -1, 0)
	fb.Point(2, 0, 0)
	fb.Point(0, 2, 0)

	for i, px := range fb.Pixels() {
		if px != DefaultBackground {
			t.Errorf("pixel %d modified by out-of-bounds write: 0x%06x", i, px)
		}
	}
}

func TestImageUnpacksChannels(t *testing.T) {
	fb := New(2, 1)
	fb.SetCurrentColor(0xff8040)
	fb.Point(0, 0, 0)

	img := fb.Image()
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 0xff || g>>8 != 0x80 || b>>8 != 0x40 || a>>8 != 0xff {
		t.Errorf("expected ff8040ff, got %02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
	}

	// Untouched pixel carries the background with full alpha.
	r, g, b, a = img.At(1, 0).RGBA()
	if r>>8 != 0x00 || g>>8 != 0x00 || b>>8 != 0x11 || a>>8 != 0xff {
		t.Errorf("expected 000011ff, got %02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestResizeReallocatesAndClears(t *testing.T) {
	fb := New(2, 2)
	fb.SetCurrentColor(0xffffff)
	fb.Point(0, 0, 0)

	fb.Resize(3, 4)
	w, h := fb.Size()
	if w != 3 || h != 4 {
		t.Fatalf("expected 3x4, got %dx%d", w, h)
	}
	if len(fb.Pixels()) != 12 {
		t.Fatalf("expected 12 pixels, got %d", len(fb.Pixels()))
	}
	for i, px := range fb.Pixels() {
		if px != DefaultBackground {
			t.Errorf("pixel %d not cleared after resize: 0x%06x", i, px)
		}
	}

	// Depth plane is reset as well: a far sample lands on fresh content.
	fb.SetCurrentColor(0xabcdef)
	fb.Point(1, 1, 9999)
	if fb.Pixels()[4] != 0xabcdef {
		t.Errorf("expected depth plane reset after resize")
	}
}

func TestResizeSameDimensionsKeepsContent(t *testing.T) {
	fb := New(2, 2)
	fb.SetCurrentColor(0xffffff)
	fb.Point(1, 1, 0)

	fb.Resize(2, 2)
	if fb.Pixels()[3] != 0xffffff {
		t.Errorf("resize to identical dimensions should not clear content")
	}
}
