package audio

import (
	"testing"

	"github.com/gopxl/beep/v2"
)

func TestVolumeConversion(t *testing.T) {
	// Test volume to dB conversion
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New(1.0)
	if m == nil {
		t.Fatal("New() returned nil")
	}
	if m.Volume() != 1.0 {
		t.Errorf("volume = %f, want 1.0", m.Volume())
	}
	if m.IsInitialized() {
		t.Error("manager should not touch the speaker before Init")
	}
}

func TestNewClampsVolume(t *testing.T) {
	if v := New(2.0).Volume(); v != 1.0 {
		t.Errorf("volume = %f, want 1.0 (clamped)", v)
	}
	if v := New(-0.5).Volume(); v != 0.0 {
		t.Errorf("volume = %f, want 0.0 (clamped)", v)
	}
}

func TestSetVolume(t *testing.T) {
	m := New(1.0)

	m.SetVolume(0.5)
	if m.Volume() != 0.5 {
		t.Errorf("volume = %f, want 0.5", m.Volume())
	}

	// Test clamping
	m.SetVolume(2.0)
	if m.Volume() != 1.0 {
		t.Errorf("volume = %f, want 1.0 (clamped)", m.Volume())
	}

	m.SetVolume(-1.0)
	if m.Volume() != 0.0 {
		t.Errorf("volume = %f, want 0.0 (clamped)", m.Volume())
	}
}

func TestPlayBeforeInitIsNoOp(t *testing.T) {
	m := New(1.0)
	// Neither cue may panic or touch the speaker when it is closed.
	m.PlayWarp()
	m.PlayCollision()
	if m.IsInitialized() {
		t.Error("cues must not open the speaker")
	}
}

// drainStreamer pulls the streamer dry, returning the total sample
// count and the peak amplitude.
func drainStreamer(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, ch := range frame {
				if ch < 0 {
					ch = -ch
				}
				if ch > peak {
					peak = ch
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestWarpCueShape(t *testing.T) {
	cue, err := warpCue(DefaultSampleRate)
	if err != nil {
		t.Fatalf("warpCue: %v", err)
	}

	total, peak := drainStreamer(t, cue)
	if want := 2 * DefaultSampleRate.N(warpToneLen); total != want {
		t.Errorf("warp cue is %d samples, want %d", total, want)
	}
	if peak < 0.5 || peak > 1.0001 {
		t.Errorf("warp cue peak = %f, want near full scale", peak)
	}
}

func TestCollisionCueShape(t *testing.T) {
	cue, err := collisionCue(DefaultSampleRate)
	if err != nil {
		t.Fatalf("collisionCue: %v", err)
	}

	total, peak := drainStreamer(t, cue)
	if want := DefaultSampleRate.N(collisionLen); total != want {
		t.Errorf("collision cue is %d samples, want %d", total, want)
	}
	if peak < 0.5 || peak > 1.0001 {
		t.Errorf("collision cue peak = %f, want near full scale", peak)
	}
}
