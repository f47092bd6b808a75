// Package audio plays the interaction cues: a rising two-tone chime on
// warp and a low thump on collision pushback. Cues are synthesized, so
// no sound assets ship with the binary.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Cue tuning.
const (
	warpLowHz   = 440
	warpHighHz  = 880
	warpToneLen = 90 * time.Millisecond

	collisionHz  = 110
	collisionLen = 150 * time.Millisecond
)

// Manager synthesizes the cues and mixes them for playback.
type Manager struct {
	mu sync.RWMutex

	initialized bool

	// Cue volume (0.0 to 1.0)
	volume float64

	// Mixer for concurrent cue playback; registered with the speaker
	// once and kept for the manager's lifetime.
	mixer *beep.Mixer
}

// New creates a new audio manager. vol is the cue volume from 0 to 1.
func New(vol float64) *Manager {
	return &Manager{
		volume: clamp(vol, 0, 1),
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker and registers the cue mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(DefaultSampleRate, DefaultSampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the speaker is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the cue volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the cue volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// PlayWarp queues the warp chime.
func (m *Manager) PlayWarp() {
	cue, err := warpCue(DefaultSampleRate)
	if err != nil {
		return
	}
	m.play(cue)
}

// PlayCollision queues the contact thump.
func (m *Manager) PlayCollision() {
	cue, err := collisionCue(DefaultSampleRate)
	if err != nil {
		return
	}
	m.play(cue)
}

// play wraps the cue in the configured volume and adds it to the mixer
// for concurrent playback.
func (m *Manager) play(cue beep.Streamer) {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.volume
	m.mu.RUnlock()

	if !initialized {
		return
	}

	volStreamer := &effects.Volume{
		Streamer: cue,
		Base:     2,
		Volume:   volumeToDb(vol),
		Silent:   vol <= 0,
	}

	// The speaker goroutine streams from the mixer concurrently.
	speaker.Lock()
	m.mixer.Add(volStreamer)
	speaker.Unlock()
}

// warpCue is a rising two-tone chime.
func warpCue(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := generators.SinTone(sr, warpLowHz)
	if err != nil {
		return nil, err
	}
	high, err := generators.SinTone(sr, warpHighHz)
	if err != nil {
		return nil, err
	}
	n := sr.N(warpToneLen)
	return beep.Seq(beep.Take(n, low), beep.Take(n, high)), nil
}

// collisionCue is a short low thump.
func collisionCue(sr beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SinTone(sr, collisionHz)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(collisionLen), tone), nil
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
