// Package input converts SDL2 events into per-frame snapshots: an event
// list for edge-triggered bindings and the held-key state for
// continuous ones.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType tags a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseDown
)

// MouseLeft identifies the left button in mouse events.
const MouseLeft = int(sdl.BUTTON_LEFT)

// Key codes are SDL scancodes.
const (
	KeyEscape = int(sdl.SCANCODE_ESCAPE)

	// The warp bindings rely on the digit scancodes being contiguous.
	Key1 = int(sdl.SCANCODE_1)
	Key2 = int(sdl.SCANCODE_2)
	Key3 = int(sdl.SCANCODE_3)
	Key4 = int(sdl.SCANCODE_4)
	Key5 = int(sdl.SCANCODE_5)
	Key6 = int(sdl.SCANCODE_6)

	KeyW = int(sdl.SCANCODE_W)
	KeyA = int(sdl.SCANCODE_A)
	KeyS = int(sdl.SCANCODE_S)
	KeyD = int(sdl.SCANCODE_D)
	KeyQ = int(sdl.SCANCODE_Q)
	KeyE = int(sdl.SCANCODE_E)

	KeyO = int(sdl.SCANCODE_O)
	KeyC = int(sdl.SCANCODE_C)
	KeyB = int(sdl.SCANCODE_B)
	KeyN = int(sdl.SCANCODE_N)
	KeyG = int(sdl.SCANCODE_G)

	KeyLeft  = int(sdl.SCANCODE_LEFT)
	KeyRight = int(sdl.SCANCODE_RIGHT)
	KeyUp    = int(sdl.SCANCODE_UP)
	KeyDown  = int(sdl.SCANCODE_DOWN)

	KeyF12 = int(sdl.SCANCODE_F12)
)

// Event is one processed input event. KeyDown events are true edges;
// keyboard auto-repeat is filtered out. Mouse events carry the click
// position in window pixels.
type Event struct {
	Type   EventType
	Key    int
	Width  int
	Height int
	Button int
	X, Y   int
}

// Input drains the SDL event queue once per frame.
type Input struct {
	events []Event
	keys   []uint8
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls pending SDL events and refreshes the held-key state.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			switch {
			case e.Type == sdl.KEYDOWN && e.Repeat == 0:
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  int(e.Keysym.Scancode),
				})
			case e.Type == sdl.KEYUP:
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  int(e.Keysym.Scancode),
				})
			}

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{
					Type:   EventMouseDown,
					Button: int(e.Button),
					X:      int(e.X),
					Y:      int(e.Y),
				})
			}
		}
	}

	i.keys = sdl.GetKeyboardState()
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyDown reports whether the key was held down at the last Update.
func (i *Input) IsKeyDown(key int) bool {
	return key >= 0 && key < len(i.keys) && i.keys[key] != 0
}

// IsKeyPressed reports whether the key went down this frame.
func (i *Input) IsKeyPressed(key int) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
