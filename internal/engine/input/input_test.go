package input

import "testing"

func TestIsKeyPressedScansFrameEvents(t *testing.T) {
	in := &Input{events: []Event{
		{Type: EventKeyDown, Key: KeyO},
		{Type: EventKeyUp, Key: KeyB},
	}}

	if !in.IsKeyPressed(KeyO) {
		t.Error("KeyO went down this frame")
	}
	if in.IsKeyPressed(KeyB) {
		t.Error("KeyB only went up, not down")
	}
	if in.IsKeyPressed(KeyW) {
		t.Error("KeyW saw no events")
	}
}

func TestIsKeyDownReadsHeldState(t *testing.T) {
	in := &Input{keys: make([]uint8, 512)}
	in.keys[KeyW] = 1

	if !in.IsKeyDown(KeyW) {
		t.Error("KeyW is held")
	}
	if in.IsKeyDown(KeyS) {
		t.Error("KeyS is not held")
	}
}

func TestIsKeyDownBounds(t *testing.T) {
	in := New()

	// No Update yet: the state slice is empty.
	if in.IsKeyDown(KeyW) {
		t.Error("no state captured yet")
	}
	in.keys = make([]uint8, 512)
	if in.IsKeyDown(-1) || in.IsKeyDown(1<<20) {
		t.Error("out-of-range codes are never held")
	}
}

func TestDigitScancodesAreContiguous(t *testing.T) {
	// Warp bindings decode the body index as Key - Key1.
	keys := []int{Key1, Key2, Key3, Key4, Key5, Key6}
	for i, k := range keys {
		if k != Key1+i {
			t.Fatalf("digit scancode %d = %d, want %d", i+1, k, Key1+i)
		}
	}
}
