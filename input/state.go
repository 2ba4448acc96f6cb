package input

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/match"
)

// Default hold windows for terminals that report presses and repeats but no releases
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// Clock is the time source for hold windows
type Clock interface {
	Now() time.Time
}

// direction tracks presses of one direction as unix nanos
type direction struct {
	lastPress  atomic.Int64
	firstPress atomic.Int64 // start of the current press streak
}

// KeyState turns key presses into the held-direction booleans the simulator consumes
// A key is held until its hold window after the last press elapses: InitialHold after
// a fresh press (covering the auto-repeat delay), RepeatHold once repeats arrive
// Press runs on the event goroutine, Snapshot on the scheduler goroutine
type KeyState struct {
	clock       Clock
	initialHold time.Duration
	repeatHold  time.Duration

	up   direction
	down direction
}

// NewKeyState creates a KeyState with the given hold windows
func NewKeyState(clock Clock, initialHold, repeatHold time.Duration) *KeyState {
	return &KeyState{
		clock:       clock,
		initialHold: initialHold,
		repeatHold:  repeatHold,
	}
}

// Press records a press or auto-repeat of a direction; the opposite direction is released
func (ks *KeyState) Press(intent IntentType) {
	now := ks.clock.Now().UnixNano()

	var d, other *direction
	switch intent {
	case IntentUp:
		d, other = &ks.up, &ks.down
	case IntentDown:
		d, other = &ks.down, &ks.up
	default:
		return
	}

	other.lastPress.Store(0)
	other.firstPress.Store(0)

	if !ks.heldAt(d, now) {
		d.firstPress.Store(now)
	}
	d.lastPress.Store(now)
}

// Release clears both directions
func (ks *KeyState) Release() {
	ks.up.lastPress.Store(0)
	ks.up.firstPress.Store(0)
	ks.down.lastPress.Store(0)
	ks.down.firstPress.Store(0)
}

// Snapshot returns the directions held at the current time
func (ks *KeyState) Snapshot() match.Input {
	now := ks.clock.Now().UnixNano()
	return match.Input{
		Up:   ks.heldAt(&ks.up, now),
		Down: ks.heldAt(&ks.down, now),
	}
}

// heldAt reports whether d is still within its hold window at now
func (ks *KeyState) heldAt(d *direction, now int64) bool {
	last := d.lastPress.Load()
	if last == 0 {
		return false
	}
	window := ks.repeatHold
	if last == d.firstPress.Load() {
		window = ks.initialHold
	}
	return now-last < int64(window)
}
