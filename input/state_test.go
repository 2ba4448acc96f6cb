package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/match"
)

func newTestKeyState() (*KeyState, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewKeyState(clock, DefaultInitialHold, DefaultRepeatHold), clock
}

func TestKeyStateIdle(t *testing.T) {
	ks, _ := newTestKeyState()
	assert.Equal(t, match.Input{}, ks.Snapshot())
}

func TestKeyStateFreshPressCoversRepeatDelay(t *testing.T) {
	ks, clock := newTestKeyState()

	ks.Press(IntentUp)
	assert.True(t, ks.Snapshot().Up)

	clock.Advance(500 * time.Millisecond)
	assert.True(t, ks.Snapshot().Up, "held through the auto-repeat delay")

	clock.Advance(60 * time.Millisecond)
	assert.False(t, ks.Snapshot().Up, "released after the initial window")
}

func TestKeyStateRepeatsUseShortWindow(t *testing.T) {
	ks, clock := newTestKeyState()

	ks.Press(IntentDown)
	clock.Advance(400 * time.Millisecond)
	ks.Press(IntentDown) // first auto-repeat

	for i := 0; i < 5; i++ {
		clock.Advance(30 * time.Millisecond)
		ks.Press(IntentDown)
		assert.True(t, ks.Snapshot().Down)
	}

	clock.Advance(DefaultRepeatHold - time.Millisecond)
	assert.True(t, ks.Snapshot().Down)

	clock.Advance(2 * time.Millisecond)
	assert.False(t, ks.Snapshot().Down, "key released once repeats stop")
}

func TestKeyStateOppositeDirectionReleases(t *testing.T) {
	ks, clock := newTestKeyState()

	ks.Press(IntentUp)
	clock.Advance(10 * time.Millisecond)
	ks.Press(IntentDown)

	assert.Equal(t, match.Input{Down: true}, ks.Snapshot())
}

func TestKeyStateLatePressStartsNewStreak(t *testing.T) {
	ks, clock := newTestKeyState()

	ks.Press(IntentUp)
	clock.Advance(time.Second)
	ks.Press(IntentUp)

	clock.Advance(300 * time.Millisecond)
	assert.True(t, ks.Snapshot().Up, "second tap gets the initial window again")
}

func TestKeyStateRelease(t *testing.T) {
	ks, _ := newTestKeyState()
	ks.Press(IntentUp)
	ks.Release()
	assert.Equal(t, match.Input{}, ks.Snapshot())
}

func TestKeyStateIgnoresNonMovement(t *testing.T) {
	ks, _ := newTestKeyState()
	ks.Press(IntentTogglePause)
	ks.Press(IntentQuit)
	assert.Equal(t, match.Input{}, ks.Snapshot())
}
