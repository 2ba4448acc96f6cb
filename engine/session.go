package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/match"
	"github.com/lixenwraith/vi-pong/status"
)

// InputSource publishes the player's directional state once per tick
type InputSource interface {
	Snapshot() match.Input
}

// Session binds a simulator to its input and publishes frames for rendering
// Step is the only caller of Tick, so the simulator stays on the scheduler goroutine
type Session struct {
	sim   *match.Simulator
	input InputSource

	frame atomic.Pointer[match.FrameState]

	statTicks    *atomic.Int64
	statHits     *atomic.Int64
	statRally    *atomic.Int64
	statRallyMax *atomic.Int64
	statPoints   *atomic.Int64
	statSpeed    *status.AtomicFloat
}

// NewSession creates a session and publishes the simulator's initial frame
func NewSession(sim *match.Simulator, input InputSource, reg *status.Registry) *Session {
	s := &Session{
		sim:          sim,
		input:        input,
		statTicks:    reg.Ints.Get(status.KeyMatchTicks),
		statHits:     reg.Ints.Get(status.KeyHits),
		statRally:    reg.Ints.Get(status.KeyRally),
		statRallyMax: reg.Ints.Get(status.KeyLongest),
		statPoints:   reg.Ints.Get(status.KeyPoints),
		statSpeed:    reg.Floats.Get(status.KeyBallSpeed),
	}

	f := sim.Frame()
	s.frame.Store(&f)
	s.statSpeed.Set(f.Ball.Speed)
	return s
}

// Step advances the match by one tick using the current input snapshot
func (s *Session) Step() {
	f := s.sim.Tick(s.input.Snapshot())
	s.frame.Store(&f)

	s.statTicks.Add(1)
	s.statSpeed.Set(f.Ball.Speed)

	if f.Hit {
		s.statHits.Add(1)
		rally := s.statRally.Add(1)
		if rally > s.statRallyMax.Load() {
			s.statRallyMax.Store(rally)
		}
	}

	if f.Scorer != match.SideNone {
		s.statPoints.Add(1)
		log.Printf("match: %s scores at tick %d after %d-hit rally, player %d - computer %d",
			f.Scorer, f.Tick, s.statRally.Load(), f.Score.Player, f.Score.Computer)
		s.statRally.Store(0)
	}
}

// Frame returns the most recently published frame
func (s *Session) Frame() match.FrameState {
	return *s.frame.Load()
}
