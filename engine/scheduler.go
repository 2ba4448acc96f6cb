package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/status"
)

// Stepper is advanced once per scheduler tick
type Stepper interface {
	Step()
}

// Scheduler runs a Stepper on a fixed tick from its own goroutine
// Ticks are deadline based on the pausable clock; no delta time is passed,
// each tick is one fixed step regardless of jitter
type Scheduler struct {
	stepper Stepper
	clock   *PausableClock

	tickInterval     time.Duration
	nextTickDeadline time.Time
	mu               sync.Mutex

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signalled (non-blocking) after every tick
	updateDone chan struct{}

	statTicks    *atomic.Int64
	statOverruns *atomic.Int64
}

// NewScheduler creates a stopped scheduler and returns it with its update channel
func NewScheduler(
	stepper Stepper,
	clock *PausableClock,
	tickInterval time.Duration,
	reg *status.Registry,
) (*Scheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	s := &Scheduler{
		stepper:      stepper,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
		statTicks:    reg.Ints.Get(status.KeyTicks),
		statOverruns: reg.Ints.Get(status.KeyOverruns),
	}
	return s, updateDone
}

// Start launches the tick loop; subsequent calls are no-ops
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(s.loop)
	}
}

// Stop halts the loop and waits for the in-flight tick; safe to call repeatedly
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

// Pause suspends ticking and freezes game time
func (s *Scheduler) Pause() {
	s.clock.Pause()
}

// Resume continues ticking from where the pause left off
func (s *Scheduler) Resume() {
	s.clock.Resume()
}

// TogglePause flips the pause state and returns the new state
func (s *Scheduler) TogglePause() bool {
	if s.clock.IsPaused() {
		s.Resume()
		log.Printf("scheduler: resumed at tick %d", s.TickCount())
		return false
	}
	s.Pause()
	log.Printf("scheduler: paused at tick %d", s.TickCount())
	return true
}

// IsPaused reports whether ticking is suspended
func (s *Scheduler) IsPaused() bool {
	return s.clock.IsPaused()
}

// TickCount returns the number of completed ticks
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

// loop is the scheduler goroutine
func (s *Scheduler) loop() {
	defer s.wg.Done()

	s.mu.Lock()
	s.nextTickDeadline = s.clock.Now().Add(s.tickInterval)
	s.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if s.clock.IsPaused() {
			// Game time is frozen, so the deadline is still ahead on resume
			sleepDuration = s.tickInterval * 2
		} else {
			gameNow := s.clock.Now()

			s.mu.Lock()
			deadline := s.nextTickDeadline
			s.mu.Unlock()

			if !gameNow.Before(deadline) {
				s.tick()

				s.mu.Lock()
				s.nextTickDeadline = s.nextTickDeadline.Add(s.tickInterval)
				// Too far behind: re-base instead of bursting catch-up ticks
				if gameNow.Sub(s.nextTickDeadline) > s.tickInterval*2 {
					s.nextTickDeadline = gameNow.Add(s.tickInterval)
					s.statOverruns.Add(1)
				}
				deadline = s.nextTickDeadline
				s.mu.Unlock()

				sleepDuration = max(deadline.Sub(s.clock.Now()), 0)
			} else {
				sleepDuration = deadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-s.stopChan:
				return
			}
		}
	}
}

// tick runs one step and publishes completion
func (s *Scheduler) tick() {
	s.stepper.Step()

	s.tickCount.Add(1)
	s.statTicks.Add(1)

	select {
	case s.updateDone <- struct{}{}:
	default:
	}
}
