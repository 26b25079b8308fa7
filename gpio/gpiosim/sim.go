// Package gpiosim is an in-memory implementation of the gpio package's
// hardware interfaces with real register semantics: set/clear/toggle
// data registers, write-1-to-clear event flags, per-pin multiplex
// words, the timer event cross-connect table, and an upstream
// interrupt line with call accounting. Tests inject electrical
// activity with SetLevel/LatchEvent and assert on what the registers
// hold afterwards.
package gpiosim

import (
	"sync"

	"github.com/diamondized/tock/gpio"
)

// Sim simulates the register file of one pin controller instance. It
// implements gpio.Bank, gpio.Mux, gpio.EventRouter and gpio.IRQLine,
// so one value serves as the complete hardware binding for gpio.New.
// All methods are safe for concurrent use.
type Sim struct {
	mu      sync.Mutex
	dout    uint32 // output data latch
	doe     uint32 // output enable
	ext     uint32 // externally applied pad levels
	evflags uint32 // latched edge events, write-1-to-clear
	cfg     [gpio.NumPins]uint32

	routed [gpio.NumTimerChannels]bool

	armed             bool // upstream line enabled
	pending           bool
	clearPendingCalls int
	enableCalls       int

	dispatch func()
}

// New returns a simulator in reset state with the upstream line armed.
func New() *Sim {
	return &Sim{armed: true}
}

// SetDispatcher binds the port's interrupt entry point. When an edge
// latches on a pin whose edge-IRQ-enable flag is set and the upstream
// line is armed, fn is invoked, modelling a hardware interrupt entry.
// The line disarms on delivery and stays down until Enable, so fn is
// not re-entered for the events it is draining.
func (s *Sim) SetDispatcher(fn func()) {
	s.mu.Lock()
	s.dispatch = fn
	s.mu.Unlock()
}

// levelsLocked returns the effective pad level of every pin: the
// output latch where the pin drives, the external level elsewhere.
func (s *Sim) levelsLocked() uint32 {
	return (s.dout & s.doe) | (s.ext &^ s.doe)
}

// latchLocked compares pad levels before and after a mutation and
// latches event flags for pins whose configured edge mode matches the
// transition. It reports whether the upstream line should fire.
func (s *Sim) latchLocked(old, now uint32) bool {
	fire := false
	changed := old ^ now
	for i := 0; changed != 0 && i < gpio.NumPins; i++ {
		bit := uint32(1) << uint(i)
		if changed&bit != 0 {
			f := gpio.DecodeConfig(s.cfg[i])
			rising := now&bit != 0
			hit := false
			switch f.EdgeDetect {
			case gpio.EdgeCodeFalling:
				hit = !rising
			case gpio.EdgeCodeRising:
				hit = rising
			case gpio.EdgeCodeBoth:
				hit = true
			}
			if hit {
				s.evflags |= bit
				if f.EdgeIRQEnable {
					fire = true
				}
			}
		}
		changed &^= bit
	}
	return fire
}

// fireLocked transitions the line for one interrupt entry and returns
// the bound dispatcher. Callers invoke it after releasing the lock.
func (s *Sim) fireLocked() func() {
	if s.dispatch == nil || !s.armed {
		return nil
	}
	s.armed = false
	s.pending = true
	return s.dispatch
}

func (s *Sim) mutate(f func()) {
	s.mu.Lock()
	old := s.levelsLocked()
	f()
	var fn func()
	if s.latchLocked(old, s.levelsLocked()) {
		fn = s.fireLocked()
	}
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Bank

// SetOutput applies write-only set-register semantics to the latch.
func (s *Sim) SetOutput(mask uint32) {
	s.mutate(func() { s.dout |= mask })
}

// ClearOutput applies write-only clear-register semantics to the latch.
func (s *Sim) ClearOutput(mask uint32) {
	s.mutate(func() { s.dout &^= mask })
}

// ToggleOutput applies write-only toggle-register semantics to the latch.
func (s *Sim) ToggleOutput(mask uint32) {
	s.mutate(func() { s.dout ^= mask })
}

// In returns the effective pad level of every pin.
func (s *Sim) In() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levelsLocked()
}

// OutputEnable returns the output-enable register.
func (s *Sim) OutputEnable() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doe
}

// SetOutputEnable replaces the output-enable register.
func (s *Sim) SetOutputEnable(v uint32) {
	s.mutate(func() { s.doe = v })
}

// EventFlags returns the latched event bits.
func (s *Sim) EventFlags() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evflags
}

// ClearEventFlags clears the bits set in mask, write-1-to-clear.
func (s *Sim) ClearEventFlags(mask uint32) {
	s.mu.Lock()
	s.evflags &^= mask
	s.mu.Unlock()
}

// Mux

// Config returns pin's multiplex-control word.
func (s *Sim) Config(pin int) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg[pin]
}

// SetConfig replaces pin's multiplex-control word.
func (s *Sim) SetConfig(pin int, word uint32) {
	s.mu.Lock()
	s.cfg[pin] = word
	s.mu.Unlock()
}

// ModifyConfig replaces the bits selected by mask, preserving the rest.
func (s *Sim) ModifyConfig(pin int, mask, bits uint32) {
	s.mu.Lock()
	s.cfg[pin] = s.cfg[pin]&^mask | bits&mask
	s.mu.Unlock()
}

// EventRouter

// RouteTimer records the cross-connect programming for ch.
func (s *Sim) RouteTimer(ch gpio.TimerChannel) {
	s.mu.Lock()
	s.routed[ch] = true
	s.mu.Unlock()
}

// Routed reports whether ch's cross-connect selector was programmed.
func (s *Sim) Routed(ch gpio.TimerChannel) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routed[ch]
}

// IRQLine

// ClearPending clears the upstream pending flag.
func (s *Sim) ClearPending() {
	s.mu.Lock()
	s.pending = false
	s.clearPendingCalls++
	s.mu.Unlock()
}

// Enable re-arms the upstream line. If events with the edge-IRQ-enable
// flag are still latched, a fresh interrupt entry fires, the way
// re-enabling a line with a pended source does on hardware.
func (s *Sim) Enable() {
	s.mu.Lock()
	s.armed = true
	s.enableCalls++
	var fn func()
	if s.irqLatchedLocked() {
		fn = s.fireLocked()
	}
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (s *Sim) irqLatchedLocked() bool {
	flags := s.evflags
	for i := 0; flags != 0 && i < gpio.NumPins; i++ {
		if flags&1 != 0 && gpio.DecodeConfig(s.cfg[i]).EdgeIRQEnable {
			return true
		}
		flags >>= 1
	}
	return false
}

// ClearPendingCalls returns how many times ClearPending ran.
func (s *Sim) ClearPendingCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearPendingCalls
}

// EnableCalls returns how many times Enable ran.
func (s *Sim) EnableCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enableCalls
}

// Stimulus

// SetLevel applies an external pad level to pin. If the resulting
// transition matches the pin's configured edge-detect mode, the event
// flag latches; if the pin's edge IRQ is enabled and the line is
// armed, the bound dispatcher fires. Driving pins ignore external
// levels, as a real pad would.
func (s *Sim) SetLevel(pin int, level bool) {
	bit := uint32(1) << uint(pin)
	s.mutate(func() {
		if level {
			s.ext |= bit
		} else {
			s.ext &^= bit
		}
	})
}

// Level returns pin's effective pad level.
func (s *Sim) Level(pin int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levelsLocked()&(1<<uint(pin)) != 0
}

// LatchEvent forces pin's event flag on without an edge, for tests
// that construct a flag snapshot directly.
func (s *Sim) LatchEvent(pin int) {
	s.mu.Lock()
	s.evflags |= 1 << uint(pin)
	s.mu.Unlock()
}
