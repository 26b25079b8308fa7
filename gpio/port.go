package gpio

import "fmt"

// Port owns the fixed ordered collection of all 32 pins and
// demultiplexes the shared GPIO interrupt line. Construct one Port per
// controller instance with New and keep it for the life of the
// process; pins are never created or destroyed afterwards.
type Port struct {
	bank Bank
	irq  IRQLine
	pins [NumPins]Pin
}

// New wires a Port to a hardware implementation. All four collaborators
// are required; tests pass the gpiosim harness for each of them.
func New(bank Bank, mux Mux, events EventRouter, irq IRQLine) *Port {
	if bank == nil || mux == nil || events == nil || irq == nil {
		panic("gpio: New requires a complete hardware binding")
	}
	p := &Port{bank: bank, irq: irq}
	for i := range p.pins {
		p.pins[i] = Pin{
			index:  i,
			mask:   1 << uint(i),
			bank:   bank,
			mux:    mux,
			events: events,
		}
	}
	return p
}

// Pin returns the pin at index, or ErrPinOutOfRange for indices
// outside 0..31.
func (p *Port) Pin(index int) (*Pin, error) {
	if index < 0 || index >= NumPins {
		return nil, fmt.Errorf("%w: %d", ErrPinOutOfRange, index)
	}
	return &p.pins[index], nil
}

// MustPin returns the pin at index and panics on a contract violation.
// For use where the index is a constant known to be valid.
func (p *Port) MustPin(index int) *Pin {
	pin, err := p.Pin(index)
	if err != nil {
		panic(err)
	}
	return pin
}

// HandleInterrupt is the drain-and-dispatch entry point invoked by the
// top-level interrupt vector for the GPIO line.
//
// Drain: the combined event-flag register is read once into a
// snapshot, and the snapshot is immediately written back, clearing
// exactly the bits observed (write-1-to-clear) before any handler
// runs. An edge latched strictly between the read and the write-back
// lands on an already-set bit and is cleared with it; this narrow race
// is a documented property of the hardware's clear semantics, not
// eliminated here, since eliminating it would require disabling the
// source for the window.
//
// Dispatch: set bits are walked in ascending index order and each
// fired pin's handler is invoked synchronously. Pins without a handler
// are skipped. Edges arriving after the write-back, including edges a
// handler provokes, latch fresh bits and are serviced by the next
// hardware interrupt entry. The upstream line is cleared and re-armed
// only after every handler has returned, so a handler cannot be
// re-entered for the event it is handling.
func (p *Port) HandleInterrupt() {
	flags := p.bank.EventFlags()
	p.bank.ClearEventFlags(flags)
	debugf("gpio: dispatch evflags=%#08x", flags)

	for i := 0; flags != 0 && i < NumPins; i++ {
		if flags&1 != 0 {
			p.pins[i].fire()
		}
		flags >>= 1
	}

	p.irq.ClearPending()
	p.irq.Enable()
}
