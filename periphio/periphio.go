// Package periphio exposes the controller's pins through the
// periph.io/x/conn/v3 pin interfaces, so drivers written against
// gpio.PinIO can consume them without knowing this chip.
package periphio

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"

	tock "github.com/diamondized/tock/gpio"
)

// ErrPWMUnsupported is returned by Pin.PWM: duty-cycle generation
// belongs to the timer peripheral, the pin controller only routes a
// timer channel to a pad (tock/gpio.PWMOutput).
var ErrPWMUnsupported = errors.New("periphio: pwm is generated by the timer peripheral, not the pin controller")

// Pin adapts one controller pin to gpio.PinIO. Edge events are
// delivered from the pin's interrupt handler through a 1-deep channel;
// the handler never blocks, extra edges are dropped while one is
// already queued.
type Pin struct {
	pin   *tock.Pin
	name  string
	out   bool // pin claimed as plain GPIO output by Out
	edges chan struct{}
}

// Wrap adapts p under the given name.
func Wrap(p *tock.Pin, name string) *Pin {
	return &Pin{pin: p, name: name}
}

// Name implements pin.Pin.
func (p *Pin) Name() string { return p.name }

// Number implements pin.Pin.
func (p *Pin) Number() int { return p.pin.Index() }

// Function implements pin.Pin.
func (p *Pin) Function() string {
	switch p.pin.Configuration() {
	case tock.Input:
		return "In"
	case tock.Output:
		return "Out"
	case tock.InputOutput:
		return "I/O"
	default:
		return "Alt"
	}
}

func (p *Pin) String() string { return p.name }

// Halt implements conn.Resource: it disarms the pin's edge interrupt.
func (p *Pin) Halt() error {
	p.pin.DisableInterrupt()
	return nil
}

// In implements gpio.PinIn.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	p.pin.MakeDigitalInput()
	p.out = false
	switch pull {
	case gpio.Float:
		p.pin.SetFloatingState(tock.PullNone)
	case gpio.PullDown:
		p.pin.SetFloatingState(tock.PullDown)
	case gpio.PullUp:
		p.pin.SetFloatingState(tock.PullUp)
	case gpio.PullNoChange:
	default:
		return fmt.Errorf("periphio: unsupported pull %s", pull)
	}

	// An edge queued under a previous arming must not satisfy the
	// first WaitForEdge after reconfiguration.
	if p.edges != nil {
		select {
		case <-p.edges:
		default:
		}
	}

	if edge == gpio.NoEdge {
		p.pin.DisableInterrupt()
		p.pin.SetHandler(nil)
		return nil
	}

	var e tock.Edge
	switch edge {
	case gpio.RisingEdge:
		e = tock.Rising
	case gpio.FallingEdge:
		e = tock.Falling
	case gpio.BothEdges:
		e = tock.Either
	default:
		return fmt.Errorf("periphio: unsupported edge %s", edge)
	}
	if p.edges == nil {
		p.edges = make(chan struct{}, 1)
	}
	p.pin.SetHandler(func(*tock.Pin) {
		select {
		case p.edges <- struct{}{}:
		default:
		}
	})
	p.pin.EnableInterrupt(e)
	return nil
}

// Read implements gpio.PinIn.
func (p *Pin) Read() gpio.Level {
	return gpio.Level(p.pin.Read())
}

// WaitForEdge implements gpio.PinIn. A negative timeout blocks
// indefinitely. It returns false if In was never armed with an edge.
func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	if p.edges == nil {
		return false
	}
	if timeout < 0 {
		<-p.edges
		return true
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-p.edges:
		return true
	case <-t.C:
		return false
	}
}

// Pull implements gpio.PinIn.
func (p *Pin) Pull() gpio.Pull {
	switch p.pin.FloatingState() {
	case tock.PullUp:
		return gpio.PullUp
	case tock.PullDown:
		return gpio.PullDown
	default:
		return gpio.Float
	}
}

// DefaultPull implements gpio.PinIn; the pins float out of reset.
func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Out implements gpio.PinOut.
func (p *Pin) Out(l gpio.Level) error {
	if !p.out {
		p.pin.DisableInterrupt()
		p.pin.SetHandler(nil)
		p.pin.MakeDigitalOutput()
		p.out = true
	}
	if l {
		p.pin.Set()
	} else {
		p.pin.Clear()
	}
	return nil
}

// PWM implements gpio.PinOut.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrPWMUnsupported
}

// RegisterAll wraps every pin of port as "<prefix>DIO<n>" and registers
// it with gpioreg, returning the wrapped pins in index order.
func RegisterAll(port *tock.Port, prefix string) ([]*Pin, error) {
	pins := make([]*Pin, 0, tock.NumPins)
	for i := 0; i < tock.NumPins; i++ {
		tp, err := port.Pin(i)
		if err != nil {
			return nil, err
		}
		p := Wrap(tp, fmt.Sprintf("%sDIO%d", prefix, i))
		if err := gpioreg.Register(p); err != nil {
			return nil, fmt.Errorf("periphio: registering %s: %w", p.name, err)
		}
		pins = append(pins, p)
	}
	return pins, nil
}
