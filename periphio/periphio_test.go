package periphio_test

import (
	"errors"
	"testing"
	"time"

	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/diamondized/tock/gpio"
	"github.com/diamondized/tock/gpio/gpiosim"
	"github.com/diamondized/tock/periphio"
)

func newPin(t *testing.T, index int) (*periphio.Pin, *gpiosim.Sim) {
	t.Helper()
	sim := gpiosim.New()
	port := gpio.New(sim, sim, sim, sim)
	sim.SetDispatcher(port.HandleInterrupt)
	return periphio.Wrap(port.MustPin(index), "DIO"), sim
}

func TestOutRead(t *testing.T) {
	pin, sim := newPin(t, 12)

	if err := pin.Out(pgpio.High); err != nil {
		t.Fatalf("Out(High): %v", err)
	}
	if !sim.Level(12) {
		t.Error("pad low after Out(High)")
	}
	if err := pin.Out(pgpio.Low); err != nil {
		t.Fatalf("Out(Low): %v", err)
	}
	if sim.Level(12) {
		t.Error("pad high after Out(Low)")
	}
	if pin.Function() != "Out" {
		t.Errorf("Function() = %q, want Out", pin.Function())
	}
}

func TestInPullAndRead(t *testing.T) {
	pin, sim := newPin(t, 3)

	if err := pin.In(pgpio.PullUp, pgpio.NoEdge); err != nil {
		t.Fatalf("In: %v", err)
	}
	if got := pin.Pull(); got != pgpio.PullUp {
		t.Errorf("Pull() = %s, want PullUp", got)
	}
	sim.SetLevel(3, true)
	if pin.Read() != pgpio.High {
		t.Error("Read() = Low with a high pad")
	}
	if pin.Function() != "In" {
		t.Errorf("Function() = %q, want In", pin.Function())
	}
}

func TestWaitForEdge(t *testing.T) {
	pin, sim := newPin(t, 27)

	if err := pin.In(pgpio.Float, pgpio.RisingEdge); err != nil {
		t.Fatalf("In: %v", err)
	}
	sim.SetLevel(27, true)
	if !pin.WaitForEdge(time.Second) {
		t.Fatal("rising edge not delivered")
	}
	if pin.WaitForEdge(10 * time.Millisecond) {
		t.Fatal("spurious edge delivered")
	}
	sim.SetLevel(27, false) // falling, not armed
	if pin.WaitForEdge(10 * time.Millisecond) {
		t.Fatal("falling edge delivered on a rising-only pin")
	}
}

func TestInDropsStaleEdge(t *testing.T) {
	pin, sim := newPin(t, 14)

	if err := pin.In(pgpio.Float, pgpio.RisingEdge); err != nil {
		t.Fatalf("In: %v", err)
	}
	sim.SetLevel(14, true) // edge now queued, never consumed

	if err := pin.In(pgpio.Float, pgpio.FallingEdge); err != nil {
		t.Fatalf("re-arm In: %v", err)
	}
	if pin.WaitForEdge(10 * time.Millisecond) {
		t.Fatal("edge from before the re-arm was delivered")
	}
	sim.SetLevel(14, false)
	if !pin.WaitForEdge(time.Second) {
		t.Fatal("falling edge not delivered after re-arm")
	}
}

func TestWaitForEdgeUnarmed(t *testing.T) {
	pin, _ := newPin(t, 0)
	if pin.WaitForEdge(10 * time.Millisecond) {
		t.Error("WaitForEdge succeeded without an armed edge")
	}
}

func TestPWMUnsupported(t *testing.T) {
	pin, _ := newPin(t, 8)
	if err := pin.PWM(pgpio.DutyHalf, 0); !errors.Is(err, periphio.ErrPWMUnsupported) {
		t.Errorf("PWM() = %v, want ErrPWMUnsupported", err)
	}
}

func TestRegisterAll(t *testing.T) {
	sim := gpiosim.New()
	port := gpio.New(sim, sim, sim, sim)

	pins, err := periphio.RegisterAll(port, "TEST")
	if err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	if len(pins) != gpio.NumPins {
		t.Fatalf("registered %d pins, want %d", len(pins), gpio.NumPins)
	}
	p := gpioreg.ByName("TESTDIO5")
	if p == nil {
		t.Fatal("TESTDIO5 not found in gpioreg")
	}
	if p.Number() != 5 {
		t.Errorf("TESTDIO5.Number() = %d, want 5", p.Number())
	}
}
