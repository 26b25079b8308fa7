package gpiosim_test

import (
	"testing"

	"github.com/diamondized/tock/gpio"
	"github.com/diamondized/tock/gpio/gpiosim"
)

func TestDataRegisterSemantics(t *testing.T) {
	sim := gpiosim.New()
	sim.SetOutputEnable(0xFFFFFFFF)

	sim.SetOutput(0b0110)
	if got := sim.In(); got != 0b0110 {
		t.Fatalf("In() = %#b after set, want 0b0110", got)
	}

	// Written 0 bits are no-ops for their pins.
	sim.SetOutput(0)
	sim.ClearOutput(0b0010)
	if got := sim.In(); got != 0b0100 {
		t.Fatalf("In() = %#b after clear, want 0b0100", got)
	}

	sim.ToggleOutput(0b0101)
	if got := sim.In(); got != 0b0001 {
		t.Fatalf("In() = %#b after toggle, want 0b0001", got)
	}
}

func TestEventFlagsWriteOneToClear(t *testing.T) {
	sim := gpiosim.New()
	for _, pin := range []int{2, 5, 9} {
		sim.LatchEvent(pin)
	}

	sim.ClearEventFlags(1<<2 | 1<<9)
	if got := sim.EventFlags(); got != 1<<5 {
		t.Fatalf("EventFlags() = %#x, want only pin 5 latched", got)
	}

	// Clearing an unlatched bit is a no-op.
	sim.ClearEventFlags(1 << 12)
	if got := sim.EventFlags(); got != 1<<5 {
		t.Fatalf("EventFlags() = %#x after no-op clear, want only pin 5", got)
	}
}

func TestExternalLevelIgnoredWhileDriving(t *testing.T) {
	sim := gpiosim.New()
	port := gpio.New(sim, sim, sim, sim)

	pin := port.MustPin(10)
	pin.MakeDigitalOutput()
	pin.Set()

	sim.SetLevel(10, false)
	if !pin.Read() {
		t.Error("external level overrode a driven pad")
	}

	pin.DisableOutput()
	sim.SetOutputEnable(sim.OutputEnable() &^ pin.Mask())
	sim.SetLevel(10, false)
	if pin.Read() {
		t.Error("released pad did not follow the external level")
	}
}

func TestEdgeLatchFollowsConfiguredMode(t *testing.T) {
	cases := []struct {
		edge           gpio.Edge
		onRise, onFall bool
	}{
		{gpio.Rising, true, false},
		{gpio.Falling, false, true},
		{gpio.Either, true, true},
	}
	for _, tc := range cases {
		sim := gpiosim.New()
		port := gpio.New(sim, sim, sim, sim)
		pin := port.MustPin(0)
		pin.MakeDigitalInput()
		pin.EnableInterrupt(tc.edge)
		pin.DisableInterrupt() // latch without firing

		sim.SetLevel(0, true)
		if got := sim.EventFlags()&1 != 0; got != tc.onRise {
			t.Errorf("%s: latched on rise = %v, want %v", tc.edge, got, tc.onRise)
		}
		sim.ClearEventFlags(1)
		sim.SetLevel(0, false)
		if got := sim.EventFlags()&1 != 0; got != tc.onFall {
			t.Errorf("%s: latched on fall = %v, want %v", tc.edge, got, tc.onFall)
		}
	}
}
