// Package gpio drives the pin controller of a CC26x2-class SoC: 32
// physical pins, a per-pin multiplex-control register selecting the
// function and electrical parameters of each pin, combined write-only
// set/clear/toggle data registers, and a single shared interrupt line
// demultiplexed from a combined event-flag register.
//
// The package owns the composition of multiplex-control words and the
// interrupt fan-out. It does not touch memory-mapped registers itself;
// raw register access goes through the narrow interfaces in hw.go, so
// the same code runs against real hardware (targets/cc26x2) and against
// the in-memory simulator (gpio/gpiosim) used by tests.
package gpio

import (
	"errors"
	"fmt"
)

// NumPins is the number of physical pins owned by the controller.
const NumPins = 32

// Handler is invoked synchronously from the interrupt context when an
// edge event fires for the pin it is registered on. Handlers must not
// block; work with any real latency belongs in a lower-priority task
// owned by the handler's registrant.
type Handler func(pin *Pin)

var (
	// ErrPendingUnsupported is returned by Pin.Pending: the hardware has
	// no queryable per-pin pending bit independent of the combined
	// event-flag register.
	ErrPendingUnsupported = errors.New("gpio: per-pin pending status not supported by this hardware")

	// ErrPinOutOfRange is returned by Port.Pin for indices outside 0..31.
	ErrPinOutOfRange = errors.New("gpio: pin index out of range")
)

// DebugWriter is a function type for writing debug messages.
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(string) {}

	// debugEnabled controls whether debug output is active.
	// Disabled by default; dispatch runs in interrupt context.
	debugEnabled bool
)

// SetDebugWriter sets the platform-specific debug output function.
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(w DebugWriter) {
	debugPrintln = w
}

// SetDebugEnabled enables or disables debug output.
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

func debugf(format string, args ...interface{}) {
	if debugEnabled {
		debugPrintln(fmt.Sprintf(format, args...))
	}
}
