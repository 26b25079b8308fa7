package gpio

// The interfaces below are the whole hardware boundary of the package.
// Platform code (targets/cc26x2) implements them over memory-mapped
// registers; gpiosim implements them in RAM for tests. Register writes
// are assumed synchronous and non-failing, matching memory-mapped I/O
// semantics, so none of these methods return errors.

// Bank is the combined port register block shared by all 32 pins.
type Bank interface {
	// SetOutput writes mask to the write-only DOUT set register.
	// A 1 bit drives that pin high; a 0 bit is a no-op for that pin.
	SetOutput(mask uint32)

	// ClearOutput writes mask to the write-only DOUT clear register.
	ClearOutput(mask uint32)

	// ToggleOutput writes mask to the write-only DOUT toggle register.
	ToggleOutput(mask uint32)

	// In reads the shared data-in register, one level bit per pin.
	In() uint32

	// OutputEnable reads the output-enable register.
	OutputEnable() uint32

	// SetOutputEnable replaces the output-enable register.
	SetOutputEnable(v uint32)

	// EventFlags reads the combined event-flag register, one latched
	// edge event bit per pin.
	EventFlags() uint32

	// ClearEventFlags writes mask to the event-flag register. The
	// register has write-1-to-clear semantics: every 1 bit in mask
	// clears that pin's latched event, 0 bits are untouched.
	ClearEventFlags(mask uint32)
}

// Mux is the per-pin multiplex-control register file (one 32-bit
// configuration word per pin).
type Mux interface {
	// Config reads pin's multiplex-control word.
	Config(pin int) uint32

	// SetConfig replaces pin's multiplex-control word in one write.
	SetConfig(pin int, word uint32)

	// ModifyConfig read-modify-writes pin's multiplex-control word:
	// the bits selected by mask are replaced with bits, all others are
	// preserved.
	ModifyConfig(pin int, mask, bits uint32)
}

// TimerChannel identifies one of the eight GPT compare half-channels
// that can be cross-connected to a pin's PORT_EVENT function input.
type TimerChannel uint8

// GPT compare half-channels, in cross-connect table order.
const (
	GPT0A TimerChannel = iota
	GPT0B
	GPT1A
	GPT1B
	GPT2A
	GPT2B
	GPT3A
	GPT3B

	NumTimerChannels = 8
)

var timerChannelNames = [NumTimerChannels]string{
	"GPT0A", "GPT0B", "GPT1A", "GPT1B", "GPT2A", "GPT2B", "GPT3A", "GPT3B",
}

func (ch TimerChannel) String() string {
	if int(ch) < len(timerChannelNames) {
		return timerChannelNames[ch]
	}
	return "GPT?"
}

// EventRouter programs the timer-to-pin event cross-connect: a fixed
// table of eight selector registers, one per GPT half-channel, each
// routed to the matching PORT_EVENT function code.
type EventRouter interface {
	// RouteTimer connects ch's compare event to the PORT_EVENT input
	// consumed by pins configured with PWMOutput(ch).
	RouteTimer(ch TimerChannel)
}

// IRQLine is the upstream interrupt-controller resource for the GPIO
// peripheral line. Priority and vectoring live outside this package;
// the port only clears and re-arms the line after each dispatch.
type IRQLine interface {
	ClearPending()
	Enable()
}
