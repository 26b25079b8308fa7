package gpio

// Pin is one physical pin of the controller. Pins are created by New
// and live for the life of the Port; they are only ever reconfigured.
// A Pin caches nothing about its electrical configuration: the
// authoritative state is always the word currently held in the
// hardware multiplex-control register.
//
// Configuration writes to the same pin from different priority levels
// are not serialized here; callers must keep a single writer per pin.
type Pin struct {
	index   int
	mask    uint32
	bank    Bank
	mux     Mux
	events  EventRouter
	handler Handler
}

// Index returns the pin's immutable index, 0..31.
func (p *Pin) Index() int {
	return p.index
}

// Mask returns 1 << Index(), the pin's bit in the combined registers.
func (p *Pin) Mask() uint32 {
	return p.mask
}

// MakeDigitalOutput claims the pin for plain GPIO output. The
// multiplex write (function select, electrical parameters, input
// enable cleared) happens before the output-enable bit is asserted so
// the pin never drives with unsettled parameters.
func (p *Pin) MakeDigitalOutput() {
	p.mux.SetConfig(p.index, muxAttrs{portID: portIDGPIO, drive: driveAuto, ioMode: ioModeNormal}.word())
	p.bank.SetOutputEnable(p.bank.OutputEnable() | p.mask)
}

// MakeDigitalInput claims the pin for plain GPIO input: one replacing
// multiplex write with input enable set.
func (p *Pin) MakeDigitalInput() {
	p.mux.SetConfig(p.index, muxAttrs{portID: portIDGPIO, drive: driveAuto, ioMode: ioModeNormal, inputEn: true}.word())
}

// ConfigureFunction multiplexes the pin to fn with one full replacing
// write of the pin's multiplex-control register, composed from the
// function attribute table. Every field is re-specified, so no field
// can retain a stale value from a previous function. For PWM the
// timer-to-pin event cross-connect is programmed first.
func (p *Pin) ConfigureFunction(fn Function) {
	switch fn.kind {
	case funcDigitalOutput:
		p.MakeDigitalOutput()
		return
	case funcDigitalInput:
		p.MakeDigitalInput()
		return
	case funcPWM:
		p.events.RouteTimer(fn.timer)
		p.mux.SetConfig(p.index, muxAttrs{
			portID: portEventID(fn.timer),
			drive:  driveMax,
			ioMode: ioModeNormal,
		}.word())
		debugf("gpio: pin %d -> %s", p.index, fn)
		return
	}
	attrs, ok := functionAttrs[fn.kind]
	if !ok {
		panic("gpio: unknown pin function")
	}
	p.mux.SetConfig(p.index, attrs.word())
	debugf("gpio: pin %d -> %s", p.index, fn)
}

// SetFloatingState selects the pin's pull resistor. Pull state is
// orthogonal to function, so this is the one partial field update:
// a read-modify-write of the pull field only.
func (p *Pin) SetFloatingState(state FloatingState) {
	var code uint32
	switch state {
	case PullDown:
		code = PullCodeDown
	case PullUp:
		code = PullCodeUp
	case PullNone:
		code = PullCodeNone
	default:
		panic("gpio: invalid floating state")
	}
	p.mux.ModifyConfig(p.index, pullMask, code<<pullPos)
}

// FloatingState reads the pin's pull resistor selection back from the
// hardware. The field's encoding space is closed; a value outside it
// means the register was corrupted by something other than this
// package.
func (p *Pin) FloatingState() FloatingState {
	switch (p.mux.Config(p.index) & pullMask) >> pullPos {
	case PullCodeDown:
		return PullDown
	case PullCodeUp:
		return PullUp
	case PullCodeNone:
		return PullNone
	default:
		panic("gpio: reserved pull encoding read from hardware")
	}
}

// DeactivateToLowPower parks the pin for low power consumption.
func (p *Pin) DeactivateToLowPower() {
	p.SetFloatingState(PullNone)
}

// IsInput reports whether the pin's input buffer is enabled.
func (p *Pin) IsInput() bool {
	return p.mux.Config(p.index)&inputEnBit != 0
}

// IsOutput reports whether the pin is in the output role. Pins on this
// hardware are direction-exclusive: a pin whose input buffer is off is
// driven.
func (p *Pin) IsOutput() bool {
	return !p.IsInput()
}

// Configuration derives the pin's direction from the enable flags. All
// four states of the model are handled even though InputOutput and
// Other cannot be produced by this package's own operations.
func (p *Pin) Configuration() Configuration {
	input := p.IsInput()
	output := p.IsOutput()
	switch {
	case input && output:
		return InputOutput
	case output:
		return Output
	case input:
		return Input
	default:
		return Other
	}
}

// DisableInput returns the current configuration unchanged. Pins are
// either inputs or outputs on this chip; disabling input would force
// the pin to drive, which is unsafe as a silent side effect.
func (p *Pin) DisableInput() Configuration {
	return p.Configuration()
}

// DisableOutput stops the pin from driving by making it an input,
// the only way to do so on direction-exclusive hardware.
func (p *Pin) DisableOutput() Configuration {
	p.MakeDigitalInput()
	return p.Configuration()
}
