package gpio

// Function selects the role a pin is multiplexed to. The set is closed;
// construct values from the package variables and PWMOutput. The zero
// value is DigitalInput.
type Function struct {
	kind  funcKind
	timer TimerChannel // PWM only
}

type funcKind uint8

const (
	funcDigitalInput funcKind = iota
	funcDigitalOutput
	funcUART0TX
	funcUART0RX
	funcUART1TX
	funcUART1RX
	funcI2CSDA
	funcI2CSCL
	funcPWM
	funcAnalogInput
	funcAnalogOutput
	funcClockInput32k
)

// Pin functions without parameters.
var (
	DigitalInput  = Function{kind: funcDigitalInput}
	DigitalOutput = Function{kind: funcDigitalOutput}
	UART0TX       = Function{kind: funcUART0TX}
	UART0RX       = Function{kind: funcUART0RX}
	UART1TX       = Function{kind: funcUART1TX}
	UART1RX       = Function{kind: funcUART1RX}
	I2CSDA        = Function{kind: funcI2CSDA}
	I2CSCL        = Function{kind: funcI2CSCL}
	AnalogInput   = Function{kind: funcAnalogInput}
	AnalogOutput  = Function{kind: funcAnalogOutput}
	ClockInput32k = Function{kind: funcClockInput32k}
)

// PWMOutput selects PWM output driven by the given timer compare
// half-channel. Configuring it also programs the event cross-connect
// that routes the channel to the pin's PORT_EVENT input.
func PWMOutput(ch TimerChannel) Function {
	return Function{kind: funcPWM, timer: ch}
}

func (f Function) String() string {
	switch f.kind {
	case funcDigitalInput:
		return "DigitalInput"
	case funcDigitalOutput:
		return "DigitalOutput"
	case funcUART0TX:
		return "UART0TX"
	case funcUART0RX:
		return "UART0RX"
	case funcUART1TX:
		return "UART1TX"
	case funcUART1RX:
		return "UART1RX"
	case funcI2CSDA:
		return "I2CSDA"
	case funcI2CSCL:
		return "I2CSCL"
	case funcPWM:
		return "PWMOutput(" + f.timer.String() + ")"
	case funcAnalogInput:
		return "AnalogInput"
	case funcAnalogOutput:
		return "AnalogOutput"
	case funcClockInput32k:
		return "ClockInput32k"
	default:
		return "Function(?)"
	}
}

// Edge selects which signal transitions latch an event for a pin.
type Edge uint8

const (
	Falling Edge = iota
	Rising
	Either
)

func (e Edge) String() string {
	switch e {
	case Falling:
		return "falling"
	case Rising:
		return "rising"
	case Either:
		return "either"
	default:
		return "edge(?)"
	}
}

// FloatingState selects the pull resistor applied to a pin. Pull state
// is independent of the selected function.
type FloatingState uint8

const (
	PullNone FloatingState = iota
	PullUp
	PullDown
)

func (s FloatingState) String() string {
	switch s {
	case PullNone:
		return "none"
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "pull(?)"
	}
}

// Configuration is the direction a pin reports when queried. Input and
// Output are the states reachable through this package; InputOutput and
// Other are representable for diagnosing external interference.
type Configuration uint8

const (
	Input Configuration = iota
	Output
	InputOutput
	Other
)

func (c Configuration) String() string {
	switch c {
	case Input:
		return "Input"
	case Output:
		return "Output"
	case InputOutput:
		return "InputOutput"
	case Other:
		return "Other"
	default:
		return "Configuration(?)"
	}
}

// functionAttrs is the exhaustive attribute table for the fixed-field
// functions. PWM is excluded: its port ID depends on the timer channel.
var functionAttrs = map[funcKind]muxAttrs{
	funcUART0TX:      {portID: portIDUART0TX, drive: driveAuto, ioMode: ioModeNormal},
	funcUART0RX:      {portID: portIDUART0RX, drive: driveAuto, ioMode: ioModeNormal, inputEn: true},
	funcUART1TX:      {portID: portIDUART1TX, drive: driveAuto, ioMode: ioModeNormal},
	funcUART1RX:      {portID: portIDUART1RX, drive: driveAuto, ioMode: ioModeNormal, inputEn: true},
	funcI2CSDA:       {portID: portIDI2CMSSDA, drive: driveAuto, ioMode: ioModeOpenDrain, inputEn: true},
	funcI2CSCL:       {portID: portIDI2CMSSCL, drive: driveAuto, ioMode: ioModeOpenDrain, inputEn: true},
	funcAnalogInput:  {portID: portIDAuxIO, drive: driveAuto, ioMode: ioModeNormal, inputEn: true},
	funcAnalogOutput: {portID: portIDAuxIO, drive: driveAuto, ioMode: ioModeNormal},
	funcClockInput32k: {
		portID:     portIDAONClk32k,
		drive:      driveAuto,
		ioMode:     ioModeNormal,
		inputEn:    true,
		hystEn:     true, // noise immunity for a slow clock edge
		lowCurrent: true,
	},
}
