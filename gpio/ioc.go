package gpio

// Field layout of a pin's multiplex-control word (IOCFGn). The layout
// follows the CC26x2 I/O controller register map.
const (
	currentModePos   = 8
	driveStrengthPos = 10
	pullPos          = 13
	edgeDetPos       = 16
	ioModePos        = 24
	wakeupCfgPos     = 27
)

const (
	portIDMask        uint32 = 0x3F // bits 5:0, function-select code
	currentModeMask   uint32 = 0x3 << currentModePos
	driveStrengthMask uint32 = 0x3 << driveStrengthPos
	slewRedBit        uint32 = 1 << 12 // slew-rate reduction
	pullMask          uint32 = 0x3 << pullPos
	edgeDetMask       uint32 = 0x3 << edgeDetPos
	edgeIRQEnBit      uint32 = 1 << 18
	ioModeMask        uint32 = 0x7 << ioModePos
	wakeupCfgMask     uint32 = 0x3 << wakeupCfgPos
	inputEnBit        uint32 = 1 << 29
	hystEnBit         uint32 = 1 << 30
)

// Function-select codes (PORT_ID field values).
const (
	portIDGPIO       uint32 = 0x00
	portIDAONClk32k  uint32 = 0x07
	portIDAuxIO      uint32 = 0x08 // analog domain
	portIDI2CMSSDA   uint32 = 0x0D
	portIDI2CMSSCL   uint32 = 0x0E
	portIDUART0RX    uint32 = 0x0F
	portIDUART0TX    uint32 = 0x10
	portIDUART1RX    uint32 = 0x13
	portIDUART1TX    uint32 = 0x14
	portIDPortEvent0 uint32 = 0x17 // PORT_EVENT0..7 are consecutive
)

// Pull-mode field encodings. The encoding space is closed: hardware
// written by this package only ever holds one of the three values, and
// 0 is a reserved encoding.
const (
	PullCodeDown uint32 = 1
	PullCodeUp   uint32 = 2
	PullCodeNone uint32 = 3
)

// Edge-detect field encodings.
const (
	EdgeCodeNone    uint32 = 0
	EdgeCodeFalling uint32 = 1
	EdgeCodeRising  uint32 = 2
	EdgeCodeBoth    uint32 = 3
)

// Drive-strength field encodings.
const (
	driveAuto uint32 = 0
	driveMax  uint32 = 3
)

// Current-mode field encodings.
const (
	currentLow uint32 = 0
)

// I/O-mode field encodings.
const (
	ioModeNormal    uint32 = 0
	ioModeOpenDrain uint32 = 4
)

// muxAttrs is one row of the function attribute table: the complete
// electrical parameter set written for a function. Composing a word
// from a row re-specifies every field, so a full replacing write can
// never leave a stale value from a previous function. Fields not
// represented here (pull, slew, wake-up, edge detect, edge IRQ enable)
// compose to their inactive/none encodings.
type muxAttrs struct {
	portID     uint32
	drive      uint32
	ioMode     uint32
	inputEn    bool
	hystEn     bool
	lowCurrent bool
}

// word composes the full multiplex-control word for the row.
func (a muxAttrs) word() uint32 {
	w := a.portID & portIDMask
	w |= a.drive << driveStrengthPos
	w |= PullCodeNone << pullPos
	w |= a.ioMode << ioModePos
	if a.inputEn {
		w |= inputEnBit
	}
	if a.hystEn {
		w |= hystEnBit
	}
	if a.lowCurrent {
		w |= currentLow << currentModePos
	}
	return w
}

// portEventID returns the PORT_EVENT function-select code wired to ch
// by the cross-connect table. The mapping is fixed 1:1.
func portEventID(ch TimerChannel) uint32 {
	return portIDPortEvent0 + uint32(ch)
}

// ConfigFields is the decoded form of a multiplex-control word, used
// for configuration queries and by host-side diagnostics. Raw field
// values are kept as read so that corrupt encodings survive decode.
type ConfigFields struct {
	PortID        uint32
	CurrentMode   uint32
	DriveStrength uint32
	SlewReduced   bool
	Pull          uint32
	EdgeDetect    uint32
	EdgeIRQEnable bool
	IOMode        uint32
	WakeupCfg     uint32
	InputEnabled  bool
	Hysteresis    bool
}

// DecodeConfig splits a multiplex-control word into its fields.
func DecodeConfig(word uint32) ConfigFields {
	return ConfigFields{
		PortID:        word & portIDMask,
		CurrentMode:   (word & currentModeMask) >> currentModePos,
		DriveStrength: (word & driveStrengthMask) >> driveStrengthPos,
		SlewReduced:   word&slewRedBit != 0,
		Pull:          (word & pullMask) >> pullPos,
		EdgeDetect:    (word & edgeDetMask) >> edgeDetPos,
		EdgeIRQEnable: word&edgeIRQEnBit != 0,
		IOMode:        (word & ioModeMask) >> ioModePos,
		WakeupCfg:     (word & wakeupCfgMask) >> wakeupCfgPos,
		InputEnabled:  word&inputEnBit != 0,
		Hysteresis:    word&hystEnBit != 0,
	}
}

// PortIDName returns a readable name for the function-select code.
func (f ConfigFields) PortIDName() string {
	switch {
	case f.PortID == portIDGPIO:
		return "GPIO"
	case f.PortID == portIDAONClk32k:
		return "AON_CLK32K"
	case f.PortID == portIDAuxIO:
		return "AUX_IO"
	case f.PortID == portIDI2CMSSDA:
		return "I2C_MSSDA"
	case f.PortID == portIDI2CMSSCL:
		return "I2C_MSSCL"
	case f.PortID == portIDUART0RX:
		return "UART0_RX"
	case f.PortID == portIDUART0TX:
		return "UART0_TX"
	case f.PortID == portIDUART1RX:
		return "UART1_RX"
	case f.PortID == portIDUART1TX:
		return "UART1_TX"
	case f.PortID >= portIDPortEvent0 && f.PortID < portIDPortEvent0+NumTimerChannels:
		return "PORT_EVENT" + string(rune('0'+f.PortID-portIDPortEvent0))
	default:
		return "UNKNOWN"
	}
}

// PullName returns a readable name for the pull-mode encoding.
func (f ConfigFields) PullName() string {
	switch f.Pull {
	case PullCodeDown:
		return "down"
	case PullCodeUp:
		return "up"
	case PullCodeNone:
		return "none"
	default:
		return "reserved"
	}
}

// EdgeName returns a readable name for the edge-detect encoding.
func (f ConfigFields) EdgeName() string {
	switch f.EdgeDetect {
	case EdgeCodeFalling:
		return "falling"
	case EdgeCodeRising:
		return "rising"
	case EdgeCodeBoth:
		return "both"
	default:
		return "off"
	}
}

// IOModeName returns a readable name for the I/O-mode encoding.
func (f ConfigFields) IOModeName() string {
	switch f.IOMode {
	case ioModeNormal:
		return "normal"
	case ioModeOpenDrain:
		return "open-drain"
	default:
		return "other"
	}
}
