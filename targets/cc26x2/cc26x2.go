//go:build tinygo

package cc26x2

import (
	"runtime/volatile"
	"unsafe"

	"github.com/diamondized/tock/gpio"
)

const (
	gpioBase  uintptr = 0x40022000
	iocBase   uintptr = 0x40081000
	eventBase uintptr = 0x40083000

	// Cortex-M NVIC word 0 registers; the GPIO edge-detect line is
	// interrupt number 0.
	nvicISER uintptr = 0xE000E100
	nvicICPR uintptr = 0xE000E280
	gpioIRQ  uint32  = 0
)

// gpioRegs overlays the combined port register block.
type gpioRegs struct {
	_       [0x90]byte
	doutSet volatile.Register32 // write-only, set output
	_       [12]byte
	doutClr volatile.Register32 // write-only, clear output
	_       [12]byte
	doutTgl volatile.Register32 // write-only, toggle output
	_       [12]byte
	din     volatile.Register32
	_       [12]byte
	doe     volatile.Register32
	_       [12]byte
	evFlags volatile.Register32 // write-1-to-clear
}

// iocRegs overlays the per-pin multiplex-control register file.
type iocRegs struct {
	cfg [gpio.NumPins]volatile.Register32
}

// eventRegs overlays the GPT capture-select registers of the event
// fabric, the timer-to-pin cross-connect table.
type eventRegs struct {
	_            [0x200]byte
	gpt0aCaptSel volatile.Register32
	gpt0bCaptSel volatile.Register32
	_            [0xF8]byte
	gpt1aCaptSel volatile.Register32
	gpt1bCaptSel volatile.Register32
	_            [0xF8]byte
	gpt2aCaptSel volatile.Register32
	gpt2bCaptSel volatile.Register32
	_            [0xF8]byte
	gpt3aCaptSel volatile.Register32
	gpt3bCaptSel volatile.Register32
}

// Event fabric codes for PORT_EVENT0..7, written into the GPT capture
// selectors in cross-connect table order.
const portEvent0Code uint32 = 0x55

var (
	gpioHW  = (*gpioRegs)(unsafe.Pointer(gpioBase))
	iocHW   = (*iocRegs)(unsafe.Pointer(iocBase))
	eventHW = (*eventRegs)(unsafe.Pointer(eventBase))
)

// hw implements gpio.Bank, gpio.Mux and gpio.EventRouter over the
// memory-mapped registers.
type hw struct {
	g   *gpioRegs
	ioc *iocRegs
	evt *eventRegs
}

func (h hw) SetOutput(mask uint32)    { h.g.doutSet.Set(mask) }
func (h hw) ClearOutput(mask uint32)  { h.g.doutClr.Set(mask) }
func (h hw) ToggleOutput(mask uint32) { h.g.doutTgl.Set(mask) }
func (h hw) In() uint32               { return h.g.din.Get() }
func (h hw) OutputEnable() uint32     { return h.g.doe.Get() }
func (h hw) SetOutputEnable(v uint32) { h.g.doe.Set(v) }
func (h hw) EventFlags() uint32       { return h.g.evFlags.Get() }

func (h hw) ClearEventFlags(mask uint32) { h.g.evFlags.Set(mask) }

func (h hw) Config(pin int) uint32 { return h.ioc.cfg[pin].Get() }

func (h hw) SetConfig(pin int, word uint32) { h.ioc.cfg[pin].Set(word) }

func (h hw) ModifyConfig(pin int, mask, bits uint32) {
	h.ioc.cfg[pin].Set(h.ioc.cfg[pin].Get()&^mask | bits&mask)
}

func (h hw) RouteTimer(ch gpio.TimerChannel) {
	h.captSel(ch).Set(portEvent0Code + uint32(ch))
}

func (h hw) captSel(ch gpio.TimerChannel) *volatile.Register32 {
	switch ch {
	case gpio.GPT0A:
		return &h.evt.gpt0aCaptSel
	case gpio.GPT0B:
		return &h.evt.gpt0bCaptSel
	case gpio.GPT1A:
		return &h.evt.gpt1aCaptSel
	case gpio.GPT1B:
		return &h.evt.gpt1bCaptSel
	case gpio.GPT2A:
		return &h.evt.gpt2aCaptSel
	case gpio.GPT2B:
		return &h.evt.gpt2bCaptSel
	case gpio.GPT3A:
		return &h.evt.gpt3aCaptSel
	case gpio.GPT3B:
		return &h.evt.gpt3bCaptSel
	default:
		panic("cc26x2: invalid timer channel")
	}
}

// nvicLine drives the NVIC registers for one word-0 interrupt number.
type nvicLine struct {
	irq uint32
}

func (n nvicLine) reg(base uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(base + uintptr(n.irq/32)*4))
}

func (n nvicLine) ClearPending() { n.reg(nvicICPR).Set(1 << (n.irq % 32)) }
func (n nvicLine) Enable()       { n.reg(nvicISER).Set(1 << (n.irq % 32)) }

// NewPort wires a gpio.Port to the chip's register map and the GPIO
// NVIC line. Call once at startup; the interrupt vector for the GPIO
// line must invoke the returned port's HandleInterrupt.
func NewPort() *gpio.Port {
	h := hw{g: gpioHW, ioc: iocHW, evt: eventHW}
	return gpio.New(h, h, h, nvicLine{irq: gpioIRQ})
}
