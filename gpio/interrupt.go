package gpio

// EnableInterrupt arms edge detection on the pin: the edge-detect mode
// and the edge-IRQ-enable flag are set together in one modify.
func (p *Pin) EnableInterrupt(edge Edge) {
	var code uint32
	switch edge {
	case Falling:
		code = EdgeCodeFalling
	case Rising:
		code = EdgeCodeRising
	case Either:
		code = EdgeCodeBoth
	default:
		panic("gpio: invalid interrupt edge")
	}
	p.mux.ModifyConfig(p.index, edgeDetMask|edgeIRQEnBit, code<<edgeDetPos|edgeIRQEnBit)
}

// DisableInterrupt clears only the edge-IRQ-enable flag. The selected
// edge-detect mode is left in the register: re-enabling without
// re-specifying an edge reuses the last mode, so callers that need a
// known mode after re-enable must call EnableInterrupt again.
func (p *Pin) DisableInterrupt() {
	p.mux.ModifyConfig(p.index, edgeIRQEnBit, 0)
}

// SetHandler replaces the pin's single handler slot. The previous
// reference is silently discarded; the pin never owns the handler or
// its captured state, and a nil handler leaves the slot empty.
func (p *Pin) SetHandler(h Handler) {
	p.handler = h
}

// Pending always returns ErrPendingUnsupported: the hardware has no
// per-pin pending bit independent of the combined event-flag register,
// and silently answering false would be misleading.
func (p *Pin) Pending() (bool, error) {
	return false, ErrPendingUnsupported
}

// fire invokes the registered handler, if any.
func (p *Pin) fire() {
	if p.handler != nil {
		p.handler(p)
	}
}
