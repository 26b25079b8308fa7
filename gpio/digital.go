package gpio

// The data registers are true set/clear/toggle registers: writing the
// pin's mask has the stated effect, written 0 bits are no-ops. Two
// contexts touching different pins therefore never need a
// read-modify-write and never race.

// Set drives the pin high.
func (p *Pin) Set() {
	p.bank.SetOutput(p.mask)
}

// Clear drives the pin low.
func (p *Pin) Clear() {
	p.bank.ClearOutput(p.mask)
}

// Toggle inverts the pin's output and returns the new level.
func (p *Pin) Toggle() bool {
	p.bank.ToggleOutput(p.mask)
	return p.Read()
}

// Read returns the pin's electrical level at sampling time. There is
// no debouncing and no edge memory.
func (p *Pin) Read() bool {
	return p.bank.In()&p.mask != 0
}
