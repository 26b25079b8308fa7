// Package dump parses and renders pin-configuration snapshots taken
// from a board's debug monitor: the 32 multiplex-control words
// followed by the output-enable and data-in registers, one hex word
// per line.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/diamondized/tock/gpio"
)

// Snapshot is one capture of the controller's configuration state.
type Snapshot struct {
	IOC [gpio.NumPins]uint32 // multiplex-control word per pin
	DOE uint32               // output-enable register
	DIN uint32               // data-in register
}

// words is the wire size of a snapshot: 32 IOC words, DOE, DIN.
const words = gpio.NumPins + 2

// Read parses a snapshot from r. The format is one hexadecimal 32-bit
// word per line (digit case and an optional 0x or 0X prefix do not
// matter); blank lines and
// lines starting with '#' are skipped. Reading stops after the 34th
// word, so r may keep streaming.
func Read(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	n := 0
	scanner := bufio.NewScanner(r)
	for n < words && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(line), "0x"), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("dump: word %d: %w", n, err)
		}
		switch {
		case n < gpio.NumPins:
			snap.IOC[n] = uint32(v)
		case n == gpio.NumPins:
			snap.DOE = uint32(v)
		default:
			snap.DIN = uint32(v)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}
	if n < words {
		return nil, fmt.Errorf("dump: short snapshot: got %d of %d words", n, words)
	}
	return &snap, nil
}

// Render writes the decoded snapshot as a per-pin table.
func (s *Snapshot) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PIN\tWORD\tFUNCTION\tDIR\tPULL\tMODE\tEDGE\tIRQ\tHYST\tDOE\tLEVEL")
	for i := 0; i < gpio.NumPins; i++ {
		f := gpio.DecodeConfig(s.IOC[i])
		mask := uint32(1) << uint(i)
		fmt.Fprintf(tw, "DIO%d\t%08x\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			i,
			s.IOC[i],
			f.PortIDName(),
			direction(f),
			f.PullName(),
			f.IOModeName(),
			f.EdgeName(),
			onOff(f.EdgeIRQEnable),
			onOff(f.Hysteresis),
			onOff(s.DOE&mask != 0),
			bit(s.DIN&mask),
		)
	}
	return tw.Flush()
}

func direction(f gpio.ConfigFields) string {
	if f.InputEnabled {
		return "in"
	}
	return "out"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func bit(v uint32) int {
	if v != 0 {
		return 1
	}
	return 0
}
