// pindump prints the decoded pin configuration of a board.
//
// The snapshot is read either from a file previously captured with the
// debug monitor, or live over a serial link: the monitor replies to
// the line "pindump" with the 32 multiplex-control words followed by
// the output-enable and data-in registers, one hex word per line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/diamondized/tock/host/dump"
	"github.com/diamondized/tock/host/serial"
)

var (
	file   = flag.String("file", "", "Read the snapshot from a file instead of a serial device")
	device = flag.String("device", "/dev/ttyACM0", "Serial device of the debug monitor")
	baud   = flag.Int("baud", 115200, "Baud rate of the debug UART")
)

func main() {
	flag.Parse()

	snap, err := capture()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pindump: %v\n", err)
		os.Exit(1)
	}

	if err := snap.Render(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pindump: %v\n", err)
		os.Exit(1)
	}
}

func capture() (*dump.Snapshot, error) {
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return dump.Read(f)
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		return nil, err
	}
	if _, err := port.Write([]byte("pindump\n")); err != nil {
		return nil, err
	}
	return dump.Read(port)
}
