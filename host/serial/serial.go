// Package serial abstracts the serial link to a board's debug monitor
// so the diagnostic tools can run against real hardware, a pipe, or a
// mock.
package serial

import (
	"io"
)

// Port is a serial connection to the debug monitor.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any data buffered on the link.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate of the debug UART.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the configuration used by the stock debug
// monitor: 115200 baud with a generous read timeout for slow dumps.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500,
	}
}
