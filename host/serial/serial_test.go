package serial_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/diamondized/tock/gpio"
	"github.com/diamondized/tock/gpio/gpiosim"
	"github.com/diamondized/tock/host/dump"
	"github.com/diamondized/tock/host/serial"
)

// monitorReply configures a few pins through the real configurator and
// serializes the simulator's registers the way the debug monitor
// answers a pindump command.
func monitorReply(t *testing.T) ([]byte, *gpiosim.Sim) {
	t.Helper()
	sim := gpiosim.New()
	port := gpio.New(sim, sim, sim, sim)

	port.MustPin(2).ConfigureFunction(gpio.UART0TX)
	port.MustPin(3).ConfigureFunction(gpio.UART0RX)
	led := port.MustPin(6)
	led.MakeDigitalOutput()
	led.Set()

	var b bytes.Buffer
	b.WriteString("# pindump\n")
	for i := 0; i < gpio.NumPins; i++ {
		fmt.Fprintf(&b, "%08x\n", sim.Config(i))
	}
	fmt.Fprintf(&b, "%08x\n", sim.OutputEnable())
	fmt.Fprintf(&b, "%08x\n", sim.In())
	return b.Bytes(), sim
}

func TestMockPortPindumpRoundTrip(t *testing.T) {
	reply, sim := monitorReply(t)

	port := serial.NewMock()
	port.QueueReply(reply)

	if _, err := port.Write([]byte("pindump\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := string(port.Written()); got != "pindump\n" {
		t.Errorf("monitor received %q, want %q", got, "pindump\n")
	}

	snap, err := dump.Read(port)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if snap.IOC[2] != sim.Config(2) {
		t.Errorf("IOC[2] = %#x, want %#x", snap.IOC[2], sim.Config(2))
	}
	if snap.DOE != sim.OutputEnable() {
		t.Errorf("DOE = %#x, want %#x", snap.DOE, sim.OutputEnable())
	}
	if snap.DIN != sim.In() {
		t.Errorf("DIN = %#x, want %#x", snap.DIN, sim.In())
	}
}

func TestMockPortFlushDiscardsPending(t *testing.T) {
	port := serial.NewMock()
	port.QueueReply([]byte("stale output from an earlier command\n"))

	if err := port.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if port.Flushes() != 1 {
		t.Errorf("Flushes() = %d, want 1", port.Flushes())
	}
	var b [16]byte
	if n, _ := port.Read(b[:]); n != 0 {
		t.Errorf("read %d bytes after Flush, want 0", n)
	}
}

func TestMockPortClosed(t *testing.T) {
	port := serial.NewMock()
	if err := port.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := port.Write([]byte("pindump\n")); !errors.Is(err, serial.ErrClosed) {
		t.Errorf("Write after Close = %v, want ErrClosed", err)
	}
	var b [1]byte
	if _, err := port.Read(b[:]); !errors.Is(err, serial.ErrClosed) {
		t.Errorf("Read after Close = %v, want ErrClosed", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := serial.DefaultConfig("/dev/ttyACM0")
	if cfg.Device != "/dev/ttyACM0" {
		t.Errorf("Device = %q", cfg.Device)
	}
	if cfg.Baud != 115200 {
		t.Errorf("Baud = %d, want 115200", cfg.Baud)
	}
}

func TestOpenNilConfig(t *testing.T) {
	if _, err := serial.Open(nil); err == nil {
		t.Fatal("Open(nil) succeeded")
	}
}
