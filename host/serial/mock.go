package serial

import (
	"bytes"
	"errors"
	"sync"
)

// ErrClosed is returned by mock I/O after Close.
var ErrClosed = errors.New("serial: port closed")

// MockPort is an in-memory Port for tests. Reads are served from a
// scripted reply buffer, writes are captured for inspection, and Flush
// discards whatever reply is still pending, like a real UART FIFO.
type MockPort struct {
	mu      sync.Mutex
	reply   bytes.Buffer
	written bytes.Buffer
	flushes int
	closed  bool
}

// NewMock returns an open MockPort with nothing scripted.
func NewMock() *MockPort {
	return &MockPort{}
}

// QueueReply appends data the next Reads will return.
func (p *MockPort) QueueReply(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reply.Write(data)
}

// Read serves the scripted reply; io.EOF once it is exhausted.
func (p *MockPort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, ErrClosed
	}
	return p.reply.Read(b)
}

// Write captures data for later inspection via Written.
func (p *MockPort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, ErrClosed
	}
	return p.written.Write(b)
}

// Close marks the port closed; later Reads and Writes fail.
func (p *MockPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Flush discards the pending reply.
func (p *MockPort) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.reply.Reset()
	p.flushes++
	return nil
}

// Written returns everything sent to the port so far.
func (p *MockPort) Written() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]byte(nil), p.written.Bytes()...)
}

// Flushes returns how many times Flush was called.
func (p *MockPort) Flushes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushes
}

var _ Port = (*MockPort)(nil)
