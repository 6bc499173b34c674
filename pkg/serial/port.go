package serial

import (
	"fmt"
	"os"
)

var _ Device = (*Port)(nil)

// Port is an open serial device.
type Port struct {
	path   string
	fd     int
	closed bool
}

// Open opens the device at path for reading and writing, without making it the controlling terminal.
// The Port should be configured with Configure before use.
func Open(path string) (*Port, error) {
	fd, err := openDevice(path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %v", ErrDeviceOpen, path, err)
	}
	return &Port{path: path, fd: fd}, nil
}

// Path returns the path used to open the Port.
func (p *Port) Path() string {
	return p.path
}

// Configure switches the device to raw 8N1 mode at the configured baud rate.
func (p *Port) Configure(cfg Config) error {
	if p.closed {
		return fmt.Errorf("%w '%s': %v", ErrDeviceConfig, p.path, os.ErrClosed)
	}
	speed, ok := lookupSpeed(cfg.BaudRate)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedBaud, cfg.BaudRate)
	}
	if err := setRaw(p.fd, speed); err != nil {
		return fmt.Errorf("%w '%s': %v", ErrDeviceConfig, p.path, err)
	}
	return nil
}

// Write performs a single write to the device, so n may be less than len(data).
func (p *Port) Write(data []byte) (n int, err error) {
	if p.closed {
		return 0, os.ErrClosed
	}
	n, err = writeDevice(p.fd, data)
	if n < 0 {
		n = 0
	}
	return n, err
}

// Drain blocks until everything written has been transmitted.
func (p *Port) Drain() error {
	if p.closed {
		return os.ErrClosed
	}
	return drainDevice(p.fd)
}

// Close releases the device. Calling Close more than once is not an error.
func (p *Port) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return closeDevice(p.fd)
}
