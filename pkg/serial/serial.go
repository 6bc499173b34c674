package serial

import (
	"errors"
	"fmt"
	"io"
)

const (
	DefaultBaudRate = 115200
)

var (
	ErrDeviceOpen   = errors.New("unable to open device")
	ErrDeviceConfig = errors.New("unable to configure device")
	ErrPartialWrite = errors.New("partial write")
	// ErrUnsupportedBaud also matches ErrDeviceConfig.
	ErrUnsupportedBaud = fmt.Errorf("%w: unsupported baud rate", ErrDeviceConfig)
)

// Config holds the line parameters that may be changed.
// Data bits, parity, stop bits, and flow control are always 8N1 with no flow control.
type Config struct {
	BaudRate int
}

// DefaultConfig returns a Config for 115200 baud.
func DefaultConfig() Config {
	return Config{
		BaudRate: DefaultBaudRate,
	}
}

// Device is anything a payload can be sent to.
type Device interface {
	io.Writer
	// Drain blocks until all queued output has been transmitted.
	Drain() error
}

// Send writes the full payload to dev in a single write, then drains it.
// The number of bytes written is always returned.
// If fewer than len(payload) bytes were written then the error wraps ErrPartialWrite, and the caller should not consider the transfer successful.
func Send(dev Device, payload []byte) (int, error) {
	n, err := dev.Write(payload)
	var sendErr error
	if n < len(payload) {
		if err == nil {
			err = io.ErrShortWrite
		}
		sendErr = fmt.Errorf("%w: wrote %d of %d bytes: %v", ErrPartialWrite, n, len(payload), err)
	} else if err != nil {
		sendErr = fmt.Errorf("write: %w", err)
	}
	if err := dev.Drain(); err != nil {
		return n, errors.Join(sendErr, fmt.Errorf("drain: %w", err))
	}
	return n, sendErr
}

var openPort = Open

// WithPort opens and configures the device at path, and passes it to fn.
// The port is closed before WithPort returns, regardless of whether configuration or fn failed.
func WithPort(path string, cfg Config, fn func(port *Port) error) (err error) {
	port, err := openPort(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := port.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if err := port.Configure(cfg); err != nil {
		return err
	}
	return fn(port)
}
