//go:build !linux

package serial

import (
	"errors"
)

func lookupSpeed(baud int) (uint32, bool) {
	return 0, baud > 0
}

func openDevice(string) (int, error) {
	return -1, errors.ErrUnsupported
}

func setRaw(int, uint32) error {
	return errors.ErrUnsupported
}

func writeDevice(int, []byte) (int, error) {
	return 0, errors.ErrUnsupported
}

func drainDevice(int) error {
	return errors.ErrUnsupported
}

func closeDevice(int) error {
	return nil
}
