//go:build linux

package serial

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var speeds = map[int]uint32{
	1200:    unix.B1200,
	2400:    unix.B2400,
	4800:    unix.B4800,
	9600:    unix.B9600,
	19200:   unix.B19200,
	38400:   unix.B38400,
	57600:   unix.B57600,
	115200:  unix.B115200,
	230400:  unix.B230400,
	460800:  unix.B460800,
	500000:  unix.B500000,
	576000:  unix.B576000,
	921600:  unix.B921600,
	1000000: unix.B1000000,
	1152000: unix.B1152000,
	1500000: unix.B1500000,
	2000000: unix.B2000000,
	2500000: unix.B2500000,
	3000000: unix.B3000000,
	3500000: unix.B3500000,
	4000000: unix.B4000000,
}

func lookupSpeed(baud int) (uint32, bool) {
	speed, ok := speeds[baud]
	return speed, ok
}

func openDevice(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		return -1, fmt.Errorf("open: %w", err)
	}
	return fd, nil
}

func setRaw(fd int, speed uint32) error {
	tty, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}

	tty.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.INPCK |
		unix.IXON | unix.IXOFF | unix.IXANY
	tty.Oflag = 0
	tty.Lflag = 0
	tty.Cflag &^= unix.CSIZE | unix.PARENB | unix.PARODD | unix.CSTOPB | unix.CRTSCTS | unix.CBAUD
	tty.Cflag |= unix.CS8 | unix.CLOCAL | unix.CREAD | speed
	tty.Ispeed = speed
	tty.Ospeed = speed
	tty.Cc[unix.VMIN] = 1
	tty.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, tty); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

func writeDevice(fd int, data []byte) (int, error) {
	n, err := unix.Write(fd, data)
	if err != nil {
		return n, fmt.Errorf("write: %w", err)
	}
	return n, nil
}

// drainDevice is tcdrain(3), which is TCSBRK with a non-zero argument.
func drainDevice(fd int) error {
	if err := unix.IoctlSetInt(fd, unix.TCSBRK, 1); err != nil {
		return fmt.Errorf("tcdrain: %w", err)
	}
	return nil
}

func closeDevice(fd int) error {
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
