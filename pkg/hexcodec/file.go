package hexcodec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrFileOpen  = errors.New("unable to open file")
	ErrFileWrite = errors.New("unable to write file")
)

// ReadLine returns the first line of the file at path, without its line terminator.
// Anything after the first line break is ignored.
func ReadLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w '%s': %v", ErrFileOpen, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w '%s': %v", ErrFileOpen, path, err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// WriteLine creates or truncates the file at path and writes the hex text followed by a single newline.
func WriteLine(path string, hexText string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w '%s': %v", ErrFileWrite, path, err)
	}
	if _, err := io.WriteString(f, hexText+"\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w '%s': %v", ErrFileWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w '%s': %v", ErrFileWrite, path, err)
	}
	return nil
}
