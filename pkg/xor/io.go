package xor

import (
	"io"
)

// Reader screens everything read through it.
type Reader interface {
	io.Reader
	// Reset switches to a new source and rewinds the key to the initial offset.
	Reset(source io.Reader)
}

// Writer screens everything before passing it to the target.
type Writer interface {
	io.Writer
	// Reset switches to a new target and rewinds the key to the initial offset.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *xorScreen
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	r.scr.screenInto(out[:n], out[:n])
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.scr.reset()
}

// NewReader constructs a Reader that screens every byte read from r with the key, starting at offset.
func NewReader(r io.Reader, key Key, offset ...int) (Reader, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &reader{
		source: r,
		scr:    scr,
	}, nil
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *xorScreen
}

// NewWriter constructs a Writer that screens every byte before it's written to target, starting at offset.
func NewWriter(target io.Writer, key Key, offset ...int) (Writer, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &writer{
		target: target,
		scr:    scr,
	}, nil
}

func (w *writer) Write(in []byte) (n int, err error) {
	buf := make([]byte, len(in))
	w.scr.screenInto(buf, in)
	return w.target.Write(buf)
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}
