package xor

import (
	"errors"
	"fmt"
)

type xorScreen struct {
	key  Key
	init int
	cur  int
}

func newXorScreen(key Key, offset ...int) (*xorScreen, error) {
	if len(key) == 0 {
		return nil, errors.New("cannot use empty key")
	}
	s := &xorScreen{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("offset %d out of range for provided key of len %d", offset[0], len(key))
		}
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

func (s *xorScreen) screen(b byte) byte {
	b ^= s.key[s.cur]
	s.cur++
	if s.cur == len(s.key) {
		s.cur = 0
	}
	return b
}

// screenInto screens src into dst, which must be at least as long as src.
func (s *xorScreen) screenInto(dst, src []byte) {
	for i := range src {
		dst[i] = s.screen(src[i])
	}
}

func (s *xorScreen) reset() {
	s.cur = s.init
}
