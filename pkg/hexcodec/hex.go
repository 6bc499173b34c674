package hexcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedHex = errors.New("malformed hex")
	// ErrOddLength also matches ErrMalformedHex.
	ErrOddLength = fmt.Errorf("%w: odd length", ErrMalformedHex)
)

type decodeParams struct {
	truncateOdd bool
}

// DecodeOpt changes how Decode treats its input.
type DecodeOpt = func(params *decodeParams)

// TruncateOddLength makes Decode drop a trailing lone character instead of failing.
// Invalid characters in the remaining pairs are still an error.
func TruncateOddLength() DecodeOpt {
	return func(params *decodeParams) {
		params.truncateOdd = true
	}
}

// Encode renders each byte as two lowercase, zero-padded hex digits.
func Encode(data []byte) string {
	return hex.EncodeToString(data)
}

// Decode parses pairs of hex digits into bytes.
// Either case is accepted for digits.
// An error wrapping ErrMalformedHex is returned if any character is not a hex digit, and one wrapping ErrOddLength if the input has an odd number of characters.
func Decode(input string, opts ...DecodeOpt) ([]byte, error) {
	params := new(decodeParams)
	for _, opt := range opts {
		opt(params)
	}
	if params.truncateOdd && len(input)%2 != 0 {
		input = input[:len(input)-1]
	}

	data, err := hex.DecodeString(input)
	if err != nil {
		var invalid hex.InvalidByteError
		switch {
		case errors.As(err, &invalid):
			return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrMalformedHex, byte(invalid), strings.IndexByte(input, byte(invalid)))
		case errors.Is(err, hex.ErrLength):
			return nil, fmt.Errorf("%w: %d characters", ErrOddLength, len(input))
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
		}
	}
	return data, nil
}

// DecodedLen reports how many bytes a hex string of n characters represents, ignoring a trailing lone character.
func DecodedLen(n int) int {
	return hex.DecodedLen(n)
}
