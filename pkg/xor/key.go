package xor

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
)

const (
	// FixedKeyName selects FixedKey in KeyByName.
	FixedKeyName = "fixed"
	// DigestKeyName selects DigestKey in KeyByName.
	DigestKeyName = "digest"

	digestSeed = "FPGA_ENCRYPTION_KEY"
)

var (
	ErrUnknownKey = errors.New("unknown key")
)

// Key is the material used by the screen, applied cyclically.
type Key []byte

// fixedKeyTable spells "FPGA_SECRET_KEY_".
var fixedKeyTable = [16]byte{
	0x46, 0x50, 0x47, 0x41, 0x5f, 0x53, 0x45, 0x43,
	0x52, 0x45, 0x54, 0x5f, 0x4b, 0x45, 0x59, 0x5f,
}

var digestKeyTable = sha256.Sum256([]byte(digestSeed))

// FixedKey returns a copy of the 16 byte fixed key.
func FixedKey() Key {
	k := make(Key, len(fixedKeyTable))
	copy(k, fixedKeyTable[:])
	return k
}

// DigestKey returns a copy of the 32 byte key derived from the SHA-256 digest of a fixed seed.
// This is the key used by earlier releases of the encoder.
func DigestKey() Key {
	k := make(Key, len(digestKeyTable))
	copy(k, digestKeyTable[:])
	return k
}

// KeyByName resolves a key variant name as accepted on the command line.
func KeyByName(name string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FixedKeyName, "":
		return FixedKey(), nil
	case DigestKeyName:
		return DigestKey(), nil
	default:
		return nil, fmt.Errorf("%w: '%s', must be one of '%s' or '%s'", ErrUnknownKey, name, FixedKeyName, DigestKeyName)
	}
}
