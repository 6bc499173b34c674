package xor

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_Vector(t *testing.T) {
	secret := []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f}
	screened := Transform(secret, FixedKey())
	assert.Equal(t, []byte{0x0e, 0x35, 0x2b, 0x2d, 0x30}, screened)
	assert.Equal(t, secret, Transform(screened, FixedKey()))
}

func TestTransform_Involution(t *testing.T) {
	for _, key := range []Key{FixedKey(), DigestKey(), {0x7f}} {
		for _, size := range []int{0, 1, 15, 16, 17, 31, 32, 33, 1024} {
			data := make([]byte, size)
			_, err := rand.Read(data)
			require.NoError(t, err)

			screened := Transform(data, key)
			assert.Len(t, screened, size)
			assert.Equal(t, data, Transform(screened, key), "key len %d, size %d", len(key), size)
		}
	}
}

func TestTransform_Empty(t *testing.T) {
	out := Transform(nil, FixedKey())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestTransform_DoesNotModifyInput(t *testing.T) {
	in := []byte{0x1, 0x2, 0x3}
	_ = Transform(in, Key{0xff})
	assert.Equal(t, []byte{0x1, 0x2, 0x3}, in)
}

func TestTransform_EmptyKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		Transform([]byte{0x1}, nil)
	})
}
