package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/saylorsolutions/xorlink/pkg/hexcodec"
	"github.com/saylorsolutions/xorlink/pkg/xor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Encode(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "secret.txt")
	output := filepath.Join(dir, "encrypted.txt")
	secret := []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f}
	require.NoError(t, os.WriteFile(input, secret, 0600))

	var stdout bytes.Buffer
	err := run([]string{"--input", input, "--output", output}, &stdout)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Encrypting 5 bytes from "+input)
	assert.Contains(t, stdout.String(), "Encrypted to "+output)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "0e352b2d30\n", string(written))

	screened, err := hexcodec.Decode("0e352b2d30")
	require.NoError(t, err)
	assert.Equal(t, secret, xor.Transform(screened, xor.FixedKey()))
}

func TestRun_EncodeEmpty(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "secret.txt")
	output := filepath.Join(dir, "encrypted.txt")
	require.NoError(t, os.WriteFile(input, nil, 0600))

	require.NoError(t, run([]string{"-i", input, "-o", output}, new(bytes.Buffer)))
	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(written))
}

func TestRun_DigestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "secret.txt")
	encrypted := filepath.Join(dir, "encrypted.txt")
	recovered := filepath.Join(dir, "recovered.txt")
	secret := []byte("a secret that is longer than thirty-two bytes, so the key wraps")
	require.NoError(t, os.WriteFile(input, secret, 0600))

	require.NoError(t, run([]string{"-i", input, "-o", encrypted, "--key", "digest"}, new(bytes.Buffer)))
	line, err := hexcodec.ReadLine(encrypted)
	require.NoError(t, err)
	screened, err := hexcodec.Decode(line)
	require.NoError(t, err)
	assert.Equal(t, xor.Transform(secret, xor.DigestKey()), screened)

	require.NoError(t, run([]string{"-d", "-i", encrypted, "-o", recovered, "-k", "digest"}, new(bytes.Buffer)))
	data, err := os.ReadFile(recovered)
	require.NoError(t, err)
	assert.Equal(t, secret, data)
}

func TestRun_DecodeOddLength(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "encrypted.txt")
	output := filepath.Join(dir, "recovered.txt")
	require.NoError(t, os.WriteFile(input, []byte("0e352b2d300\n"), 0600))

	err := run([]string{"-d", "-i", input, "-o", output}, new(bytes.Buffer))
	assert.ErrorIs(t, err, hexcodec.ErrOddLength)

	require.NoError(t, run([]string{"-d", "--truncate-odd", "-i", input, "-o", output}, new(bytes.Buffer)))
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(data))
}

func TestRun_Help(t *testing.T) {
	var stdout bytes.Buffer
	assert.NoError(t, run([]string{"--help"}, &stdout))
	assert.Contains(t, stdout.String(), "USAGE:  xorenc")
	assert.Contains(t, stdout.String(), "--output")
}

func TestRun_Neg(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(input, []byte("secret"), 0600))

	err := run([]string{"--input", filepath.Join(dir, "missing.txt"), "--output", filepath.Join(dir, "out.txt")}, new(bytes.Buffer))
	assert.ErrorIs(t, err, hexcodec.ErrFileOpen)

	err = run([]string{"--input", input, "--output", filepath.Join(dir, "missing", "out.txt")}, new(bytes.Buffer))
	assert.ErrorIs(t, err, hexcodec.ErrFileWrite)

	err = run([]string{"--input", input, "--key", "rot13"}, new(bytes.Buffer))
	assert.ErrorIs(t, err, xor.ErrUnknownKey)

	err = run([]string{"--bogus"}, new(bytes.Buffer))
	assert.Error(t, err)
}
