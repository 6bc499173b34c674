package xor

// Transform returns a new slice where output[i] = input[i] ^ key[i % len(key)].
// The input is never modified, and a zero length input yields a zero length output.
// Transform is its own inverse, so applying it to its own output with the same key recovers the input.
//
// Transform panics if the key is empty, since keys are fixed tables and an empty one is a programming error.
func Transform(input []byte, key Key) []byte {
	scr, err := newXorScreen(key)
	if err != nil {
		panic("xor: " + err.Error())
	}
	output := make([]byte, len(input))
	scr.screenInto(output, input)
	return output
}
