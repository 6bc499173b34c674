/*
Package xor provides the repeating-key XOR screen used to obfuscate payloads before they're hex encoded and sent to a device.

Note that this is NOT encryption, since it is easily reversible.
The key is baked into the program, there is no nonce, and nothing is authenticated.
It's useful for keeping a payload from being readable at rest, and nothing more.

# How it works:

Every byte of the payload is XOR'd with a byte of the key.
Once a key byte is used, the screen progresses to the next byte in the key.
When the last byte is used, the first will be used again, operating like a ring buffer.
Applying the same screen twice with the same key recovers the original payload.

Transform does this for a whole buffer, while Reader and Writer do the same thing to a stream.
Given the same key and offset, all three produce identical output.

# Keys:

Two keys are available, see FixedKey and DigestKey.
FixedKey is a 16 byte table, and DigestKey is the SHA-256 digest of a fixed seed string.
Both sides of a transfer must agree on which key is used.
*/
package xor
