// Package murmur3 implements the 32-bit MurmurHash3 (x86 variant), the hash
// behind every placement decision in this SDK.
//
// In addition to the usual byte-slice functions, CodeUnits32 hashes a string
// by the low byte of each UTF-16 code unit. That matches the hash values
// produced by JavaScript implementations built on charCodeAt(i) & 0xff, so
// fingerprints computed by such clients keep their meaning here. It is not a
// UTF-8 hash; see CodeUnits32.
//
// MurmurHash3 is not cryptographic. Do not use it where an adversary controls
// the input and collisions matter.
package murmur3

import (
	"encoding/binary"
	"math/bits"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	c1 uint32 = 0xcc9e2d51
	c2 uint32 = 0x1b873593
)

// Sum32 returns the hash of data with seed 0.
func Sum32(data []byte) uint32 {
	return Sum32WithSeed(data, 0)
}

// Sum32WithSeed returns the MurmurHash3 x86 32-bit hash of data. The same
// (data, seed) pair always produces the same value, on every platform.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	h1 := seed

	body := len(data) - len(data)%4
	for i := 0; i < body; i += 4 {
		h1 = mix(h1, binary.LittleEndian.Uint32(data[i:]))
	}

	return tailAndFinalize(h1, data[body:], uint32(len(data)))
}

// CodeUnits32 hashes text as a sequence of UTF-16 code units, mixing in only
// the low 8 bits of each unit. Characters above U+00FF therefore collide with
// whatever shares their low byte, and code points outside the BMP contribute
// their two surrogate code units. For pure-ASCII text the result equals
// Sum32WithSeed([]byte(text), seed).
//
// This reproduces the charCodeAt(i) & 0xff behavior of the legacy JavaScript
// implementation rather than hashing the UTF-8 encoding, so hashes exchanged
// with those clients compare equal. Callers without that compatibility
// requirement should hash bytes with Sum32WithSeed instead.
func CodeUnits32(text string, seed uint32) uint32 {
	if isASCII(text) {
		return Sum32WithSeed([]byte(text), seed)
	}

	units := utf16.Encode([]rune(text))
	data := make([]byte, len(units))
	for i, u := range units {
		data[i] = byte(u)
	}
	return Sum32WithSeed(data, seed)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func scramble(k1 uint32) uint32 {
	k1 *= c1
	k1 = bits.RotateLeft32(k1, 15)
	k1 *= c2
	return k1
}

func mix(h1, k1 uint32) uint32 {
	h1 ^= scramble(k1)
	h1 = bits.RotateLeft32(h1, 13)
	return h1*5 + 0xe6546b64
}

// tailAndFinalize folds in the 0-3 bytes that did not fill a block, then runs
// the avalanche mix. length is the full input length, not the body length.
func tailAndFinalize(h1 uint32, tail []byte, length uint32) uint32 {
	var k1 uint32
	switch len(tail) {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		h1 ^= scramble(k1)
	}

	h1 ^= length
	h1 ^= h1 >> 16
	h1 *= 0x85ebca6b
	h1 ^= h1 >> 13
	h1 *= 0xc2b2ae35
	h1 ^= h1 >> 16
	return h1
}
