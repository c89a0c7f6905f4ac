// Package bloom provides a compact membership pre-check over key sets.
//
// A Filter answers "definitely absent" or "maybe present" for a key. It never
// returns a false negative for a key it was built with, so callers can skip an
// expensive lookup whenever MayContain reports false.
package bloom

import (
	"math/bits"

	"github.com/placementkit/go-placement-sdk/murmur3"
)

// filterSeed is the base hash seed. Changing it invalidates every filter
// built with the old value.
const filterSeed uint32 = 0xbc9f1d34

// maxProbes is the largest probe count the one-byte trailer encodes. Larger
// values are reserved for future encodings and decode as "always maybe".
const maxProbes = 30

// Filter is a serialized bloom filter: a bit array followed by one trailing
// byte holding the probe count.
type Filter []byte

// NewFilter builds a Filter over keys sized at bitsPerKey bits per key.
// 10 bits per key gives a false-positive rate of roughly 1%.
func NewFilter(keys [][]byte, bitsPerKey int) Filter {
	// 0.69 =~ ln(2), the probe count minimizing the false-positive rate.
	probes := int(float64(bitsPerKey) * 0.69)
	if probes < 1 {
		probes = 1
	}
	if probes > maxProbes {
		probes = maxProbes
	}

	nBits := len(keys) * bitsPerKey
	// Tiny filters alias badly; keep a floor under them.
	if nBits < 64 {
		nBits = 64
	}
	nBytes := (nBits + 7) / 8
	nBits = nBytes * 8

	filter := make(Filter, nBytes+1)
	filter[nBytes] = byte(probes)
	for _, key := range keys {
		// Double hashing: one base hash, then probes spaced by a rotation
		// of it. Cheaper than k independent hashes and close in quality.
		h := baseHash(key)
		delta := bits.RotateLeft32(h, 15)
		for i := 0; i < probes; i++ {
			pos := h % uint32(nBits)
			filter[pos/8] |= 1 << (pos % 8)
			h += delta
		}
	}
	return filter
}

// MayContain reports whether key may have been added to the filter. A false
// result is definitive. Filters too short to carry a trailer answer false.
func (f Filter) MayContain(key []byte) bool {
	if len(f) < 2 {
		return false
	}
	nBits := uint32(len(f)-1) * 8
	probes := int(f[len(f)-1])
	if probes > maxProbes {
		return true
	}
	h := baseHash(key)
	delta := bits.RotateLeft32(h, 15)
	for i := 0; i < probes; i++ {
		pos := h % nBits
		if f[pos/8]&(1<<(pos%8)) == 0 {
			return false
		}
		h += delta
	}
	return true
}

func baseHash(key []byte) uint32 {
	return murmur3.Sum32WithSeed(key, filterSeed)
}
