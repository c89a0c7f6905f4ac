package murmur3

import (
	"encoding/binary"
	"hash"
)

// New32 returns a streaming hash.Hash32 with seed 0.
func New32() hash.Hash32 {
	return New32WithSeed(0)
}

// New32WithSeed returns a streaming hash.Hash32. Splitting the input across
// any number of Write calls yields the same value as a single Sum32WithSeed.
func New32WithSeed(seed uint32) hash.Hash32 {
	d := &digest{seed: seed}
	d.Reset()
	return d
}

type digest struct {
	h1     uint32
	seed   uint32
	tail   [4]byte
	ntail  int
	length int
}

func (d *digest) Size() int { return 4 }

func (d *digest) BlockSize() int { return 4 }

func (d *digest) Reset() {
	d.h1 = d.seed
	d.ntail = 0
	d.length = 0
}

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	d.length += n

	if d.ntail > 0 {
		need := 4 - d.ntail
		if len(p) < need {
			d.ntail += copy(d.tail[d.ntail:], p)
			return n, nil
		}
		copy(d.tail[d.ntail:], p[:need])
		d.h1 = mix(d.h1, binary.LittleEndian.Uint32(d.tail[:]))
		d.ntail = 0
		p = p[need:]
	}

	for len(p) >= 4 {
		d.h1 = mix(d.h1, binary.LittleEndian.Uint32(p))
		p = p[4:]
	}

	if len(p) > 0 {
		d.ntail = copy(d.tail[:], p)
	}
	return n, nil
}

// Sum32 returns the hash of everything written so far. It does not consume
// the buffered tail, so writing may continue afterwards.
func (d *digest) Sum32() uint32 {
	return tailAndFinalize(d.h1, d.tail[:d.ntail], uint32(d.length))
}

func (d *digest) Sum(b []byte) []byte {
	h := d.Sum32()
	return append(b, byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
}
