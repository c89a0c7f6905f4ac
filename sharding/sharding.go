// Package sharding resolves keys to shards by contiguous hash ranges over the
// uint32 space.
package sharding

import (
	"errors"
	"math"

	"golang.org/x/exp/slices"

	"github.com/placementkit/go-placement-sdk/murmur3"
)

var ErrZeroShards = errors.New("shard count must be at least 1")

// Range is an inclusive interval of hash values owned by one shard.
type Range struct {
	Min uint32
	Max uint32
}

func (r Range) Contains(hash uint32) bool {
	return r.Min <= hash && hash <= r.Max
}

// GenerateRanges splits the uint32 hash space into numShards contiguous
// near-equal ranges. Together the ranges cover every hash value exactly once.
func GenerateRanges(numShards uint32) []Range {
	bucketSize := (math.MaxUint32 / numShards) + 1
	ranges := make([]Range, numShards)
	for i := uint32(0); i < numShards; i++ {
		lowerBound := i * bucketSize
		upperBound := lowerBound + bucketSize - 1
		if i == numShards-1 {
			upperBound = math.MaxUint32
		}
		ranges[i] = Range{Min: lowerBound, Max: upperBound}
	}
	return ranges
}

// HashFunc maps a key onto the uint32 hash space.
type HashFunc func(key string) uint32

type Option func(*Resolver)

// WithHash replaces the default murmur3 code-unit hash.
func WithHash(fn HashFunc) Option {
	return func(r *Resolver) {
		r.hashFunc = fn
		r.customHash = true
	}
}

// WithSeed changes the seed of the default hash. Ignored when WithHash is
// also given.
func WithSeed(seed uint32) Option {
	return func(r *Resolver) {
		r.seed = seed
		if !r.customHash {
			r.hashFunc = seededCodeUnitHash(seed)
		}
	}
}

// Resolver deterministically assigns keys to one of a fixed number of shards.
type Resolver struct {
	hashFunc   HashFunc
	customHash bool
	seed       uint32
	ranges     []Range
}

func NewResolver(numShards uint32, opts ...Option) (*Resolver, error) {
	if numShards == 0 {
		return nil, ErrZeroShards
	}
	r := &Resolver{
		hashFunc: seededCodeUnitHash(0),
		ranges:   GenerateRanges(numShards),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Get returns the shard index owning key.
func (r *Resolver) Get(key string) uint32 {
	hash := r.hashFunc(key)
	idx, ok := slices.BinarySearchFunc(r.ranges, hash, func(rg Range, target uint32) int {
		switch {
		case rg.Max < target:
			return -1
		case rg.Min > target:
			return 1
		default:
			return 0
		}
	})
	if !ok {
		// Generated ranges cover the whole space; only a hand-built resolver
		// with gaps could get here.
		return uint32(len(r.ranges) - 1)
	}
	return uint32(idx)
}

func (r *Resolver) NumShards() uint32 {
	return uint32(len(r.ranges))
}

// Ranges returns a copy of the shard ranges, ordered by shard index.
func (r *Resolver) Ranges() []Range {
	return slices.Clone(r.ranges)
}

func seededCodeUnitHash(seed uint32) HashFunc {
	return func(key string) uint32 {
		return murmur3.CodeUnits32(key, seed)
	}
}
