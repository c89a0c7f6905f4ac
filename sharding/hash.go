package sharding

import (
	"github.com/zeebo/xxh3"
)

// Xxh332 is an alternative shard hash for callers that do not need murmur3
// compatibility; usable via WithHash(sharding.Xxh332).
func Xxh332(key string) uint32 {
	return uint32(xxh3.HashString(key))
}
