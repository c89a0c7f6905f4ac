// Package bucketing maps hashed keys onto percentage buckets: weighted
// variant distributions and time-staged rollouts.
package bucketing

import (
	"github.com/placementkit/go-placement-sdk/murmur3"
)

// MaxHashValue is the largest value the hash can produce. Dividing by it
// bounds a hash onto [0, 1].
const MaxHashValue uint32 = 4294967295

// BaseSeed seeds the group-id hash; the result seeds every key hash for that
// group, so the same key lands independently per group.
const BaseSeed uint32 = 1

type BoundedHashes struct {
	BucketingHash float64 `json:"bucketingHash"`
	RolloutHash   float64 `json:"rolloutHash"`
}

// GenerateBoundedHashes derives the two bounded hashes used to place key
// within groupId: one for variant bucketing, one for rollout gating. The
// "_rollout" suffix decorrelates the two decisions so keys admitted early by
// a rollout are not biased toward any variant.
func GenerateBoundedHashes(key, groupId string) BoundedHashes {
	groupSeed := murmur3.CodeUnits32(groupId, BaseSeed)
	return BoundedHashes{
		BucketingHash: BoundedHash(key, groupSeed),
		RolloutHash:   BoundedHash(key+"_rollout", groupSeed),
	}
}

// BoundedHash hashes input and bounds the result onto [0, 1].
func BoundedHash(input string, seed uint32) float64 {
	return float64(murmur3.CodeUnits32(input, seed)) / float64(MaxHashValue)
}
