package placement

import (
	"github.com/go-playground/validator/v10"

	"github.com/placementkit/go-placement-sdk/bucketing"
	"github.com/placementkit/go-placement-sdk/util"
)

// DefaultSeed matches bucketing.BaseSeed, so client hashes line up with the
// group-seed chain behind variant decisions.
const DefaultSeed = bucketing.BaseSeed

const (
	DefaultShardCount uint32 = 16
	MaxShardCount     uint32 = 65536
)

// use a single instance of Validate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

type Options struct {
	// Seed seeds every hash the client produces. Zero means DefaultSeed.
	Seed uint32 `json:"seed,omitempty"`
	// ShardCount is the number of contiguous hash ranges keys resolve into.
	ShardCount    uint32 `json:"shardCount,omitempty" validate:"gte=1,lte=65536"`
	Logger        util.Logger
	DecisionHooks []*DecisionHook
}

func (o *Options) CheckDefaults() {
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.ShardCount == 0 {
		o.ShardCount = DefaultShardCount
	}
	if o.ShardCount > MaxShardCount {
		util.Warnf("ShardCount cannot exceed %d. Defaulting to %d.", MaxShardCount, DefaultShardCount)
		o.ShardCount = DefaultShardCount
	}
}
