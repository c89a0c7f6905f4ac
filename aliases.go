package placement

import (
	"github.com/placementkit/go-placement-sdk/bucketing"
	"github.com/placementkit/go-placement-sdk/sharding"
	"github.com/placementkit/go-placement-sdk/util"
)

type BoundedHashes = bucketing.BoundedHashes
type Distribution = bucketing.Distribution
type WeightedVariant = bucketing.WeightedVariant
type Rollout = bucketing.Rollout
type RolloutStage = bucketing.RolloutStage
type ShardRange = sharding.Range
type Logger = util.Logger
type DiscardLogger = util.DiscardLogger

func SetLogger(log Logger) { util.SetLogger(log) }
