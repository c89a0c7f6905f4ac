package placement

import (
	"fmt"

	"github.com/placementkit/go-placement-sdk/bucketing"
	"github.com/placementkit/go-placement-sdk/murmur3"
	"github.com/placementkit/go-placement-sdk/sharding"
	"github.com/placementkit/go-placement-sdk/util"
)

// Client resolves keys to hashes, shards, buckets and variants. All lookups
// are deterministic, so in most cases there should be only one, shared Client.
type Client struct {
	options  *Options
	resolver *sharding.Resolver
	hooks    *DecisionHookRunner
}

// NewClient builds a Client from options. Passing nil options uses the
// defaults.
func NewClient(options *Options) (*Client, error) {
	if options == nil {
		options = &Options{}
	}
	if options.Logger != nil {
		util.SetLogger(options.Logger)
	}
	options.CheckDefaults()

	if err := validate.Struct(options); err != nil {
		return nil, fmt.Errorf("invalid client options: %w", err)
	}

	resolver, err := sharding.NewResolver(options.ShardCount, sharding.WithSeed(options.Seed))
	if err != nil {
		return nil, err
	}

	return &Client{
		options:  options,
		resolver: resolver,
		hooks:    NewDecisionHookRunner(options.DecisionHooks),
	}, nil
}

// HashKey returns the hash of key under the client seed.
func (c *Client) HashKey(key string) uint32 {
	return murmur3.CodeUnits32(key, c.options.Seed)
}

// ShardForKey returns the index of the shard owning key.
func (c *Client) ShardForKey(key string) uint32 {
	return c.resolver.Get(key)
}

// ShardCount returns the number of shards keys resolve into.
func (c *Client) ShardCount() uint32 {
	return c.resolver.NumShards()
}

// BucketForKey maps key onto one of bucketCount buckets. A zero bucketCount
// yields bucket 0.
func (c *Client) BucketForKey(key string, bucketCount uint32) uint32 {
	if bucketCount == 0 {
		return 0
	}
	return c.HashKey(key) % bucketCount
}

// VariantForKey decides which variant of d the key lands in within groupId.
// The distribution is validated on every call; use Decide on a pre-validated
// Distribution when calling in a tight loop.
func (c *Client) VariantForKey(key, groupId string, d bucketing.Distribution) (variant string, err error) {
	hookContext := &DecisionContext{Key: key, GroupId: groupId, Distribution: d}
	defer func() {
		if err != nil {
			c.hooks.RunErrorHooks(hookContext, err)
		}
		c.hooks.RunOnFinallyHooks(hookContext, variant)
	}()

	if err = c.hooks.RunBeforeHooks(hookContext); err != nil {
		return "", err
	}
	if err = d.Validate(); err != nil {
		return "", err
	}
	variant, err = d.DecideForKey(key, groupId)
	if err != nil {
		return "", err
	}
	err = c.hooks.RunAfterHooks(hookContext, variant)
	return variant, err
}
