package main

import (
	"log"

	placement "github.com/placementkit/go-placement-sdk"
	"github.com/placementkit/go-placement-sdk/bloom"
	"github.com/placementkit/go-placement-sdk/murmur3"
)

func main() {
	client, err := placement.NewClient(&placement.Options{ShardCount: 8})
	if err != nil {
		log.Fatalf("client: %v", err)
	}

	keys := []string{"user_a", "user_b", "user_c"}
	for _, key := range keys {
		log.Printf("key:%s hash:%d shard:%d bucket:%d",
			key, client.HashKey(key), client.ShardForKey(key), client.BucketForKey(key, 10))
	}

	distribution := placement.Distribution{
		{Variant: "control", Percentage: 0.5},
		{Variant: "treatment", Percentage: 0.5},
	}
	for _, key := range keys {
		variant, err := client.VariantForKey(key, "experiment-1", distribution)
		if err != nil {
			log.Fatalf("variant: %v", err)
		}
		log.Printf("key:%s variant:%s", key, variant)
	}

	// Raw hashes, independent of any client.
	log.Printf("murmur3 of %q: %d", "hello", murmur3.Sum32([]byte("hello")))
	log.Printf("murmur3 of %q (seed 1): %d", "hello", murmur3.CodeUnits32("hello", 1))

	// Membership pre-check before hitting a backing store.
	filter := bloom.NewFilter([][]byte{[]byte("user_a"), []byte("user_b")}, 10)
	for _, key := range append(keys, "user_z") {
		log.Printf("key:%s may be stored:%v", key, filter.MayContain([]byte(key)))
	}
}
