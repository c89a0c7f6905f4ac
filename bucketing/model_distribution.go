package bucketing

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// use a single instance of Validate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

const percentageEpsilon = 1e-9

var ErrEmptyDistribution = errors.New("distribution has no variants")
var ErrDistributionExceedsOne = errors.New("distribution percentages sum to more than 1")
var ErrNoVariantDecided = errors.New("no variant window contains the bounded hash")

type WeightedVariant struct {
	Variant    string  `json:"_variant" validate:"required"`
	Percentage float64 `json:"percentage" validate:"gt=0,lte=1"`
}

// Distribution is an ordered list of variants with their percentage windows.
// Order matters: each variant owns the half-open window starting where the
// previous one ended.
type Distribution []WeightedVariant

func (d Distribution) Validate() error {
	if len(d) == 0 {
		return ErrEmptyDistribution
	}
	var total float64
	for i, v := range d {
		if err := validate.Struct(v); err != nil {
			return fmt.Errorf("variant %d invalid: %w", i, err)
		}
		total += v.Percentage
	}
	if total > 1+percentageEpsilon {
		return fmt.Errorf("%w: total %v", ErrDistributionExceedsOne, total)
	}
	return nil
}

// Decide returns the variant whose window contains boundedHash. Windows are
// half-open, so a hash equal to the covered total (including exactly 1.0 on a
// fully covered distribution) decides no variant and returns
// ErrNoVariantDecided, as does any hash beyond the covered total.
func (d Distribution) Decide(boundedHash float64) (string, error) {
	if boundedHash < 0 {
		return "", ErrNoVariantDecided
	}
	var cumulative float64
	for _, v := range d {
		cumulative += v.Percentage
		if boundedHash < cumulative {
			return v.Variant, nil
		}
	}
	return "", ErrNoVariantDecided
}

// DecideForKey buckets key within groupId and decides its variant in one step.
func (d Distribution) DecideForKey(key, groupId string) (string, error) {
	return d.Decide(GenerateBoundedHashes(key, groupId).BucketingHash)
}
