package placement

import "github.com/placementkit/go-placement-sdk/bucketing"

// DecisionHook represents a hook that can be executed around a variant decision
type DecisionHook struct {
	// Before is called before the variant is decided
	Before func(context *DecisionContext) error
	// After is called once a variant has been decided (only if Before didn't error)
	After func(context *DecisionContext, variant string) error
	// OnFinally is called after the decision regardless of errors
	OnFinally func(context *DecisionContext, variant string) error
	// Error is called when an error occurs during the decision
	Error func(context *DecisionContext, decisionError error) error
}

// NewDecisionHook creates a new DecisionHook with the provided functions
func NewDecisionHook(before func(context *DecisionContext) error, after func(context *DecisionContext, variant string) error, onFinally func(context *DecisionContext, variant string) error, onError func(context *DecisionContext, decisionError error) error) *DecisionHook {
	return &DecisionHook{
		Before:    before,
		After:     after,
		OnFinally: onFinally,
		Error:     onError,
	}
}

// DecisionContext stores the inputs passed to hooks during a variant decision
type DecisionContext struct {
	// Key is the key being placed
	Key string
	// GroupId is the group the key is being placed within
	GroupId string
	// Distribution is the distribution being decided against
	Distribution bucketing.Distribution
}
