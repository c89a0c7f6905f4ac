package placement

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementkit/go-placement-sdk/bucketing"
)

func TestDecisionHookRunner(t *testing.T) {
	t.Run("RunBeforeHooks - success", func(t *testing.T) {
		hook1 := NewDecisionHook(
			func(context *DecisionContext) error { return nil },
			nil, nil, nil,
		)
		hook2 := NewDecisionHook(
			func(context *DecisionContext) error { return nil },
			nil, nil, nil,
		)

		runner := NewDecisionHookRunner([]*DecisionHook{hook1, hook2})
		context := &DecisionContext{Key: "test-key"}

		err := runner.RunBeforeHooks(context)
		assert.NoError(t, err)
	})

	t.Run("RunBeforeHooks - error", func(t *testing.T) {
		expectedError := errors.New("before hook error")
		hook := NewDecisionHook(
			func(context *DecisionContext) error { return expectedError },
			nil, nil, nil,
		)

		runner := NewDecisionHookRunner([]*DecisionHook{hook})
		context := &DecisionContext{Key: "test-key"}

		err := runner.RunBeforeHooks(context)
		require.Error(t, err)

		beforeHookError, ok := err.(*BeforeHookError)
		assert.True(t, ok)
		assert.Equal(t, 0, beforeHookError.HookIndex)
		assert.Equal(t, expectedError, beforeHookError.Err)
		assert.ErrorIs(t, err, expectedError)
	})

	t.Run("RunAfterHooks - error", func(t *testing.T) {
		expectedError := errors.New("after hook error")
		hook := NewDecisionHook(
			nil,
			func(context *DecisionContext, variant string) error { return expectedError },
			nil, nil,
		)

		runner := NewDecisionHookRunner([]*DecisionHook{hook})
		context := &DecisionContext{Key: "test-key"}

		err := runner.RunAfterHooks(context, "var1")
		require.Error(t, err)

		afterHookError, ok := err.(*AfterHookError)
		assert.True(t, ok)
		assert.Equal(t, 0, afterHookError.HookIndex)
		assert.Equal(t, expectedError, afterHookError.Err)
	})

	t.Run("RunOnFinallyHooks", func(t *testing.T) {
		called := false
		hook := NewDecisionHook(
			nil, nil,
			func(context *DecisionContext, variant string) error {
				called = true
				return nil
			}, nil,
		)

		runner := NewDecisionHookRunner([]*DecisionHook{hook})
		runner.RunOnFinallyHooks(&DecisionContext{Key: "test-key"}, "var1")
		assert.True(t, called)
	})

	t.Run("RunErrorHooks", func(t *testing.T) {
		var seen error
		hook := NewDecisionHook(
			nil, nil, nil,
			func(context *DecisionContext, decisionError error) error {
				seen = decisionError
				return nil
			},
		)

		runner := NewDecisionHookRunner([]*DecisionHook{hook})
		runner.RunErrorHooks(&DecisionContext{Key: "test-key"}, bucketing.ErrNoVariantDecided)
		assert.Equal(t, bucketing.ErrNoVariantDecided, seen)
	})

	t.Run("nil context short-circuits", func(t *testing.T) {
		hook := NewDecisionHook(
			func(context *DecisionContext) error { return errors.New("should not run") },
			nil, nil, nil,
		)
		runner := NewDecisionHookRunner([]*DecisionHook{hook})
		assert.NoError(t, runner.RunBeforeHooks(nil))
	})

	t.Run("AddHook and ClearHooks", func(t *testing.T) {
		runner := NewDecisionHookRunner(nil)
		runner.AddHook(NewDecisionHook(nil, nil, nil, nil))
		assert.Len(t, runner.hooks, 1)
		runner.ClearHooks()
		assert.Empty(t, runner.hooks)
	})
}

func TestClient_VariantForKey_Hooks(t *testing.T) {
	var order []string
	hook1 := &DecisionHook{
		Before: func(context *DecisionContext) error {
			order = append(order, "before1")
			return nil
		},
		After: func(context *DecisionContext, variant string) error {
			order = append(order, "after1")
			assert.Equal(t, "var2", variant)
			return nil
		},
		OnFinally: func(context *DecisionContext, variant string) error {
			order = append(order, "finally1")
			return nil
		},
	}
	hook2 := &DecisionHook{
		Before: func(context *DecisionContext) error {
			order = append(order, "before2")
			assert.Equal(t, "user_a", context.Key)
			assert.Equal(t, "target_1", context.GroupId)
			return nil
		},
		After: func(context *DecisionContext, variant string) error {
			order = append(order, "after2")
			return nil
		},
	}

	c, err := NewClient(&Options{DecisionHooks: []*DecisionHook{hook1, hook2}})
	require.NoError(t, err)

	variant, err := c.VariantForKey("user_a", "target_1", bucketing.Distribution{
		{Variant: "var1", Percentage: 0.25},
		{Variant: "var2", Percentage: 0.45},
		{Variant: "var3", Percentage: 0.1},
		{Variant: "var4", Percentage: 0.2},
	})
	require.NoError(t, err)
	assert.Equal(t, "var2", variant)

	// Before hooks run in order, after and finally hooks in reverse.
	assert.Equal(t, []string{"before1", "before2", "after2", "after1", "finally1"}, order)
}

func TestClient_VariantForKey_BeforeHookError(t *testing.T) {
	beforeErr := errors.New("not ready")
	errorHookCalled := false
	hook := &DecisionHook{
		Before: func(context *DecisionContext) error { return beforeErr },
		Error: func(context *DecisionContext, decisionError error) error {
			errorHookCalled = true
			return nil
		},
	}

	c, err := NewClient(&Options{DecisionHooks: []*DecisionHook{hook}})
	require.NoError(t, err)

	_, err = c.VariantForKey("user_a", "target_1", bucketing.Distribution{
		{Variant: "var1", Percentage: 1.0},
	})
	require.ErrorIs(t, err, beforeErr)
	// A before failure aborts the decision but still reaches the error hooks.
	assert.True(t, errorHookCalled)
}

func TestClient_VariantForKey_ErrorHookOnInvalidDistribution(t *testing.T) {
	var seen error
	var finalVariant *string
	hook := &DecisionHook{
		Error: func(context *DecisionContext, decisionError error) error {
			seen = decisionError
			return nil
		},
		OnFinally: func(context *DecisionContext, variant string) error {
			finalVariant = &variant
			return nil
		},
	}

	c, err := NewClient(&Options{DecisionHooks: []*DecisionHook{hook}})
	require.NoError(t, err)

	_, err = c.VariantForKey("user_a", "target_1", bucketing.Distribution{})
	require.ErrorIs(t, err, bucketing.ErrEmptyDistribution)
	assert.ErrorIs(t, seen, bucketing.ErrEmptyDistribution)
	require.NotNil(t, finalVariant)
	assert.Empty(t, *finalVariant)
}
