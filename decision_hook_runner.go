package placement

import (
	"fmt"

	"github.com/placementkit/go-placement-sdk/util"
)

// BeforeHookError represents an error that occurred during a before hook
type BeforeHookError struct {
	HookIndex int
	Err       error
}

func (e *BeforeHookError) Error() string {
	return fmt.Sprintf("before hook %d failed: %v", e.HookIndex, e.Err)
}

func (e *BeforeHookError) Unwrap() error {
	return e.Err
}

// AfterHookError represents an error that occurred during an after hook
type AfterHookError struct {
	HookIndex int
	Err       error
}

func (e *AfterHookError) Error() string {
	return fmt.Sprintf("after hook %d failed: %v", e.HookIndex, e.Err)
}

func (e *AfterHookError) Unwrap() error {
	return e.Err
}

// DecisionHookRunner manages and executes decision hooks
type DecisionHookRunner struct {
	hooks []*DecisionHook
}

// NewDecisionHookRunner creates a new DecisionHookRunner with the provided hooks
func NewDecisionHookRunner(hooks []*DecisionHook) *DecisionHookRunner {
	return &DecisionHookRunner{
		hooks: hooks,
	}
}

// RunBeforeHooks runs all before hooks in order
func (r *DecisionHookRunner) RunBeforeHooks(context *DecisionContext) error {
	if context == nil {
		return nil
	}
	for i, hook := range r.hooks {
		if hook.Before != nil {
			if err := hook.Before(context); err != nil {
				util.Errorf("Before hook %d failed: %v", i, err)
				return &BeforeHookError{HookIndex: i, Err: err}
			}
		}
	}
	return nil
}

// RunAfterHooks runs all after hooks in reverse order
func (r *DecisionHookRunner) RunAfterHooks(context *DecisionContext, variant string) error {
	if context == nil {
		return nil
	}
	for i := len(r.hooks) - 1; i >= 0; i-- {
		hook := r.hooks[i]
		if hook.After != nil {
			if err := hook.After(context, variant); err != nil {
				util.Errorf("After hook %d failed: %v", i, err)
				return &AfterHookError{HookIndex: i, Err: err}
			}
		}
	}
	return nil
}

// RunOnFinallyHooks runs all onFinally hooks in reverse order
func (r *DecisionHookRunner) RunOnFinallyHooks(context *DecisionContext, variant string) {
	if context == nil {
		return
	}
	for i := len(r.hooks) - 1; i >= 0; i-- {
		hook := r.hooks[i]
		if hook.OnFinally != nil {
			if err := hook.OnFinally(context, variant); err != nil {
				util.Errorf("OnFinally hook %d failed: %v", i, err)
			}
		}
	}
}

// RunErrorHooks runs all error hooks in reverse order
func (r *DecisionHookRunner) RunErrorHooks(context *DecisionContext, decisionError error) {
	if context == nil {
		return
	}
	for i := len(r.hooks) - 1; i >= 0; i-- {
		hook := r.hooks[i]
		if hook.Error != nil {
			if err := hook.Error(context, decisionError); err != nil {
				util.Errorf("Error hook %d failed: %v", i, err)
			}
		}
	}
}

func (r *DecisionHookRunner) AddHook(hook *DecisionHook) {
	r.hooks = append(r.hooks, hook)
}

func (r *DecisionHookRunner) ClearHooks() {
	r.hooks = []*DecisionHook{}
}
