package bucketing

import (
	"time"
)

const (
	RolloutTypeSchedule = "schedule"
	RolloutTypeGradual  = "gradual"
	RolloutTypeStepped  = "stepped"
)

const (
	StageTypeLinear   = "linear"
	StageTypeDiscrete = "discrete"
)

// Rollout describes a percentage curve over time. Stages must be in date
// order.
type Rollout struct {
	Type            string         `json:"type" validate:"omitempty,oneof=schedule gradual stepped"`
	StartPercentage float64        `json:"startPercentage" validate:"gte=0,lte=1"`
	StartDate       time.Time      `json:"startDate"`
	Stages          []RolloutStage `json:"stages" validate:"dive"`
}

type RolloutStage struct {
	Type       string    `json:"type" validate:"oneof=linear discrete"`
	Date       time.Time `json:"date"`
	Percentage float64   `json:"percentage" validate:"gte=0,lte=1"`
}

// IsZero reports whether the rollout carries no gating at all.
func (r Rollout) IsZero() bool {
	return r.Type == "" && r.StartDate.IsZero() && r.StartPercentage == 0 && len(r.Stages) == 0
}

// CurrentPercentage evaluates the rollout curve at now.
//
// A schedule rollout is all-or-nothing around StartDate. Staged rollouts
// start from StartPercentage at StartDate and move stage to stage: a linear
// next stage interpolates from the current percentage over the wall-clock
// window, a discrete next stage holds the current percentage until its date
// passes.
func (r Rollout) CurrentPercentage(now time.Time) float64 {
	if r.Type == RolloutTypeSchedule {
		if now.After(r.StartDate) {
			return 1
		}
		return 0
	}

	var reached []RolloutStage
	var upcoming []RolloutStage
	for _, stage := range r.Stages {
		if stage.Date.Before(now) {
			reached = append(reached, stage)
		} else {
			upcoming = append(upcoming, stage)
		}
	}

	var current *RolloutStage
	if len(reached) > 0 {
		current = &reached[len(reached)-1]
	} else if r.StartDate.Before(now) {
		current = &RolloutStage{
			Type:       StageTypeDiscrete,
			Date:       r.StartDate,
			Percentage: r.StartPercentage,
		}
	}
	if current == nil {
		return 0
	}

	if len(upcoming) == 0 || upcoming[0].Type == StageTypeDiscrete {
		return current.Percentage
	}

	next := upcoming[0]
	window := next.Date.Sub(current.Date)
	if window <= 0 {
		return next.Percentage
	}
	elapsed := float64(now.Sub(current.Date)) / float64(window)
	return current.Percentage + (next.Percentage-current.Percentage)*elapsed
}

// IsKeyInRollout reports whether a key with the given rollout hash is admitted
// at now. A zero rollout admits everything.
func (r Rollout) IsKeyInRollout(rolloutHash float64, now time.Time) bool {
	if r.IsZero() {
		return true
	}
	percentage := r.CurrentPercentage(now)
	return percentage != 0 && rolloutHash <= percentage
}
