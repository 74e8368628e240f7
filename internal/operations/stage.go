package operations

import (
	"context"
)

// Step IDs in execution order
const (
	StepLoad      = "load"
	StepAggregate = "aggregate"
	StepRender    = "render"
	StepWrite     = "write"
)

// Step is one stage of a report run
type Step interface {
	// ID returns the unique identifier for this Step
	ID() string

	// Name returns the human-readable name for this Step
	Name() string

	// Execute runs the Step, reading and extending the run state
	Execute(ctx context.Context, state *RunState) error
}
