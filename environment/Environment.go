// Package environment outlines the interfaces and sturcts needed to implement
// concrete environments
package environment

import (
	"io"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/tabular/timestep"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidAction is returned when an environment is stepped with an
// action outside of its ActionSpec
var ErrInvalidAction = errors.New("invalid action")

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when episodes should end. End should modify the
// TimeStep so that its StepType is timestep.Last when the episode ends
// and report whether the episode has ended.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme for taking actions in some environment
type Task interface {
	Starter
	Ender
	GetReward(state, action, nextState mat.Vector) float64
	AtGoal(state mat.Matrix) bool
}

// Environment implements a simualted environment, which includes a Task to
// complete
type Environment interface {
	Task
	Reset() (timestep.TimeStep, error) // Resets between episodes
	Step(action *mat.VecDense) (timestep.TimeStep, bool, error)
	CurrentTimeStep() timestep.TimeStep
	ObservationSpec() Spec
	ActionSpec() Spec
}

// Renderer is an Environment which can draw its current state as text
type Renderer interface {
	Render(w io.Writer) error
}

// NumActions returns the number of actions in a discrete, 1-dimensional
// action specification. Actions are enumerated (0, 1, 2, ... N-1).
func NumActions(s Spec) (int, error) {
	if s.Cardinality != Discrete {
		return 0, errors.New("numActions: actions must be discrete")
	}
	if s.LowerBound.Len() != 1 {
		return 0, errors.New("numActions: actions must be 1-dimensional")
	}
	if s.LowerBound.AtVec(0) != 0.0 {
		return 0, errors.New("numActions: actions must be enumerated " +
			"starting from 0")
	}
	return int(s.UpperBound.AtVec(0)) + 1, nil
}

// ValidateAction returns an error wrapping ErrInvalidAction if the
// action does not belong to the discrete action specification s
func ValidateAction(s Spec, action mat.Vector) (int, error) {
	if action == nil || action.Len() != 1 {
		return -1, errors.Wrap(ErrInvalidAction, "actions must be "+
			"1-dimensional")
	}

	numActions, err := NumActions(s)
	if err != nil {
		return -1, err
	}

	value := action.AtVec(0)
	a := int(value)
	if float64(a) != value || a < 0 || a >= numActions {
		return -1, errors.Wrapf(ErrInvalidAction, "action %v not in "+
			"[0, %d)", value, numActions)
	}
	return a, nil
}
