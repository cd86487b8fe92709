package line

import (
	"fmt"

	env "github.com/samuelfneumann/tabular/environment"
	ts "github.com/samuelfneumann/tabular/timestep"
	"gonum.org/v1/gonum/mat"
)

// TreasureReward is the reward for reaching the treasure. Every other
// transition has zero reward.
const TreasureReward float64 = 1.0

// Treasure implements the task of walking right along a line until the
// treasure at its right end is reached. Episodes always start at
// position 0.
type Treasure struct {
	env.Starter
	states    int
	stepLimit env.StepLimit
}

// NewTreasure returns a new Treasure task on a line of states cells,
// the last of which holds the treasure. Episodes are cut off after
// cutoff steps if cutoff > 0.
func NewTreasure(states, cutoff int) (*Treasure, error) {
	if states < 2 {
		return nil, fmt.Errorf("newTreasure: line must have at least 2 "+
			"states, have %d", states)
	}

	return &Treasure{
		Starter:   env.NewSingleStarter(0),
		states:    states,
		stepLimit: env.NewStepLimit(cutoff),
	}, nil
}

// States returns the number of cells on the line, including the
// treasure
func (t *Treasure) States() int {
	return t.states
}

// Terminal returns the position of the treasure
func (t *Treasure) Terminal() int {
	return t.states - 1
}

// GetReward returns the reward for transitioning into nextState
func (t *Treasure) GetReward(_, _, nextState mat.Vector) float64 {
	if int(nextState.AtVec(0)) == t.Terminal() {
		return TreasureReward
	}
	return 0.0
}

// End ends the episode when the treasure is found or when the episode
// step limit is exceeded
func (t *Treasure) End(step *ts.TimeStep) bool {
	if int(step.Observation.AtVec(0)) == t.Terminal() {
		step.StepType = ts.Last
		step.SetEnd(ts.TerminalStateReached)
		return true
	}
	return t.stepLimit.End(step)
}

// AtGoal returns whether the argument state is the treasure
func (t *Treasure) AtGoal(state mat.Matrix) bool {
	rows, cols := state.Dims()
	if rows != 1 || cols != 1 {
		return false
	}
	return int(state.At(0, 0)) == t.Terminal()
}

func (t *Treasure) String() string {
	return fmt.Sprintf("Treasure | States: %d", t.states)
}
