// Package line implements a one dimensional walk in which an explorer
// searches for a treasure at the right end of a line
package line

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	env "github.com/samuelfneumann/tabular/environment"
	ts "github.com/samuelfneumann/tabular/timestep"
	"gonum.org/v1/gonum/mat"
)

// Actions on the line. Moving left from position 0 stays at position 0.
const (
	Left int = iota
	Right
)

// Actions is the number of actions available on the line
const Actions int = 2

// ActionNames names each action, indexed by action
var ActionNames = []string{"left", "right"}

// DefaultStates is the default length of the line
const DefaultStates int = 6

// Line is a line of cells on which an explorer moves left or right.
// Observations are the position of the explorer.
type Line struct {
	*Treasure

	position    int
	currentStep ts.TimeStep
	au          aurora.Aurora
}

// New returns a new Line for the argument task, together with the first
// timestep of the first episode
func New(t *Treasure) (*Line, ts.TimeStep, error) {
	if t == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: task cannot be nil")
	}

	l := &Line{
		Treasure: t,
		au:       aurora.NewAurora(true),
	}

	step, err := l.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not reset line: %v",
			err)
	}
	return l, step, nil
}

// Reset resets the line to a starting state
func (l *Line) Reset() (ts.TimeStep, error) {
	start := l.Start()
	if start.Len() != 1 {
		return ts.TimeStep{}, fmt.Errorf("reset: start state must be " +
			"1-dimensional")
	}

	position := int(start.AtVec(0))
	if position < 0 || position >= l.Terminal() {
		return ts.TimeStep{}, fmt.Errorf("reset: start position %d must "+
			"be in [0, %d)", position, l.Terminal())
	}

	l.position = position
	step := ts.New(ts.First, 0, l.observation(), 0)
	l.currentStep = step

	return step, nil
}

// Step takes one environmental step given some action
func (l *Line) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if l.currentStep.Last() {
		return ts.TimeStep{}, true, fmt.Errorf("step: episode has ended, " +
			"reset the line first")
	}

	a, err := env.ValidateAction(l.ActionSpec(), action)
	if err != nil {
		return ts.TimeStep{}, false, errors.Wrap(err, "step")
	}

	state := l.observation()
	if a == Right {
		l.position++
	} else if l.position > 0 {
		l.position--
	}
	nextState := l.observation()

	reward := l.GetReward(state, action, nextState)
	nextStep := ts.New(ts.Mid, reward, nextState, l.currentStep.Number+1)
	last := l.End(&nextStep)

	l.currentStep = nextStep
	return nextStep, last, nil
}

func (l *Line) observation() *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(l.position)})
}

// CurrentTimeStep returns the current time step in the environment
func (l *Line) CurrentTimeStep() ts.TimeStep {
	return l.currentStep
}

// Position returns the current position of the explorer
func (l *Line) Position() int {
	return l.position
}

// SetColors turns coloured text rendering on or off
func (l *Line) SetColors(enabled bool) {
	l.au = aurora.NewAurora(enabled)
}

// Render writes the line to w as a single line of text, such as
// --o--T, where o is the explorer and T the treasure. The line is
// prefixed with a carriage return so that successive frames overwrite
// each other in a terminal.
func (l *Line) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString("\r")
	for i := 0; i < l.states; i++ {
		switch {
		case i == l.position:
			b.WriteString(l.au.Red("o").String())

		case i == l.Terminal():
			b.WriteString(l.au.Yellow("T").String())

		default:
			b.WriteString("-")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ActionSpec returns the action specification of the environment
func (l *Line) ActionSpec() env.Spec {
	return env.NewDiscreteActions(Actions)
}

// ObservationSpec returns the observation specification of the
// environment
func (l *Line) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0.})
	upperBound := mat.NewVecDense(1, []float64{float64(l.Terminal())})

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

func (l *Line) String() string {
	return fmt.Sprintf("Line | At: %d  |  %v", l.position, l.Treasure)
}
