// Package maze implements a grid maze with hell cells and a single goal
package maze

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

// Actions in the maze. The explorer stays in place when an action would
// move it off the grid.
const (
	Up int = iota
	Down
	Right
	Left
)

// Actions is the number of actions available in the maze
const Actions int = 4

// ActionNames names each action, indexed by action
var ActionNames = []string{"up", "down", "right", "left"}

// Default maze layout
const (
	DefaultRows int = 4
	DefaultCols int = 4
)

var (
	DefaultStart = Cell{0, 0}
	DefaultGoal  = Cell{2, 2}
	DefaultHells = []Cell{{2, 1}, {1, 2}}
)

// Maze is a grid in which an explorer starts in some cell and must reach
// the goal cell while avoiding hell cells. Observations are the (x, y)
// coordinates of the explorer.
type Maze struct {
	*Solve

	position    Cell
	currentStep ts.TimeStep
	au          aurora.Aurora
}

// New returns a new Maze solving the argument task, together with the
// first timestep of the first episode
func New(t *Solve) (*Maze, ts.TimeStep, error) {
	if t == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: task cannot be nil")
	}

	m := &Maze{
		Solve: t,
		au:    aurora.NewAurora(true),
	}

	step, err := m.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not reset maze: %v",
			err)
	}
	return m, step, nil
}

// Reset resets the maze to a starting state
func (m *Maze) Reset() (ts.TimeStep, error) {
	start := m.Start()
	if start.Len() != 2 {
		return ts.TimeStep{}, fmt.Errorf("reset: start state must be (x, y)")
	}

	m.position = cell(start)
	step := ts.New(ts.First, 0, m.observation(), 0)
	m.currentStep = step

	return step, nil
}

// Step takes one environmental step given some action
func (m *Maze) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if m.currentStep.Last() {
		return ts.TimeStep{}, true, fmt.Errorf("step: episode has ended, " +
			"reset the maze first")
	}

	a, err := env.ValidateAction(m.ActionSpec(), action)
	if err != nil {
		return ts.TimeStep{}, false, errors.Wrap(err, "step")
	}

	state := m.observation()
	m.position = m.move(a)
	nextState := m.observation()

	reward := m.GetReward(state, action, nextState)
	nextStep := ts.New(ts.Mid, reward, nextState, m.currentStep.Number+1)
	last := m.End(&nextStep)

	m.currentStep = nextStep
	return nextStep, last, nil
}

// move returns the cell reached by taking action a in the current cell
func (m *Maze) move(a int) Cell {
	next := m.position
	switch a {
	case Up:
		if next.Y > 0 {
			next.Y--
		}

	case Down:
		if next.Y < m.rows-1 {
			next.Y++
		}

	case Right:
		if next.X < m.cols-1 {
			next.X++
		}

	case Left:
		if next.X > 0 {
			next.X--
		}
	}
	return next
}

func (m *Maze) observation() *mat.VecDense {
	return mat.NewVecDense(2, []float64{
		float64(m.position.X),
		float64(m.position.Y),
	})
}

// CurrentTimeStep returns the current time step in the environment
func (m *Maze) CurrentTimeStep() ts.TimeStep {
	return m.currentStep
}

// Position returns the current cell of the explorer
func (m *Maze) Position() Cell {
	return m.position
}

// Rows returns the number of rows in the maze
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the maze
func (m *Maze) Cols() int {
	return m.cols
}

// SetColors turns coloured text rendering on or off
func (m *Maze) SetColors(enabled bool) {
	m.au = aurora.NewAurora(enabled)
}

// Render writes the maze to w, one line per row. The explorer is drawn
// as R, hells as X, the goal as o and ground cells as a dot.
func (m *Maze) Render(w io.Writer) error {
	var b strings.Builder
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			c := Cell{x, y}
			switch {
			case c == m.position:
				b.WriteString(m.au.Red("R").String())

			case c == m.goal:
				b.WriteString(m.au.Yellow("o").String())

			case m.hells[c]:
				b.WriteString(m.au.Bold("X").String())

			default:
				b.WriteString(".")
			}
			if x < m.cols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ActionSpec returns the action specification of the environment
func (m *Maze) ActionSpec() env.Spec {
	return env.NewDiscreteActions(Actions)
}

// ObservationSpec returns the observation specification of the
// environment
func (m *Maze) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(2, nil)
	lowerBound := mat.NewVecDense(2, []float64{0., 0.})
	upperBound := mat.NewVecDense(2, []float64{
		float64(m.cols - 1),
		float64(m.rows - 1),
	})

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

func (m *Maze) String() string {
	str := "Maze | At: %v  |  %v  |  Bounds: (%d, %d)"
	return fmt.Sprintf(str, m.position, m.Solve, m.rows, m.cols)
}
