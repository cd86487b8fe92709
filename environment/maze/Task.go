package maze

import (
	"fmt"

	env "github.com/samuelfneumann/tabular/environment"
	ts "github.com/samuelfneumann/tabular/timestep"
	"gonum.org/v1/gonum/mat"
)

const (
	GoalReward float64 = 1.0
	HellReward float64 = -1.0
	StepReward float64 = 0.0
)

// Cell is a position in the maze. X is the column and Y is the row, with
// (0, 0) in the top-left corner.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// cell converts an (x, y) observation vector into a Cell
func cell(state mat.Vector) Cell {
	return Cell{X: int(state.AtVec(0)), Y: int(state.AtVec(1))}
}

// Solve implements the task of reaching the goal cell of a maze
// without stepping into a hell cell. Both the goal and the hells are
// terminal.
type Solve struct {
	env.Starter

	rows, cols int
	goal       Cell
	hells      map[Cell]bool

	stepLimit env.StepLimit
}

// NewSolve returns a new Solve task on a maze with rows rows and cols
// columns. Episodes start in the state given by the Starter, and are
// cut off after cutoff steps if cutoff > 0.
func NewSolve(s env.Starter, rows, cols int, goal Cell, hells []Cell,
	cutoff int) (*Solve, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("newSolve: maze must have at least one row "+
			"and column, have (%d, %d)", rows, cols)
	}

	inside := func(c Cell) bool {
		return c.X >= 0 && c.X < cols && c.Y >= 0 && c.Y < rows
	}
	if !inside(goal) {
		return nil, fmt.Errorf("newSolve: goal %v outside maze", goal)
	}

	hellSet := make(map[Cell]bool, len(hells))
	for _, hell := range hells {
		if !inside(hell) {
			return nil, fmt.Errorf("newSolve: hell %v outside maze", hell)
		}
		if hell == goal {
			return nil, fmt.Errorf("newSolve: hell %v is the goal", hell)
		}
		hellSet[hell] = true
	}

	start := s.Start()
	if start.Len() != 2 {
		return nil, fmt.Errorf("newSolve: start state must be (x, y)")
	}
	if startCell := cell(start); !inside(startCell) ||
		hellSet[startCell] || startCell == goal {
		return nil, fmt.Errorf("newSolve: start %v must be a ground cell "+
			"inside the maze", startCell)
	}

	return &Solve{
		Starter:   s,
		rows:      rows,
		cols:      cols,
		goal:      goal,
		hells:     hellSet,
		stepLimit: env.NewStepLimit(cutoff),
	}, nil
}

// GetReward returns the reward for transitioning into nextState
func (s *Solve) GetReward(_, _, nextState mat.Vector) float64 {
	switch c := cell(nextState); {
	case c == s.goal:
		return GoalReward
	case s.hells[c]:
		return HellReward
	default:
		return StepReward
	}
}

// End ends the episode when a terminal cell is reached or when the
// episode step limit is exceeded
func (s *Solve) End(t *ts.TimeStep) bool {
	c := cell(t.Observation)
	if c == s.goal || s.hells[c] {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
		return true
	}

	return s.stepLimit.End(t)
}

// AtGoal returns whether the argument (x, y) state is the goal
func (s *Solve) AtGoal(state mat.Matrix) bool {
	rows, cols := state.Dims()
	if rows != 2 || cols != 1 {
		return false
	}

	return int(state.At(0, 0)) == s.goal.X && int(state.At(1, 0)) == s.goal.Y
}

// Goal returns the goal cell
func (s *Solve) Goal() Cell {
	return s.goal
}

// IsHell returns whether a cell is a hell
func (s *Solve) IsHell(c Cell) bool {
	return s.hells[c]
}

// Hells returns the hell cells in row-major order
func (s *Solve) Hells() []Cell {
	hells := make([]Cell, 0, len(s.hells))
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			if c := (Cell{x, y}); s.hells[c] {
				hells = append(hells, c)
			}
		}
	}
	return hells
}

func (s *Solve) String() string {
	return fmt.Sprintf("Solve | Goal: %v  |  Hells: %v", s.goal, s.Hells())
}
