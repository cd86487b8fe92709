// Package envconfig provides configuration structs for configuring
// environments with default layouts and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"fmt"

	"github.com/pkg/errors"
	env "github.com/samuelfneumann/tabular/environment"
	"github.com/samuelfneumann/tabular/environment/line"
	"github.com/samuelfneumann/tabular/environment/maze"
	ts "github.com/samuelfneumann/tabular/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	Maze     EnvName = "Maze"
	Treasure EnvName = "Treasure"
)

// Config implements a specific configuration of a specific environment.
// Rows, Cols, Start, Goal and Hells configure the Maze environment
// only, States configures the Treasure environment only.
type Config struct {
	Environment EnvName

	Rows  int
	Cols  int
	Start maze.Cell
	Goal  maze.Cell
	Hells []maze.Cell

	States int

	// EpisodeCutoff ends episodes after this many steps. Episodes are
	// never cut off if EpisodeCutoff is 0.
	EpisodeCutoff int
}

// NewMazeConfig returns the Config of the default 4x4 maze
func NewMazeConfig() Config {
	hells := make([]maze.Cell, len(maze.DefaultHells))
	copy(hells, maze.DefaultHells)

	return Config{
		Environment: Maze,
		Rows:        maze.DefaultRows,
		Cols:        maze.DefaultCols,
		Start:       maze.DefaultStart,
		Goal:        maze.DefaultGoal,
		Hells:       hells,
	}
}

// NewTreasureConfig returns the Config of the default treasure hunt
func NewTreasureConfig() Config {
	return Config{
		Environment: Treasure,
		States:      line.DefaultStates,
	}
}

// Validate returns an error describing whether or not the
// configuration is valid or not.
func (c Config) Validate() error {
	if c.EpisodeCutoff < 0 {
		return fmt.Errorf("validate: episode cutoff must be non-negative")
	}

	switch c.Environment {
	case Maze:
		if c.Rows < 1 || c.Cols < 1 {
			return fmt.Errorf("validate: maze must have at least one row "+
				"and column, have (%d, %d)", c.Rows, c.Cols)
		}

	case Treasure:
		if c.States < 2 {
			return fmt.Errorf("validate: treasure line must have at least "+
				"2 states, have %d", c.States)
		}

	default:
		return fmt.Errorf("validate: no such environment %q", c.Environment)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create() (env.Environment, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "create")
	}

	switch c.Environment {
	case Maze:
		s := env.NewSingleStarter(float64(c.Start.X), float64(c.Start.Y))
		task, err := maze.NewSolve(s, c.Rows, c.Cols, c.Goal, c.Hells,
			c.EpisodeCutoff)
		if err != nil {
			return nil, ts.TimeStep{}, errors.Wrap(err, "create")
		}
		m, step, err := maze.New(task)
		if err != nil {
			return nil, ts.TimeStep{}, errors.Wrap(err, "create")
		}
		return m, step, nil

	case Treasure:
		task, err := line.NewTreasure(c.States, c.EpisodeCutoff)
		if err != nil {
			return nil, ts.TimeStep{}, errors.Wrap(err, "create")
		}
		l, step, err := line.New(task)
		if err != nil {
			return nil, ts.TimeStep{}, errors.Wrap(err, "create")
		}
		return l, step, nil
	}

	panic(fmt.Sprintf("create: cannot create environment %v, no such "+
		"environment", c.Environment))
}

// ActionNames returns the names of the actions of the configured
// environment, indexed by action
func (c Config) ActionNames() []string {
	switch c.Environment {
	case Maze:
		return maze.ActionNames
	case Treasure:
		return line.ActionNames
	}
	return nil
}
