package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/tabular/agent/tabular"
	"github.com/samuelfneumann/tabular/environment/envconfig"
	"github.com/samuelfneumann/tabular/environment/maze"
	"github.com/samuelfneumann/tabular/experiment"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MazeCmd returns the command which trains an agent in a maze
func MazeCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	var snapshot string

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Train an agent to reach the goal of a maze avoiding hells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config(cmd, g, f, experiment.DefaultMazeConfig())
			if err != nil {
				return fmt.Errorf("invalid configuration: %v", err)
			}
			if c.EnvConf.Environment != envconfig.Maze {
				return fmt.Errorf("invalid configuration: maze command "+
					"cannot run environment %v", c.EnvConf.Environment)
			}

			o, a, err := train(cmd, c, f)
			if err != nil {
				return fmt.Errorf("failed to train: %v", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "game over")

			if snapshot != "" {
				m, ok := o.Environment.(*maze.Maze)
				if !ok {
					return fmt.Errorf("failed to save snapshot: environment "+
						"%T is not a maze", o.Environment)
				}
				if err := m.SavePNG(snapshot, maze.DefaultUnit,
					stateValues(m, a)); err != nil {
					return fmt.Errorf("failed to save snapshot: %v", err)
				}
			}
			return nil
		},
	}

	f.register(cmd, experiment.DefaultMazeConfig(), 50*time.Millisecond,
		500*time.Millisecond)
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "Save a PNG image of "+
		"the maze shaded by learned state values to this file")
	return cmd
}

// stateValues returns the greedy value max_a Q[s][a] of every cell of
// the maze which has a row in the agent's value table
func stateValues(m *maze.Maze, a *tabular.Agent) map[maze.Cell]float64 {
	values := make(map[maze.Cell]float64)
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			obs := mat.NewVecDense(2, []float64{float64(x), float64(y)})
			s, err := tabular.NewState(obs)
			if err != nil {
				panic(errors.Wrap(err, "stateValues"))
			}

			if row, ok := a.Values().Row(s); ok {
				values[maze.Cell{X: x, Y: y}] = floats.Max(row)
			}
		}
	}
	return values
}
