package cmd

import (
	"fmt"
	"time"

	"github.com/samuelfneumann/tabular/environment/envconfig"
	"github.com/samuelfneumann/tabular/experiment"
	"github.com/spf13/cobra"
)

// TreasureCmd returns the command which trains an agent to find the
// treasure at the end of a line
func TreasureCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	var states int

	defaults := experiment.DefaultTreasureConfig()

	cmd := &cobra.Command{
		Use:   "treasure",
		Short: "Train an agent to find the treasure at the end of a line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config(cmd, g, f, defaults)
			if err != nil {
				return fmt.Errorf("invalid configuration: %v", err)
			}
			if cmd.Flags().Changed("states") {
				c.EnvConf.States = states
				if err := c.Validate(); err != nil {
					return fmt.Errorf("invalid configuration: %v", err)
				}
			}
			if c.EnvConf.Environment != envconfig.Treasure {
				return fmt.Errorf("invalid configuration: treasure command "+
					"cannot run environment %v", c.EnvConf.Environment)
			}

			if _, _, err := train(cmd, c, f); err != nil {
				return fmt.Errorf("failed to train: %v", err)
			}
			return nil
		},
	}

	f.register(cmd, defaults, 300*time.Millisecond, 2*time.Second)
	cmd.Flags().IntVar(&states, "states", defaults.EnvConf.States,
		"Number of states on the line, including the treasure")
	return cmd
}
