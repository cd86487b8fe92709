// Package cmd implements the command line interface of the tabular
// reinforcement learning demos
package cmd

import (
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by all commands
type globalFlags struct {
	configPath string
	seed       uint64
	logLevel   string
	logFormat  string
}

// RootCmd returns the root cobra command of the tool
func RootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "tabular",
		Short:        "Tabular reinforcement learning in a maze and on a line",
		SilenceUsage: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringVarP(&g.configPath, "config", "c", "", "Config file path")
	flags.Uint64Var(&g.seed, "seed", 0, "Seed for the agent's random "+
		"number generator")
	flags.StringVar(&g.logLevel, "log-level", "", "Log level, one of "+
		"panic|fatal|error|warn|info|debug|trace")
	flags.StringVar(&g.logFormat, "log-format", "", "Log format, one of "+
		"json|text")

	cmd.AddCommand(MazeCmd(g))
	cmd.AddCommand(TreasureCmd(g))
	return cmd
}
