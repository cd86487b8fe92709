package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/tabular/agent/tabular"
	"github.com/samuelfneumann/tabular/experiment"
	"github.com/samuelfneumann/tabular/experiment/trackers"
	"github.com/samuelfneumann/tabular/log"
	"github.com/samuelfneumann/tabular/utils/matutils"
	"github.com/spf13/cobra"
)

// runFlags holds the flags shared by the maze and treasure commands
type runFlags struct {
	algorithm string
	trace     string
	episodes  int
	epsilon   float64
	alpha     float64
	gamma     float64
	lambda    float64

	render    bool
	noColor   bool
	progress  bool
	freshTime time.Duration
	sleepTime time.Duration

	plot    string
	returns string
	lengths string
}

// register adds the run flags to cmd with default values taken from
// the default configuration of the command
func (f *runFlags) register(cmd *cobra.Command, c experiment.Config,
	freshTime, sleepTime time.Duration) {
	flags := cmd.Flags()
	flags.StringVar(&f.algorithm, "algorithm", string(c.AgentConf.Variant),
		"Learning algorithm, one of QLearning|Sarsa|SarsaLambda")
	flags.StringVar(&f.trace, "trace", string(c.AgentConf.Trace),
		"Eligibility trace of SarsaLambda, one of Accumulating|Replacing")
	flags.IntVar(&f.episodes, "episodes", c.Episodes, "Number of episodes")
	flags.Float64Var(&f.epsilon, "epsilon", c.AgentConf.Epsilon,
		"Probability of acting greedily")
	flags.Float64Var(&f.alpha, "alpha", c.AgentConf.LearningRate,
		"Learning rate")
	flags.Float64Var(&f.gamma, "gamma", c.AgentConf.Discount,
		"Discount factor")
	flags.Float64Var(&f.lambda, "lambda", c.AgentConf.Lambda,
		"Trace decay rate of SarsaLambda")

	flags.BoolVar(&f.render, "render", false, "Render the environment "+
		"while training")
	flags.BoolVar(&f.noColor, "no-color", false, "Render without colours")
	flags.BoolVar(&f.progress, "progress", false, "Print a progress bar "+
		"to stderr")
	flags.DurationVar(&f.freshTime, "fresh", freshTime, "Pause after "+
		"each rendered step")
	flags.DurationVar(&f.sleepTime, "sleep", sleepTime, "Pause after "+
		"each rendered episode")

	flags.StringVar(&f.plot, "plot", "", "Save learning curves to this "+
		"HTML file")
	flags.StringVar(&f.returns, "returns", "", "Save episodic returns "+
		"to this gob file")
	flags.StringVar(&f.lengths, "lengths", "", "Save episode lengths to "+
		"this gob file")
}

// parseVariant returns the Variant named by s, ignoring case
func parseVariant(s string) (tabular.Variant, error) {
	for _, v := range []tabular.Variant{tabular.QLearning, tabular.Sarsa,
		tabular.SarsaLambda} {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", errors.Wrapf(tabular.ErrInvalidArgument, "no such "+
		"algorithm %q", s)
}

// parseTrace returns the TraceKind named by s, ignoring case
func parseTrace(s string) (tabular.TraceKind, error) {
	for _, k := range []tabular.TraceKind{tabular.Accumulating,
		tabular.Replacing} {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", errors.Wrapf(tabular.ErrInvalidArgument, "no such trace %q", s)
}

// config returns the experiment configuration of a command. Values
// are taken from defaults, overridden by the config file if one is
// given, overridden by flags set on the command line.
func config(cmd *cobra.Command, g *globalFlags, f *runFlags,
	defaults experiment.Config) (experiment.Config, error) {
	c := defaults
	if g.configPath != "" {
		var err error
		c, err = experiment.ParseConfig(g.configPath, defaults)
		if err != nil {
			return experiment.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		v, err := parseVariant(f.algorithm)
		if err != nil {
			return experiment.Config{}, err
		}
		c.AgentConf.Variant = v
	}
	if flags.Changed("trace") {
		k, err := parseTrace(f.trace)
		if err != nil {
			return experiment.Config{}, err
		}
		c.AgentConf.Trace = k
	}
	if flags.Changed("episodes") {
		c.Episodes = f.episodes
	}
	if flags.Changed("epsilon") {
		c.AgentConf.Epsilon = f.epsilon
	}
	if flags.Changed("alpha") {
		c.AgentConf.LearningRate = f.alpha
	}
	if flags.Changed("gamma") {
		c.AgentConf.Discount = f.gamma
	}
	if flags.Changed("lambda") {
		c.AgentConf.Lambda = f.lambda
	}
	if flags.Changed("seed") {
		c.Seed = g.seed
	}
	if flags.Changed("log-level") {
		c.Log.Level = g.logLevel
	}
	if flags.Changed("log-format") {
		c.Log.Format = g.logFormat
	}

	return c, c.Validate()
}

// colourer is an environment whose text rendering can be coloured
type colourer interface {
	SetColors(bool)
}

// train runs the experiment described by c, saves and plots the tracked
// data as requested by f, and prints the learned Q-table
func train(cmd *cobra.Command, c experiment.Config,
	f *runFlags) (*experiment.Online, *tabular.Agent, error) {
	logger, err := log.NewLogger(c.Log)
	if err != nil {
		return nil, nil, err
	}
	defer logger.Destroy()

	returns := trackers.NewReturn(f.returns)
	lengths := trackers.NewEpisodeLength(f.lengths)
	opts := []experiment.Option{experiment.WithTrackers(returns, lengths)}

	out := cmd.OutOrStdout()
	if f.render {
		opts = append(opts, experiment.WithRenderer(out, f.freshTime,
			f.sleepTime))
	}
	if f.progress {
		opts = append(opts, experiment.WithProgressBar(cmd.ErrOrStderr()))
	}

	o, a, err := c.CreateExp(logger, opts...)
	if err != nil {
		return nil, nil, err
	}
	if col, ok := o.Environment.(colourer); ok {
		col.SetColors(!f.noColor)
	}

	if err := o.Run(); err != nil {
		return nil, nil, err
	}
	if err := o.Save(); err != nil {
		return nil, nil, err
	}

	logger.With(log.LogParams{
		"mean_return":         trackers.Mean(returns, 0),
		"mean_episode_length": trackers.Mean(lengths, 0),
		"states":              a.Values().Len(),
	}).Info("training finished")
	logger.Debug(fmt.Sprintf("action values:\n%v",
		matutils.Format(a.Values().Matrix())))

	if f.plot != "" {
		if err := plot(f.plot, string(c.EnvConf.Environment), returns,
			lengths); err != nil {
			return nil, nil, err
		}
	}

	fmt.Fprintln(out, "Q-table:")
	fmt.Fprint(out, a.Values().Format(c.EnvConf.ActionNames()))

	return o, a, nil
}

// plot saves the learning curves of the trackers to an HTML file
func plot(path, title string, t ...trackers.DataTracker) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "plot: could not create file")
	}
	defer file.Close()

	return trackers.Plot(file, title, t...)
}
