// Package experiment implements functionality for running an experiment
package experiment

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/tabular/agent/tabular"
	"github.com/samuelfneumann/tabular/environment/envconfig"
	"github.com/samuelfneumann/tabular/experiment/trackers"
	"github.com/samuelfneumann/tabular/log"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments will track environment TimeSteps, caching each TimeStep
// in RAM to be later saved to disk. The Save() function will then take
// all cached data and save it to disk. This is usually performed after
// an experiment has been run. The Run() method will run all episodes of
// the experiment. The RunEpisode() function will run a single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. New Trackers can
// be registered with an Experiment through the constructor or through
// an Experiment's Register() function.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether all episodes were run

	// Save all tracked data to disk
	Save() error

	// Adds a new trackers.Tracker to the (possibly already running)
	// experiment.
	Register(t trackers.Tracker)
}

// Config represents a configuration of an experiment.
type Config struct {
	Episodes  int
	Seed      uint64
	EnvConf   envconfig.Config
	AgentConf tabular.Config
	Log       log.LogConfig
}

// DefaultMazeConfig returns the default configuration of the maze
// experiment: 100 episodes of Sarsa on the default maze
func DefaultMazeConfig() Config {
	return Config{
		Episodes:  100,
		Seed:      1,
		EnvConf:   envconfig.NewMazeConfig(),
		AgentConf: tabular.NewConfig(tabular.Sarsa),
		Log:       log.DefaultLogConfig(),
	}
}

// DefaultTreasureConfig returns the default configuration of the
// treasure experiment: 13 episodes of Q-Learning on a line of 6 states
func DefaultTreasureConfig() Config {
	agentConf := tabular.NewConfig(tabular.QLearning)
	agentConf.LearningRate = 0.1

	return Config{
		Episodes:  13,
		Seed:      2,
		EnvConf:   envconfig.NewTreasureConfig(),
		AgentConf: agentConf,
		Log:       log.DefaultLogConfig(),
	}
}

// ParseConfig parses a Config from the JSON file at path. Fields not
// set in the file keep their values in defaults.
func ParseConfig(path string, defaults Config) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "parseConfig: error reading "+
			"config file")
	}

	c := defaults
	if err := json.Unmarshal(bytes, &c); err != nil {
		return Config{}, errors.Wrap(err, "parseConfig: error "+
			"unmarshalling config")
	}
	return c, nil
}

// Validate returns an error describing whether or not the
// configuration is valid or not.
func (c Config) Validate() error {
	if c.Episodes < 1 {
		return fmt.Errorf("validate: episodes must be positive, have %d",
			c.Episodes)
	}
	if err := c.EnvConf.Validate(); err != nil {
		return errors.Wrap(err, "validate")
	}
	if err := c.AgentConf.Validate(); err != nil {
		return errors.Wrap(err, "validate")
	}
	return nil
}

// CreateExp creates the environment, the agent and the online
// experiment described by the Config
func (c Config) CreateExp(logger *log.Logger,
	opts ...Option) (*Online, *tabular.Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "createExp")
	}

	e, _, err := c.EnvConf.Create()
	if err != nil {
		return nil, nil, errors.Wrap(err, "createExp: could not create "+
			"environment")
	}
	logger.With(log.LogParams{
		"environment": fmt.Sprint(e),
	}).Debug("created environment")

	a, err := tabular.NewFromEnv(e, c.AgentConf, c.Seed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "createExp: could not create agent")
	}
	logger.With(log.LogParams{
		"variant":       c.AgentConf.Variant,
		"epsilon":       c.AgentConf.Epsilon,
		"learning_rate": c.AgentConf.LearningRate,
		"discount":      c.AgentConf.Discount,
		"seed":          c.Seed,
	}).Debug("created agent")

	opts = append([]Option{WithLogger(logger)}, opts...)
	o, err := NewOnline(e, a, c.Episodes, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "createExp")
	}
	return o, a, nil
}
