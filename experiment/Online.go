package experiment

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/tabular/agent"
	env "github.com/samuelfneumann/tabular/environment"
	"github.com/samuelfneumann/tabular/experiment/trackers"
	"github.com/samuelfneumann/tabular/log"
	ts "github.com/samuelfneumann/tabular/timestep"
	"github.com/samuelfneumann/tabular/utils/progressbar"
)

// progressBarWidth is the width in characters of the progress bar
const progressBarWidth int = 50

// Option configures an Online experiment
type Option func(*Online)

// WithTrackers registers trackers with the experiment
func WithTrackers(t ...trackers.Tracker) Option {
	return func(o *Online) {
		o.trackers = append(o.trackers, t...)
	}
}

// WithRenderer renders the environment to w after every timestep,
// pausing for freshTime after each frame. At the end of each episode
// the episode length is printed and the experiment pauses for
// sleepTime.
func WithRenderer(w io.Writer, freshTime, sleepTime time.Duration) Option {
	return func(o *Online) {
		o.renderOut = w
		o.freshTime = freshTime
		o.sleepTime = sleepTime
	}
}

// WithLogger logs the result of every episode with l
func WithLogger(l *log.Logger) Option {
	return func(o *Online) {
		o.logger = l
	}
}

// WithProgressBar prints a progress bar over episodes to w
func WithProgressBar(w io.Writer) Option {
	return func(o *Online) {
		o.progressOut = w
	}
}

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	env.Environment
	agent.Agent
	episodes       int
	currentEpisode int
	trackers       []trackers.Tracker

	logger *log.Logger

	renderer  env.Renderer
	renderOut io.Writer
	freshTime time.Duration
	sleepTime time.Duration

	progressOut io.Writer
	progress    *progressbar.ManualProgressBar
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The experiment is run for episodes
// episodes.
func NewOnline(e env.Environment, a agent.Agent, episodes int,
	opts ...Option) (*Online, error) {
	if episodes < 1 {
		return nil, fmt.Errorf("newOnline: episodes must be positive, "+
			"have %d", episodes)
	}

	o := &Online{
		Environment: e,
		Agent:       a,
		episodes:    episodes,
		logger:      log.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.renderOut != nil {
		r, ok := e.(env.Renderer)
		if !ok {
			return nil, fmt.Errorf("newOnline: environment %T cannot be "+
				"rendered", e)
		}
		o.renderer = r
	}

	if o.progressOut != nil {
		o.progress = progressbar.NewManualProgressBar(o.progressOut,
			progressBarWidth, episodes)
	}

	return o, nil
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Episodes returns the number of episodes the experiment runs for
func (o *Online) Episodes() int {
	return o.episodes
}

// CurrentEpisode returns the number of episodes run so far
func (o *Online) CurrentEpisode() int {
	return o.currentEpisode
}

// RunEpisode runs a single episode of the experiment and returns
// whether all episodes of the experiment have been run
func (o *Online) RunEpisode() (bool, error) {
	if o.currentEpisode >= o.episodes {
		return true, nil
	}

	step, err := o.Environment.Reset()
	if err != nil {
		return false, errors.Wrap(err, "runEpisode: could not reset "+
			"environment")
	}
	if err := o.Agent.ObserveFirst(step); err != nil {
		return false, errors.Wrap(err, "runEpisode")
	}
	o.track(step)
	if err := o.render(o.freshTime); err != nil {
		return false, errors.Wrap(err, "runEpisode")
	}

	episodeReturn := 0.0
	for !step.Last() {
		// Select action, step in environment
		action, err := o.Agent.SelectAction(step)
		if err != nil {
			return false, errors.Wrap(err, "runEpisode")
		}
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return false, errors.Wrap(err, "runEpisode")
		}
		episodeReturn += step.Reward

		// Cache the environment step in each Tracker
		o.track(step)

		// Observe the timestep and step the agent
		if err := o.Agent.Observe(action, step); err != nil {
			return false, errors.Wrap(err, "runEpisode")
		}
		if err := o.Agent.Step(); err != nil {
			return false, errors.Wrap(err, "runEpisode")
		}

		if err := o.render(o.freshTime); err != nil {
			return false, errors.Wrap(err, "runEpisode")
		}
	}
	o.Agent.EndEpisode()
	o.currentEpisode++

	o.logger.With(log.LogParams{
		"episode": o.currentEpisode,
		"steps":   step.Number,
		"return":  episodeReturn,
		"end":     step.EndType().String(),
	}).Info("episode finished")

	if err := o.endEpisode(step); err != nil {
		return false, errors.Wrap(err, "runEpisode")
	}

	return o.currentEpisode >= o.episodes, nil
}

// endEpisode reports the end of an episode to the renderer and the
// progress bar
func (o *Online) endEpisode(last ts.TimeStep) error {
	if o.renderer != nil {
		_, err := fmt.Fprintf(o.renderOut, "\rEpisode %d: total steps = %d\n",
			o.currentEpisode, last.Number)
		if err != nil {
			return err
		}
		time.Sleep(o.sleepTime)
	}

	if o.progress != nil {
		o.progress.Increment()
		if err := o.progress.Display(); err != nil {
			return err
		}
		if o.currentEpisode >= o.episodes {
			return o.progress.Close()
		}
	}
	return nil
}

// Run runs the entire experiment for all episodes
func (o *Online) Run() error {
	for {
		ended, err := o.RunEpisode()
		if err != nil {
			return errors.Wrapf(err, "run: episode %d", o.currentEpisode+1)
		}
		if ended {
			return nil
		}
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return errors.Wrap(err, "save")
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}

// render draws the environment if a renderer is set, then pauses for
// the argument duration
func (o *Online) render(pause time.Duration) error {
	if o.renderer == nil {
		return nil
	}
	if err := o.renderer.Render(o.renderOut); err != nil {
		return err
	}
	time.Sleep(pause)
	return nil
}
