// Package tabular implements tabular value-based agents: Q-Learning,
// Sarsa and Sarsa(λ) with ε-greedy behaviour.
//
// Agents store one row of action values for each observation they have
// seen, keyed by State. Rows are created lazily, initialized to zero,
// the first time an observation is passed to ChooseAction or Learn.
//
// Agents can be used directly through ChooseAction and Learn, or
// through the agent.Agent interface, which converts environment
// TimeSteps into Transitions.
package tabular

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/tabular/environment"
	ts "github.com/samuelfneumann/tabular/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Transition is a single step of experience. If Terminal is true,
// NextState and NextAction are ignored and the target is the reward
// alone. NextAction is only used by on-policy variants.
type Transition struct {
	State      State
	Action     int
	Reward     float64
	NextState  State
	NextAction int
	Terminal   bool
}

// learner implements the update rule of a Variant
type learner interface {
	learn(values *Table, t Transition)
	startEpisode()
}

// Agent is a tabular agent that learns action values with one of the
// Variants and acts ε-greedily with respect to them
type Agent struct {
	config  Config
	actions int
	values  *Table
	policy  *EGreedy
	learner learner

	// Most recent transition observed through the agent.Agent interface
	step     ts.TimeStep
	action   int
	nextStep ts.TimeStep

	// On-policy variants choose the next action when learning. That
	// action is returned by the next call to SelectAction in nextState.
	cachedAction    int
	cachedState     State
	hasCachedAction bool
}

// New returns a new Agent for an environment with the given number
// of actions
func New(actions int, c Config, seed uint64) (*Agent, error) {
	if actions < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "new: actions must be "+
			"positive, have %d", actions)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "new")
	}

	values := NewTable(actions)

	var l learner
	switch c.Variant {
	case QLearning:
		l = &qLearner{learningRate: c.LearningRate, discount: c.Discount}

	case Sarsa:
		l = &sarsaLearner{learningRate: c.LearningRate, discount: c.Discount}

	case SarsaLambda:
		l = newSarsaLambdaLearner(values, c)
	}

	return &Agent{
		config:  c,
		actions: actions,
		values:  values,
		policy:  NewEGreedy(c.Epsilon, rand.NewSource(seed)),
		learner: l,
	}, nil
}

// NewFromEnv returns a new Agent for the discrete actions of an
// environment
func NewFromEnv(env environment.Environment, c Config,
	seed uint64) (*Agent, error) {
	actions, err := environment.NumActions(env.ActionSpec())
	if err != nil {
		return nil, errors.Wrap(err, "newFromEnv")
	}
	return New(actions, c, seed)
}

// ChooseAction selects an action ε-greedily in state s, inserting a
// row for s if it has not been seen before
func (a *Agent) ChooseAction(s State) (int, error) {
	if s == "" {
		return -1, errors.Wrap(ErrInvalidArgument, "chooseAction: empty state")
	}
	return a.policy.Choose(a.values.Ensure(s)), nil
}

// Learn updates the action values using a single transition
func (a *Agent) Learn(t Transition) error {
	if err := a.validate(t); err != nil {
		return errors.Wrap(err, "learn")
	}
	a.learner.learn(a.values, t)
	return nil
}

// validate returns an error wrapping ErrInvalidArgument if t is
// malformed
func (a *Agent) validate(t Transition) error {
	if t.State == "" {
		return errors.Wrap(ErrInvalidArgument, "empty state")
	}
	if t.Action < 0 || t.Action >= a.actions {
		return errors.Wrapf(ErrInvalidArgument, "action %d not in [0, %d)",
			t.Action, a.actions)
	}
	if math.IsNaN(t.Reward) || math.IsInf(t.Reward, 0) {
		return errors.Wrapf(ErrInvalidArgument, "non-finite reward %v",
			t.Reward)
	}

	if t.Terminal {
		return nil
	}
	if t.NextState == "" {
		return errors.Wrap(ErrInvalidArgument, "empty next state")
	}
	if a.config.Variant.onPolicy() &&
		(t.NextAction < 0 || t.NextAction >= a.actions) {
		return errors.Wrapf(ErrInvalidArgument, "next action %d not in "+
			"[0, %d)", t.NextAction, a.actions)
	}
	return nil
}

// StartEpisode prepares the agent for a new episode. Eligibility
// traces are zeroed. Action values persist across episodes.
func (a *Agent) StartEpisode() {
	a.learner.startEpisode()
	a.hasCachedAction = false
}

// Values returns the action value Table of the agent
func (a *Agent) Values() *Table {
	return a.values
}

// Trace returns the eligibility trace Table of a SarsaLambda agent, or
// nil for other variants
func (a *Agent) Trace() *Table {
	if l, ok := a.learner.(*sarsaLambdaLearner); ok {
		return l.trace
	}
	return nil
}

// Config returns the configuration of the agent
func (a *Agent) Config() Config {
	return a.config
}

// Actions returns the number of actions the agent chooses from
func (a *Agent) Actions() int {
	return a.actions
}

// ObserveFirst observes and records the first episodic timestep
func (a *Agent) ObserveFirst(t ts.TimeStep) error {
	if !t.First() {
		return fmt.Errorf("observeFirst: timestep is not the first "+
			"timestep of an episode (step number = %d)", t.Number)
	}

	a.StartEpisode()
	a.step = ts.TimeStep{}
	a.nextStep = t
	return nil
}

// Observe observes and records any timestep other than the first
// timestep
func (a *Agent) Observe(action mat.Vector, nextStep ts.TimeStep) error {
	if action == nil || action.Len() != 1 {
		return errors.Wrap(ErrInvalidArgument, "observe: actions must be "+
			"1-dimensional")
	}
	value := action.AtVec(0)
	if value != math.Trunc(value) {
		return errors.Wrapf(ErrInvalidArgument, "observe: action %v is "+
			"not an integer", value)
	}

	a.step = a.nextStep
	a.action = int(value)
	a.nextStep = nextStep
	return nil
}

// Step updates the action values using the most recently observed
// transition
func (a *Agent) Step() error {
	if a.step.Observation == nil {
		return fmt.Errorf("step: no transition observed")
	}

	s, err := NewState(a.step.Observation)
	if err != nil {
		return errors.Wrap(err, "step")
	}

	t := Transition{
		State:    s,
		Action:   a.action,
		Reward:   a.nextStep.Reward,
		Terminal: a.nextStep.Terminal(),
	}

	if !t.Terminal {
		next, err := NewState(a.nextStep.Observation)
		if err != nil {
			return errors.Wrap(err, "step")
		}
		t.NextState = next

		if a.config.Variant.onPolicy() {
			// Validate before choosing so that an invalid transition
			// does not insert a row for the next state
			t.NextAction = 0
			if err := a.validate(t); err != nil {
				return errors.Wrap(err, "step")
			}

			t.NextAction, err = a.ChooseAction(next)
			if err != nil {
				return errors.Wrap(err, "step")
			}
			a.cachedState = next
			a.cachedAction = t.NextAction
			a.hasCachedAction = true
		}
	}

	return errors.Wrap(a.Learn(t), "step")
}

// EndEpisode performs cleanup at the end of an episode
func (a *Agent) EndEpisode() {
	a.hasCachedAction = false
}

// SelectAction selects an action in the state of the argument timestep.
// On-policy variants return the action they used as the next action
// in their last update, if t is in the same state.
func (a *Agent) SelectAction(t ts.TimeStep) (*mat.VecDense, error) {
	s, err := NewState(t.Observation)
	if err != nil {
		return nil, errors.Wrap(err, "selectAction")
	}

	var action int
	if a.hasCachedAction && a.cachedState == s {
		action = a.cachedAction
		a.hasCachedAction = false
	} else {
		action, err = a.ChooseAction(s)
		if err != nil {
			return nil, errors.Wrap(err, "selectAction")
		}
	}

	return mat.NewVecDense(1, []float64{float64(action)}), nil
}
