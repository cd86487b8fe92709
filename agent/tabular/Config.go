package tabular

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/tabular/agent"
	"github.com/samuelfneumann/tabular/environment"
)

// Variant is the update rule a tabular agent learns with
type Variant string

const (
	QLearning   Variant = "QLearning"
	Sarsa       Variant = "Sarsa"
	SarsaLambda Variant = "SarsaLambda"
)

// onPolicy returns whether the update target uses the next action
func (v Variant) onPolicy() bool {
	return v == Sarsa || v == SarsaLambda
}

// TraceKind determines how the eligibility trace of a visited
// state-action pair is updated by Sarsa(λ)
type TraceKind string

const (
	// Accumulating traces add 1 to the trace of the visited pair
	Accumulating TraceKind = "Accumulating"

	// Replacing traces zero the traces of all actions in the visited
	// state and set the trace of the visited pair to 1
	Replacing TraceKind = "Replacing"
)

// Default hyperparameters
const (
	DefaultEpsilon      float64 = 0.9
	DefaultLearningRate float64 = 0.01
	DefaultDiscount     float64 = 0.9
	DefaultLambda       float64 = 0.9
)

// Config represents a configuration for a tabular agent.
//
// Epsilon is the probability of acting greedily, any other action is
// chosen uniformly at random. Lambda and Trace are used by the
// SarsaLambda variant only.
type Config struct {
	Variant
	Epsilon      float64
	LearningRate float64
	Discount     float64
	Lambda       float64
	Trace        TraceKind
}

// NewConfig returns a Config of the argument variant with default
// hyperparameters and replacing traces
func NewConfig(v Variant) Config {
	return Config{
		Variant:      v,
		Epsilon:      DefaultEpsilon,
		LearningRate: DefaultLearningRate,
		Discount:     DefaultDiscount,
		Lambda:       DefaultLambda,
		Trace:        Replacing,
	}
}

// Validate returns an error wrapping ErrInvalidArgument if the Config
// is not valid
func (c Config) Validate() error {
	switch c.Variant {
	case QLearning, Sarsa, SarsaLambda:
	default:
		return errors.Wrapf(ErrInvalidArgument, "validate: no such "+
			"variant %q", c.Variant)
	}

	if c.Epsilon < 0 || c.Epsilon > 1 {
		return errors.Wrapf(ErrInvalidArgument, "validate: epsilon must "+
			"be in [0, 1], have %v", c.Epsilon)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return errors.Wrapf(ErrInvalidArgument, "validate: learning rate "+
			"must be in (0, 1], have %v", c.LearningRate)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return errors.Wrapf(ErrInvalidArgument, "validate: discount must "+
			"be in [0, 1], have %v", c.Discount)
	}

	if c.Variant == SarsaLambda {
		if c.Lambda < 0 || c.Lambda > 1 {
			return errors.Wrapf(ErrInvalidArgument, "validate: lambda "+
				"must be in [0, 1], have %v", c.Lambda)
		}
		if c.Trace != Accumulating && c.Trace != Replacing {
			return errors.Wrapf(ErrInvalidArgument, "validate: no such "+
				"trace %q", c.Trace)
		}
	}
	return nil
}

// CreateAgent creates the agent from the Config. Action values are
// always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	a, err := NewFromEnv(env, c, seed)
	if err != nil {
		return nil, err
	}
	return a, nil
}
