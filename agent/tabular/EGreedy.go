package tabular

import (
	"github.com/samuelfneumann/tabular/utils/floatutils"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over rows of action values.
// With probability ε an action with the maximum value is chosen, ties
// broken uniformly at random. Otherwise, an action is chosen uniformly
// at random from all actions.
type EGreedy struct {
	epsilon float64
	greedy  distuv.Bernoulli
	rng     *rand.Rand
}

// NewEGreedy returns a new EGreedy policy which acts greedily with
// probability e
func NewEGreedy(e float64, src rand.Source) *EGreedy {
	return &EGreedy{
		epsilon: e,
		greedy:  distuv.Bernoulli{P: e, Src: src},
		rng:     rand.New(src),
	}
}

// Epsilon returns the probability of acting greedily
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Choose selects an action given the action values of a state
func (p *EGreedy) Choose(row []float64) int {
	if p.greedy.Rand() == 1.0 {
		_, maxIndices := floatutils.MaxSlice(row)
		return maxIndices[p.rng.Intn(len(maxIndices))]
	}
	return p.rng.Intn(len(row))
}
