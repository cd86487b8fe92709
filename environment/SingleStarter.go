package environment

import "gonum.org/v1/gonum/mat"

// SingleStarter always starts episodes in the same state
type SingleStarter struct {
	state []float64
}

// NewSingleStarter returns a new SingleStarter which starts each episode
// in the argument state
func NewSingleStarter(state ...float64) SingleStarter {
	s := make([]float64, len(state))
	copy(s, state)
	return SingleStarter{s}
}

// Start returns a starting state vector
func (s SingleStarter) Start() *mat.VecDense {
	start := make([]float64, len(s.state))
	copy(start, s.state)
	return mat.NewVecDense(len(start), start)
}
