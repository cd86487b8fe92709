package tabular

import "gonum.org/v1/gonum/floats"

// sarsaLambdaLearner implements Sarsa(λ) with eligibility traces. Each
// update changes the values of all state-action pairs in proportion to
// their traces:
//
//	δ = r + γ Q[s'][a'] - Q[s][a]
//	Q += α δ E
//	E *= γ λ
//
// The trace Table mirrors the value Table, so every State with action
// values also has traces.
type sarsaLambdaLearner struct {
	learningRate float64
	discount     float64
	lambda       float64
	kind         TraceKind
	trace        *Table
}

func newSarsaLambdaLearner(values *Table, c Config) *sarsaLambdaLearner {
	trace := NewTable(values.Actions())
	values.Mirror(trace)

	return &sarsaLambdaLearner{
		learningRate: c.LearningRate,
		discount:     c.Discount,
		lambda:       c.Lambda,
		kind:         c.Trace,
		trace:        trace,
	}
}

func (s *sarsaLambdaLearner) learn(values *Table, t Transition) {
	predicted := values.Ensure(t.State)[t.Action]

	target := t.Reward
	if !t.Terminal {
		target += s.discount * values.Ensure(t.NextState)[t.NextAction]
	}
	tdError := target - predicted

	e := s.trace.Ensure(t.State)
	if s.kind == Accumulating {
		e[t.Action]++
	} else {
		for i := range e {
			e[i] = 0
		}
		e[t.Action] = 1
	}

	scale := s.learningRate * tdError
	for _, state := range values.order {
		row, _ := s.trace.Row(state)
		floats.AddScaled(values.rows[state], scale, row)
	}

	s.trace.Scale(s.discount * s.lambda)
}

// startEpisode zeroes all traces
func (s *sarsaLambdaLearner) startEpisode() {
	s.trace.Zero()
}
