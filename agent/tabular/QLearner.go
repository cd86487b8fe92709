package tabular

import "gonum.org/v1/gonum/floats"

// qLearner implements the Q-Learning update:
//
//	Q[s][a] += α (r + γ max_a' Q[s'][a'] - Q[s][a])
type qLearner struct {
	learningRate float64
	discount     float64
}

func (q *qLearner) learn(values *Table, t Transition) {
	row := values.Ensure(t.State)
	predicted := row[t.Action]

	target := t.Reward
	if !t.Terminal {
		target += q.discount * floats.Max(values.Ensure(t.NextState))
	}

	row[t.Action] += q.learningRate * (target - predicted)
}

func (q *qLearner) startEpisode() {}
