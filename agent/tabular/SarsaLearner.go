package tabular

// sarsaLearner implements the Sarsa update:
//
//	Q[s][a] += α (r + γ Q[s'][a'] - Q[s][a])
type sarsaLearner struct {
	learningRate float64
	discount     float64
}

func (s *sarsaLearner) learn(values *Table, t Transition) {
	row := values.Ensure(t.State)
	predicted := row[t.Action]

	target := t.Reward
	if !t.Terminal {
		target += s.discount * values.Ensure(t.NextState)[t.NextAction]
	}

	row[t.Action] += s.learningRate * (target - predicted)
}

func (s *sarsaLearner) startEpisode() {}
