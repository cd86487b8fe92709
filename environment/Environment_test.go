package environment

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/tabular/timestep"
	"gonum.org/v1/gonum/mat"
)

func TestNumActions(t *testing.T) {
	n, err := NumActions(NewDiscreteActions(4))
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("actions: want 4, have %d", n)
	}

	bound := mat.NewVecDense(1, []float64{1})
	continuous := NewSpec(mat.NewVecDense(1, nil), Action, bound, bound,
		Continuous)
	if _, err := NumActions(continuous); err == nil {
		t.Error("continuous actions should not be enumerable")
	}
}

func TestValidateAction(t *testing.T) {
	s := NewDiscreteActions(2)

	a, err := ValidateAction(s, mat.NewVecDense(1, []float64{1}))
	if err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Errorf("action: want 1, have %d", a)
	}

	for _, action := range []mat.Vector{
		nil,
		mat.NewVecDense(1, []float64{2}),
		mat.NewVecDense(1, []float64{-1}),
		mat.NewVecDense(1, []float64{0.5}),
		mat.NewVecDense(2, []float64{0, 1}),
	} {
		if _, err := ValidateAction(s, action); !errors.Is(err,
			ErrInvalidAction) {
			t.Errorf("action %v: want ErrInvalidAction, have %v", action, err)
		}
	}
}

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)

	step := timestep.New(timestep.Mid, 0, mat.NewVecDense(1, nil), 2)
	if limit.End(&step) {
		t.Error("step 2 should not end an episode with limit 3")
	}

	step.Number = 3
	if !limit.End(&step) || !step.Last() {
		t.Error("step 3 should end an episode with limit 3")
	}
	if step.EndType() != timestep.Cutoff {
		t.Errorf("end type: want %v, have %v", timestep.Cutoff,
			step.EndType())
	}

	step = timestep.New(timestep.Mid, 0, mat.NewVecDense(1, nil), 1000)
	if NewStepLimit(0).End(&step) {
		t.Error("non-positive step limit should never end an episode")
	}
}

func TestSingleStarter(t *testing.T) {
	state := []float64{1, 2}
	s := NewSingleStarter(state...)
	state[0] = 5

	start := s.Start()
	if start.AtVec(0) != 1 || start.AtVec(1) != 2 {
		t.Errorf("start: want [1 2], have %v", start.RawVector().Data)
	}

	start.SetVec(0, 10)
	if s.Start().AtVec(0) != 1 {
		t.Error("modifying a start state should not change the starter")
	}
}
