package timestep

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestTerminal(t *testing.T) {
	obs := mat.NewVecDense(1, []float64{3})

	step := New(Mid, 0, obs, 3)
	if step.Terminal() {
		t.Error("mid timestep should not be terminal")
	}

	step.StepType = Last
	if step.Terminal() {
		t.Error("last timestep without an end type should be a cutoff")
	}

	step.SetEnd(TerminalStateReached)
	if !step.Terminal() {
		t.Error("timestep should be terminal after SetEnd")
	}
	if step.EndType() != TerminalStateReached {
		t.Errorf("end type: want %v, have %v", TerminalStateReached,
			step.EndType())
	}
}

func TestStepTypeString(t *testing.T) {
	for st, want := range map[StepType]string{
		First: "First",
		Mid:   "Mid",
		Last:  "Last",
	} {
		if st.String() != want {
			t.Errorf("string: want %v, have %v", want, st.String())
		}
	}
}
