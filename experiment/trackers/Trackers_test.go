package trackers

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	ts "github.com/samuelfneumann/tabular/timestep"
	"gonum.org/v1/gonum/mat"
)

// episode returns the timesteps of an episode with the argument
// rewards, the first of which is the reward of the first timestep
func episode(rewards ...float64) []ts.TimeStep {
	steps := make([]ts.TimeStep, len(rewards))
	obs := mat.NewVecDense(1, nil)
	for i, r := range rewards {
		stepType := ts.Mid
		switch i {
		case 0:
			stepType = ts.First
		case len(rewards) - 1:
			stepType = ts.Last
		}
		steps[i] = ts.New(stepType, r, obs, i)
	}
	return steps
}

func track(t Tracker, episodes ...[]ts.TimeStep) {
	for _, ep := range episodes {
		for _, step := range ep {
			t.Track(step)
		}
	}
}

func TestReturn(t *testing.T) {
	r := NewReturn(filepath.Join(t.TempDir(), "returns.bin"))
	track(r, episode(0, 0, 1), episode(0, -1), episode(0, 0, 0, 0))

	data := r.Data()
	want := []float64{1, -1, 0}
	if len(data) != len(want) {
		t.Fatalf("returns: want %v, have %v", want, data)
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("returns: want %v, have %v", want, data)
		}
	}

	if err := r.Save(); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadData(r.filename)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != len(want) || loaded[0] != 1 {
		t.Errorf("loaded: want %v, have %v", want, loaded)
	}
}

func TestReturnNonSequential(t *testing.T) {
	r := NewReturn("")
	steps := episode(0, 0, 0)

	defer func() {
		if recover() == nil {
			t.Error("tracking non-sequential timesteps should panic")
		}
	}()
	r.Track(steps[0])
	r.Track(steps[2])
}

func TestEpisodeLength(t *testing.T) {
	e := NewEpisodeLength(filepath.Join(t.TempDir(), "lengths.bin"))
	track(e, episode(0, 0, 1), episode(0, 0, 0, 0, 0))

	data := e.Data()
	if len(data) != 2 || data[0] != 2 || data[1] != 4 {
		t.Errorf("lengths: want [2 4], have %v", data)
	}
	if m := Mean(e, 0); m != 3 {
		t.Errorf("mean: want 3, have %v", m)
	}
	if m := Mean(e, 1); m != 4 {
		t.Errorf("mean of last episode: want 4, have %v", m)
	}

	if err := e.Save(); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadData(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestPlot(t *testing.T) {
	r := NewReturn("")
	e := NewEpisodeLength("")
	for _, ep := range [][]ts.TimeStep{episode(0, 1), episode(0, 0, -1)} {
		track(r, ep)
		track(e, ep)
	}

	var buf bytes.Buffer
	if err := Plot(&buf, "treasure", r, e); err != nil {
		t.Fatal(err)
	}

	html := buf.String()
	if !strings.Contains(html, "<html") {
		t.Error("plot should render an html page")
	}
	if !strings.Contains(html, "episode length") {
		t.Error("plot should name each series")
	}

	if err := Plot(&buf, "empty"); err == nil {
		t.Error("plotting without trackers should fail")
	}
}
