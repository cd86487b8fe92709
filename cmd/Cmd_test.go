package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/tabular/agent/tabular"
	"github.com/samuelfneumann/tabular/experiment"
	"github.com/samuelfneumann/tabular/experiment/trackers"
	"github.com/spf13/cobra"
)

// run executes the root command with args and returns its output
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := RootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()
	return out.String(), err
}

func TestTreasure(t *testing.T) {
	lengths := filepath.Join(t.TempDir(), "lengths.bin")
	out, err := run(t, "treasure", "--episodes", "3", "--seed", "4",
		"--log-level", "error", "--lengths", lengths)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "Q-table:") {
		t.Errorf("output should contain the Q-table, have %q", out)
	}
	if !strings.Contains(out, "right") {
		t.Errorf("Q-table should name the actions, have %q", out)
	}

	data, err := trackers.LoadData(lengths)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 3 {
		t.Errorf("episode lengths: want 3, have %d", len(data))
	}
}

func TestTreasureRender(t *testing.T) {
	out, err := run(t, "treasure", "--episodes", "2", "--states", "4",
		"--render", "--no-color", "--fresh", "0s", "--sleep", "0s",
		"--log-level", "error")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "\ro--T") {
		t.Errorf("first frame should show the explorer at the start, "+
			"have %q", out)
	}
	if !strings.Contains(out, "Episode 2: total steps = ") {
		t.Errorf("output should report every episode, have %q", out)
	}
}

func TestMaze(t *testing.T) {
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "maze.png")
	plot := filepath.Join(dir, "curves.html")

	out, err := run(t, "maze", "--algorithm", "sarsalambda", "--trace",
		"accumulating", "--episodes", "5", "--log-level", "error",
		"--snapshot", snapshot, "--plot", plot)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "game over") {
		t.Errorf("output should end the game, have %q", out)
	}
	for _, action := range []string{"up", "down", "right", "left"} {
		if !strings.Contains(out, action) {
			t.Errorf("Q-table should name action %q", action)
		}
	}

	for _, path := range []string{snapshot, plot} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%v should be written: %v", path, err)
		}
	}
}

func TestInvalidFlags(t *testing.T) {
	tests := [][]string{
		{"maze", "--algorithm", "TD"},
		{"maze", "--trace", "dutch", "--algorithm", "SarsaLambda"},
		{"treasure", "--epsilon", "1.5"},
		{"treasure", "--states", "1"},
		{"treasure", "--log-format", "xml"},
		{"maze", "--config", "missing.json"},
	}

	for _, args := range tests {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"Episodes": 1000, "AgentConf": {"Variant": "Sarsa",
		"Epsilon": 0.9, "LearningRate": 0.1, "Discount": 0.9},
		"Log": {"level": "error"}}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	defaults := experiment.DefaultTreasureConfig()
	g := &globalFlags{configPath: path}
	f := &runFlags{}
	cmd := &cobra.Command{Use: "treasure"}
	f.register(cmd, defaults, 0, 0)
	if err := cmd.ParseFlags([]string{"--episodes", "2"}); err != nil {
		t.Fatal(err)
	}

	c, err := config(cmd, g, f, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if c.Episodes != 2 {
		t.Errorf("flags should override the config file: want 2 "+
			"episodes, have %d", c.Episodes)
	}
	if c.AgentConf.Variant != tabular.Sarsa {
		t.Errorf("config file should override defaults: want Sarsa, "+
			"have %v", c.AgentConf.Variant)
	}
	if c.Seed != defaults.Seed || c.EnvConf.States != defaults.EnvConf.States {
		t.Errorf("unset values should keep their defaults, have %+v", c)
	}
	if c.Log.Level != "error" {
		t.Errorf("log level: want error, have %v", c.Log.Level)
	}
}

func TestParseVariant(t *testing.T) {
	for name, want := range map[string]tabular.Variant{
		"qlearning":   tabular.QLearning,
		"Sarsa":       tabular.Sarsa,
		"SARSALAMBDA": tabular.SarsaLambda,
	} {
		v, err := parseVariant(name)
		if err != nil || v != want {
			t.Errorf("parseVariant(%q): want %v, have %v (%v)", name, want,
				v, err)
		}
	}

	if _, err := parseVariant("expectedsarsa"); !errors.Is(err,
		tabular.ErrInvalidArgument) {
		t.Errorf("unknown algorithm should be an invalid argument, have %v",
			err)
	}
}
