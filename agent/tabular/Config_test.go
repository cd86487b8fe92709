package tabular

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/samuelfneumann/tabular/environment/maze"
)

func TestConfigValidate(t *testing.T) {
	for _, v := range []Variant{QLearning, Sarsa, SarsaLambda} {
		if err := NewConfig(v).Validate(); err != nil {
			t.Errorf("default %v config should be valid: %v", v, err)
		}
	}

	invalid := []func(*Config){
		func(c *Config) { c.Variant = "ExpectedSarsa" },
		func(c *Config) { c.Epsilon = -0.1 },
		func(c *Config) { c.Epsilon = 1.1 },
		func(c *Config) { c.LearningRate = 0 },
		func(c *Config) { c.LearningRate = 1.5 },
		func(c *Config) { c.Discount = 1.01 },
		func(c *Config) { c.Lambda = -1 },
		func(c *Config) { c.Trace = "Dutch" },
	}
	for i, modify := range invalid {
		c := NewConfig(SarsaLambda)
		modify(&c)
		if err := c.Validate(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("config %d (%+v): want ErrInvalidArgument, have %v", i,
				c, err)
		}
		if _, err := New(2, c, 1); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("config %d: New should fail with ErrInvalidArgument, "+
				"have %v", i, err)
		}
	}

	// λ and trace are only used by Sarsa(λ)
	c := NewConfig(Sarsa)
	c.Lambda = 2
	c.Trace = ""
	if err := c.Validate(); err != nil {
		t.Errorf("sarsa config should ignore lambda and trace: %v", err)
	}
}

func TestNewInvalidActions(t *testing.T) {
	if _, err := New(0, NewConfig(QLearning), 1); !errors.Is(err,
		ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, have %v", err)
	}
}

func TestConfigJSON(t *testing.T) {
	data := []byte(`{"Variant": "SarsaLambda", "Epsilon": 0.8,
		"LearningRate": 0.05, "Discount": 0.95, "Lambda": 0.5,
		"Trace": "Accumulating"}`)

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatal(err)
	}
	if c.Variant != SarsaLambda || c.Trace != Accumulating || c.Lambda != 0.5 {
		t.Errorf("config: have %+v", c)
	}
}

func TestCreateAgent(t *testing.T) {
	s := maze.DefaultStart
	task, err := maze.NewSolve(startAt(s.X, s.Y), maze.DefaultRows,
		maze.DefaultCols, maze.DefaultGoal, maze.DefaultHells, 0)
	if err != nil {
		t.Fatal(err)
	}
	m, _, err := maze.New(task)
	if err != nil {
		t.Fatal(err)
	}

	a, err := NewConfig(Sarsa).CreateAgent(m, 1)
	if err != nil {
		t.Fatal(err)
	}
	tab, ok := a.(*Agent)
	if !ok {
		t.Fatalf("agent: want *Agent, have %T", a)
	}
	if tab.Actions() != maze.Actions {
		t.Errorf("actions: want %d, have %d", maze.Actions, tab.Actions())
	}
}
