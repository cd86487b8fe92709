package floatutils

import (
	"testing"
)

func TestMaxSlice(t *testing.T) {
	tests := []struct {
		values  []float64
		max     float64
		indices []int
	}{
		{[]float64{0, 0, 0}, 0, []int{0, 1, 2}},
		{[]float64{1, 3, 2}, 3, []int{1}},
		{[]float64{-1, 2, 2, -5}, 2, []int{1, 2}},
		{[]float64{4}, 4, []int{0}},
	}

	for _, test := range tests {
		max, indices := MaxSlice(test.values)
		if max != test.max {
			t.Errorf("max of %v: want %v, have %v", test.values, test.max, max)
		}
		if len(indices) != len(test.indices) {
			t.Errorf("indices of %v: want %v, have %v", test.values,
				test.indices, indices)
			continue
		}
		for i := range indices {
			if indices[i] != test.indices[i] {
				t.Errorf("indices of %v: want %v, have %v", test.values,
					test.indices, indices)
			}
		}
	}
}

func TestClip(t *testing.T) {
	if v := Clip(2, 0, 1); v != 1 {
		t.Errorf("clip: want 1, have %v", v)
	}
	if v := Clip(-2, 0, 1); v != 0 {
		t.Errorf("clip: want 0, have %v", v)
	}
	if v := Clip(0.5, 0, 1); v != 0.5 {
		t.Errorf("clip: want 0.5, have %v", v)
	}
}
