package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	p := NewManualProgressBar(&buf, 10, 4)

	p.Increment()
	p.Increment()
	if err := p.Display(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "50.00%") {
		t.Errorf("display should show 50%% progress, have %q", out)
	}
	if n := strings.Count(out, "█"); n != 5 {
		t.Errorf("filled cells: want 5, have %d", n)
	}
}

func TestIncrementSaturates(t *testing.T) {
	var buf bytes.Buffer
	p := NewManualProgressBar(&buf, 10, 2)

	for i := 0; i < 5; i++ {
		p.Increment()
	}
	if p.Progress() != 1 {
		t.Errorf("progress: want 1, have %v", p.Progress())
	}
}
