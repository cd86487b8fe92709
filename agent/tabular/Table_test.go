package tabular

import (
	"strings"
	"testing"
)

func TestTableEnsure(t *testing.T) {
	table := NewTable(3)

	row := table.Ensure("[0]")
	if len(row) != 3 {
		t.Fatalf("row length: want 3, have %d", len(row))
	}
	row[1] = 2.5

	again := table.Ensure("[0]")
	if again[1] != 2.5 {
		t.Error("ensure should return the existing row")
	}
	if table.Len() != 1 {
		t.Errorf("rows: want 1, have %d", table.Len())
	}

	if table.Has("[1]") {
		t.Error("table should not have a row for an unseen state")
	}
	if _, ok := table.Row("[1]"); ok {
		t.Error("row should not insert a row")
	}
	if table.At("[1]", 2) != 0 {
		t.Error("unseen states should have zero values")
	}
	if table.Len() != 1 {
		t.Errorf("rows: want 1, have %d", table.Len())
	}
}

func TestTableMirror(t *testing.T) {
	values := NewTable(2)
	values.Ensure("[0]")

	trace := NewTable(2)
	values.Mirror(trace)
	if !trace.Has("[0]") {
		t.Error("mirroring should copy existing rows")
	}

	values.Ensure("[1]")
	trace.Ensure("[2]")
	for _, table := range []*Table{values, trace} {
		if table.Len() != 3 {
			t.Errorf("rows: want 3, have %d", table.Len())
		}
	}

	want := []State{"[0]", "[1]", "[2]"}
	for i, s := range values.States() {
		if s != want[i] {
			t.Errorf("states: want %v, have %v", want, values.States())
		}
	}
}

func TestTableScaleZero(t *testing.T) {
	table := NewTable(2)
	copy(table.Ensure("[0]"), []float64{1, 2})
	copy(table.Ensure("[1]"), []float64{-4, 8})

	table.Scale(0.5)
	if table.At("[0]", 1) != 1 || table.At("[1]", 0) != -2 {
		t.Errorf("scale: have %v", table.Matrix().RawMatrix().Data)
	}

	table.Zero()
	for _, v := range table.Matrix().RawMatrix().Data {
		if v != 0 {
			t.Fatalf("zero: have %v", table.Matrix().RawMatrix().Data)
		}
	}
	if table.Len() != 2 {
		t.Error("zero should keep rows")
	}
}

func TestTableMatrix(t *testing.T) {
	table := NewTable(2)
	if table.Matrix() != nil {
		t.Error("empty table should have a nil matrix")
	}

	copy(table.Ensure("[3]"), []float64{1, 2})
	copy(table.Ensure("[1]"), []float64{3, 4})

	m := table.Matrix()
	r, c := m.Dims()
	if r != 2 || c != 2 {
		t.Fatalf("dims: want (2, 2), have (%d, %d)", r, c)
	}
	if m.At(0, 1) != 2 || m.At(1, 0) != 3 {
		t.Error("matrix rows should be in insertion order")
	}
}

func TestTableFormat(t *testing.T) {
	table := NewTable(2)
	copy(table.Ensure("[0]"), []float64{0.5, 0})

	lines := strings.Split(strings.TrimSpace(table.Format(
		[]string{"left", "right"})), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines: want 2, have %d:\n%v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "left") ||
		!strings.Contains(lines[0], "right") {
		t.Errorf("header should name the actions: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[0]") ||
		!strings.Contains(lines[1], "0.500000") {
		t.Errorf("row should hold the state and its values: %q", lines[1])
	}

	if header := strings.Fields(strings.Split(table.String(), "\n")[0]); len(
		header) != 2 || header[0] != "0" || header[1] != "1" {
		t.Errorf("default header: want [0 1], have %v", header)
	}
}
