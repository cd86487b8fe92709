package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Table maps States to rows of per-action values. Rows are inserted
// lazily, initialized to zero, the first time a State is seen.
//
// Two Tables can be mirrored, in which case inserting a row in one of
// them also inserts the row in the other. Eligibility traces use this
// to always have a trace for each action value.
type Table struct {
	actions int
	rows    map[State][]float64
	order   []State
	mirror  *Table
}

// NewTable returns a new empty Table with rows of length actions
func NewTable(actions int) *Table {
	if actions < 1 {
		panic(fmt.Sprintf("newTable: actions must be positive, have %d",
			actions))
	}

	return &Table{
		actions: actions,
		rows:    make(map[State][]float64),
	}
}

// Mirror mirrors t and other so that rows inserted in either Table are
// also inserted in the other. Rows already present in only one of the
// Tables are inserted in the other, zero-initialized.
func (t *Table) Mirror(other *Table) {
	if t.actions != other.actions {
		panic(fmt.Sprintf("mirror: cannot mirror tables with %d and %d "+
			"actions", t.actions, other.actions))
	}

	for _, s := range t.order {
		other.insert(s)
	}
	for _, s := range other.order {
		t.insert(s)
	}

	t.mirror = other
	other.mirror = t
}

// insert adds a zero row for s if s has no row
func (t *Table) insert(s State) []float64 {
	if row, ok := t.rows[s]; ok {
		return row
	}

	row := make([]float64, t.actions)
	t.rows[s] = row
	t.order = append(t.order, s)
	return row
}

// Ensure returns the row of s, inserting a zero row first if s has not
// been seen before. The returned slice is the row itself, not a copy.
func (t *Table) Ensure(s State) []float64 {
	row := t.insert(s)
	if t.mirror != nil {
		t.mirror.insert(s)
	}
	return row
}

// Has returns whether s has a row in the Table
func (t *Table) Has(s State) bool {
	_, ok := t.rows[s]
	return ok
}

// Row returns the row of s and whether it exists. No row is inserted.
func (t *Table) Row(s State) ([]float64, bool) {
	row, ok := t.rows[s]
	return row, ok
}

// At returns the value of action a in s. States without a row have
// zero values.
func (t *Table) At(s State, a int) float64 {
	if a < 0 || a >= t.actions {
		panic(fmt.Sprintf("at: action %d out of range [0, %d)", a, t.actions))
	}

	row, ok := t.rows[s]
	if !ok {
		return 0.0
	}
	return row[a]
}

// Len returns the number of rows in the Table
func (t *Table) Len() int {
	return len(t.order)
}

// Actions returns the length of each row of the Table
func (t *Table) Actions() int {
	return t.actions
}

// States returns the States with rows in the Table, in the order in
// which they were inserted
func (t *Table) States() []State {
	states := make([]State, len(t.order))
	copy(states, t.order)
	return states
}

// Scale multiplies every value in the Table by c
func (t *Table) Scale(c float64) {
	for _, row := range t.rows {
		floats.Scale(c, row)
	}
}

// Zero sets every value in the Table to zero. Rows are kept.
func (t *Table) Zero() {
	for _, row := range t.rows {
		for i := range row {
			row[i] = 0
		}
	}
}

// Matrix returns a copy of the Table as a matrix with one row per State,
// in insertion order. Matrix returns nil if the Table is empty.
func (t *Table) Matrix() *mat.Dense {
	if len(t.order) == 0 {
		return nil
	}

	data := make([]float64, 0, len(t.order)*t.actions)
	for _, s := range t.order {
		data = append(data, t.rows[s]...)
	}
	return mat.NewDense(len(t.order), t.actions, data)
}

// Format returns the Table as text, one line per State in insertion
// order and one column per action. Columns are headed by actionNames,
// or by the action indices if there are not enough names.
func (t *Table) Format(actionNames []string) string {
	if len(actionNames) != t.actions {
		actionNames = make([]string, t.actions)
		for i := range actionNames {
			actionNames[i] = strconv.Itoa(i)
		}
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(w, "\t")
	for _, name := range actionNames {
		fmt.Fprintf(w, "%s\t", name)
	}
	fmt.Fprintln(w)

	for _, s := range t.order {
		fmt.Fprintf(w, "%s\t", s)
		for _, value := range t.rows[s] {
			fmt.Fprintf(w, "%.6f\t", value)
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	return b.String()
}

func (t *Table) String() string {
	return t.Format(nil)
}
