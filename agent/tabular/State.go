package tabular

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// State identifies an observation in a Table. Two observation vectors
// with the same elements always map to the same State.
type State string

// NewState returns the State of an observation vector, such as "[2 1]"
// for the vector (2, 1).
func NewState(obs mat.Vector) (State, error) {
	if v, ok := obs.(*mat.VecDense); obs == nil || (ok && v == nil) {
		return "", errors.Wrap(ErrInvalidArgument, "newState: nil observation")
	}
	if obs.Len() == 0 {
		return "", errors.Wrap(ErrInvalidArgument, "newState: empty "+
			"observation")
	}

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < obs.Len(); i++ {
		value := obs.AtVec(i)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return "", errors.Wrapf(ErrInvalidArgument, "newState: "+
				"non-finite observation element %v", value)
		}
		if value == 0 {
			value = 0 // -0 and 0 share a State
		}

		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
	}
	b.WriteByte(']')

	return State(b.String()), nil
}
