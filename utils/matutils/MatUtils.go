// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing. A nil matrix is formatted as
// an empty matrix.
func Format(X mat.Matrix) string {
	if X == nil {
		return "[]"
	}
	if d, ok := X.(*mat.Dense); ok && d == nil {
		return "[]"
	}

	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}
