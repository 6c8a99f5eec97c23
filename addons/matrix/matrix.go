// Package matrix provides the matrix microverse. Importing it registers the
// microverse statically; the plugin subdirectory builds the same functions as
// a Go plugin.
package matrix

import (
	"fmt"

	"github.com/zephyrtronium/schwift"

	. "github.com/zephyrtronium/schwift/addons"
)

func init() {
	schwift.RegisterModule(schwift.NewModule("matrix", map[string]NativeFunc{
		"matrix": Matrix,
	}))
}

// Matrix is a matrix function.
//
// matrix(x, y) returns a list of x rows, each a list of y zeros.
func Matrix(args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, &Error{Kind: InvalidArguments, Name: "matrix", Args: len(args), Params: 2}
	}
	x, ok := args[0].(Int)
	if !ok {
		return nil, &Error{Kind: UnexpectedType, Expected: TypeInt, Actual: schwift.TypeOf(args[0])}
	}
	y, ok := args[1].(Int)
	if !ok {
		return nil, &Error{Kind: UnexpectedType, Expected: TypeInt, Actual: schwift.TypeOf(args[1])}
	}
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("matrix dimensions must not be negative, got %d by %d", x, y)
	}
	mat := make(List, x)
	for i := range mat {
		row := make(List, y)
		for j := range row {
			row[j] = Int(0)
		}
		mat[i] = row
	}
	return mat, nil
}
