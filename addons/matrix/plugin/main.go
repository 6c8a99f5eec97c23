// Command plugin builds the matrix microverse as a Go plugin:
//
//	go build -buildmode=plugin -o matrix.so ./addons/matrix/plugin
package main

import (
	"github.com/zephyrtronium/schwift"
	"github.com/zephyrtronium/schwift/addons/matrix"
)

// SchwiftABICompat is the ABI version the plugin was built for.
var SchwiftABICompat = schwift.ABICompat

// Matrix is bound by programs as matrix.
func Matrix(args []schwift.Value) (schwift.Value, error) {
	return matrix.Matrix(args)
}

func main() {}
