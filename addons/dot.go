// Package addons provides easier access to common schwift types and
// constants for microverse authors.
//
// This package is intended to be imported using the "import ." construct. It
// uses type aliases and copies some constants to make microverses much less
// verbose.
//
// This is the place where evil dwells.
package addons

import "github.com/zephyrtronium/schwift"

type (
	Value      = schwift.Value
	Int        = schwift.Int
	Float      = schwift.Float
	Bool       = schwift.Bool
	Str        = schwift.Str
	List       = schwift.List
	NativeFunc = schwift.NativeFunc
	Error      = schwift.Error
	Type       = schwift.Type
)

const (
	ABICompat = schwift.ABICompat

	TypeStr   = schwift.TypeStr
	TypeInt   = schwift.TypeInt
	TypeFloat = schwift.TypeFloat
	TypeBool  = schwift.TypeBool
	TypeList  = schwift.TypeList

	UnexpectedType   = schwift.UnexpectedType
	InvalidArguments = schwift.InvalidArguments
)
