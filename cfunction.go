package schwift

import (
	"reflect"
	"runtime"
)

// A NativeFunc is a compiled function callable from schwift. The arguments
// are copies owned by the callee. A NativeFunc must return a value or an
// error; returning neither is a DylibReturnedNil error.
type NativeFunc func(args []Value) (Value, error)

// A NativeFunction is a schwift value wrapping a compiled function.
type NativeFunction struct {
	Fn NativeFunc
	// Name is the name the function was bound under.
	Name string
	// Symbol is the name of the Go function, for debugging.
	Symbol string
}

// NewNativeFunction creates a NativeFunction wrapping f to be bound as name.
func NewNativeFunction(name string, f NativeFunc) *NativeFunction {
	n := &NativeFunction{Fn: f, Name: name}
	if f != nil {
		u := reflect.ValueOf(f).Pointer()
		if fn := runtime.FuncForPC(u); fn != nil {
			n.Symbol = fn.Name()
		}
	}
	return n
}

// Type returns TypeNativeFunction.
func (*NativeFunction) Type() Type {
	return TypeNativeFunction
}

// String returns the display form of native functions, which does not
// identify the function.
func (*NativeFunction) String() string {
	return "[Native Function]"
}

// Activate calls the wrapped function.
func (n *NativeFunction) Activate(args []Value) (Value, error) {
	v, err := n.Fn(args)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, &Error{Kind: DylibReturnedNil, Name: n.Name}
	}
	return v, nil
}

// CheckArgs returns an InvalidArguments error if a native function named
// name was given other than n arguments.
func CheckArgs(name string, args []Value, n int) error {
	if len(args) != n {
		return &Error{Kind: InvalidArguments, Name: name, Args: len(args), Params: n}
	}
	return nil
}
