package schwift

import (
	"math"
	"strconv"
	"strings"
)

// Type is a set of value types. Every value has exactly one type; sets of
// several types appear in errors describing what an operation would accept.
type Type uint

// Value types.
const (
	TypeStr Type = 1 << iota
	TypeInt
	TypeFloat
	TypeBool
	TypeList
	TypeFunction
	TypeNativeFunction
)

var typeNames = [...]string{"string", "int", "float", "bool", "list", "function", "native function"}

func (t Type) String() string {
	if t == 0 {
		return "nothing"
	}
	var names []string
	for i, name := range typeNames {
		if t&(1<<uint(i)) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, " or ")
}

// A Value is a schwift runtime value. The concrete types are Int, Float,
// Bool, Str, List, *Function, and *NativeFunction.
type Value interface {
	// Type returns the value's type.
	Type() Type
	// String returns the value's display form, the text printed by show me
	// what you got.
	String() string
}

// Int is a 64-bit signed integer.
type Int int64

// Float is a 64-bit floating-point number.
type Float float64

// Bool is a boolean, spelled rick or morty.
type Bool bool

// Str is a string of Unicode text.
type Str string

// List is an ordered sequence of values. Lists have value semantics: storing
// a list anywhere stores a copy.
type List []Value

// Function is a user-defined function. Functions capture nothing. A call runs
// the body in a new State holding only the parameters.
type Function struct {
	Params []string
	Body   []Statement
}

func (Int) Type() Type       { return TypeInt }
func (Float) Type() Type     { return TypeFloat }
func (Bool) Type() Type      { return TypeBool }
func (Str) Type() Type       { return TypeStr }
func (List) Type() Type      { return TypeList }
func (*Function) Type() Type { return TypeFunction }

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (f Float) String() string {
	switch {
	case math.IsInf(float64(f), 1):
		return "inf"
	case math.IsInf(float64(f), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

func (b Bool) String() string {
	if b {
		return "rick"
	}
	return "morty"
}

func (s Str) String() string {
	return string(s)
}

// String formats the list with its string elements quoted.
func (l List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		if s, ok := v.(Str); ok {
			b.WriteByte('"')
			b.WriteString(string(s))
			b.WriteByte('"')
		} else {
			b.WriteString(v.String())
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (f *Function) String() string {
	return "[Function [" + strings.Join(f.Params, ", ") + "]]"
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	if l == nil {
		return List{}
	}
	c := make(List, len(l))
	for i, v := range l {
		c[i] = Clone(v)
	}
	return c
}

// TypeOf returns the type of v, or 0 if v is nil.
func TypeOf(v Value) Type {
	if v == nil {
		return 0
	}
	return v.Type()
}

// Clone returns a copy of v which shares no mutable storage with it. Only
// lists are mutable, so other values are returned as they are.
func Clone(v Value) Value {
	if l, ok := v.(List); ok {
		return l.Clone()
	}
	return v
}

// epsilon is the difference between 1 and the next larger float64.
var epsilon = math.Nextafter(1, 2) - 1

// Equal reports whether two values are equal. Values of different types are
// never equal, except that ints and floats compare numerically within
// epsilon. Floats also compare within epsilon of each other. Functions are
// never equal to anything.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return x == y
		case Float:
			return math.Abs(float64(x)-float64(y)) < epsilon
		}
	case Float:
		switch y := b.(type) {
		case Int:
			return math.Abs(float64(x)-float64(y)) < epsilon
		case Float:
			return math.Abs(float64(x)-float64(y)) < epsilon
		}
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return false
}
