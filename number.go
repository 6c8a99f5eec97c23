package schwift

// Arithmetic follows the usual promotion rule: int op int is int, and any
// float operand makes the result a float. Nothing is ever converted to or
// from a string implicitly.

// AsFloat converts an int or float to float64 for comparison.
func AsFloat(v Value) (float64, error) {
	switch x := v.(type) {
	case Float:
		return float64(x), nil
	case Int:
		return float64(x), nil
	}
	return 0, unexpected(TypeFloat, v)
}

// AsInt returns the value of an int.
func AsInt(v Value) (int64, error) {
	if x, ok := v.(Int); ok {
		return int64(x), nil
	}
	return 0, unexpected(TypeInt, v)
}

// numbers converts a pair of numeric operands to floats if either is a float.
// If both are ints, ok is false and the caller should use integer arithmetic.
func numbers(l, r Value) (x, y float64, ok bool) {
	switch a := l.(type) {
	case Float:
		switch b := r.(type) {
		case Float:
			return float64(a), float64(b), true
		case Int:
			return float64(a), float64(b), true
		}
	case Int:
		if b, isFloat := r.(Float); isFloat {
			return float64(a), float64(b), true
		}
	}
	return 0, 0, false
}

func add(l, r Value) (Value, error) {
	if a, ok := l.(Int); ok {
		if b, ok := r.(Int); ok {
			return a + b, nil
		}
	}
	if x, y, ok := numbers(l, r); ok {
		return Float(x + y), nil
	}
	if a, ok := l.(Str); ok {
		if b, ok := r.(Str); ok {
			return a + b, nil
		}
	}
	return nil, badBinary(Add, l, r)
}

func subtract(l, r Value) (Value, error) {
	if a, ok := l.(Int); ok {
		if b, ok := r.(Int); ok {
			return a - b, nil
		}
	}
	if x, y, ok := numbers(l, r); ok {
		return Float(x - y), nil
	}
	return nil, badBinary(Subtract, l, r)
}

func multiply(l, r Value) (Value, error) {
	if a, ok := l.(Int); ok {
		if b, ok := r.(Int); ok {
			return a * b, nil
		}
	}
	if x, y, ok := numbers(l, r); ok {
		return Float(x * y), nil
	}
	if s, ok := l.(Str); ok {
		if n, ok := r.(Int); ok {
			return s.Repeat(int64(n))
		}
	}
	return nil, badBinary(Multiply, l, r)
}

// divide performs division. Integer division truncates toward zero.
func divide(l, r Value) (Value, error) {
	if a, ok := l.(Int); ok {
		if b, ok := r.(Int); ok {
			if b == 0 {
				return nil, &Error{Kind: DivisionByZero}
			}
			return a / b, nil
		}
	}
	if x, y, ok := numbers(l, r); ok {
		return Float(x / y), nil
	}
	return nil, badBinary(Divide, l, r)
}

// modulus is defined only on ints. The result has the sign of the dividend.
func modulus(l, r Value) (Value, error) {
	a, err := AsInt(l)
	if err != nil {
		return nil, err
	}
	b, err := AsInt(r)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, &Error{Kind: DivisionByZero}
	}
	return Int(a % b), nil
}

func shiftLeft(l, r Value) (Value, error) {
	a, aok := l.(Int)
	b, bok := r.(Int)
	if !aok || !bok || b < 0 {
		return nil, badBinary(ShiftLeft, l, r)
	}
	return a << uint64(b), nil
}

func shiftRight(l, r Value) (Value, error) {
	a, aok := l.(Int)
	b, bok := r.(Int)
	if !aok || !bok || b < 0 {
		return nil, badBinary(ShiftRight, l, r)
	}
	return a >> uint64(b), nil
}

// compare evaluates an ordering comparison. Two ints compare exactly; any
// other pair of numbers compares as floats.
func compare(l, r Value, ints func(a, b Int) bool, floats func(x, y float64) bool) (Value, error) {
	if a, ok := l.(Int); ok {
		if b, ok := r.(Int); ok {
			return Bool(ints(a, b)), nil
		}
	}
	x, err := AsFloat(l)
	if err != nil {
		return nil, err
	}
	y, err := AsFloat(r)
	if err != nil {
		return nil, err
	}
	return Bool(floats(x, y)), nil
}

func lessThan(l, r Value) (Value, error) {
	return compare(l, r, func(a, b Int) bool { return a < b }, func(x, y float64) bool { return x < y })
}

func greaterThan(l, r Value) (Value, error) {
	return compare(l, r, func(a, b Int) bool { return a > b }, func(x, y float64) bool { return x > y })
}

func lessThanEqual(l, r Value) (Value, error) {
	return compare(l, r, func(a, b Int) bool { return a <= b }, func(x, y float64) bool { return x <= y })
}

func greaterThanEqual(l, r Value) (Value, error) {
	return compare(l, r, func(a, b Int) bool { return a >= b }, func(x, y float64) bool { return x >= y })
}
