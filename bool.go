package schwift

// AsBool returns the value of a bool.
func AsBool(v Value) (bool, error) {
	if b, ok := v.(Bool); ok {
		return bool(b), nil
	}
	return false, unexpected(TypeBool, v)
}

// and requires both operands to be bools. Both have already been evaluated.
func and(l, r Value) (Value, error) {
	a, err := AsBool(l)
	if err != nil {
		return nil, err
	}
	b, err := AsBool(r)
	if err != nil {
		return nil, err
	}
	return Bool(a && b), nil
}

func or(l, r Value) (Value, error) {
	a, err := AsBool(l)
	if err != nil {
		return nil, err
	}
	b, err := AsBool(r)
	if err != nil {
		return nil, err
	}
	return Bool(a || b), nil
}

// Not negates a bool.
func Not(v Value) (Value, error) {
	b, err := AsBool(v)
	if err != nil {
		return nil, err
	}
	return Bool(!b), nil
}
