package schwift

// bounds checks that i is a valid index into a sequence of length n.
func bounds(i int64, n int) error {
	if i < 0 || i >= int64(n) {
		return &Error{Kind: IndexOutOfBounds, Len: n, Index: i}
	}
	return nil
}

// At returns the element at index i.
func (l List) At(i int64) (Value, error) {
	if err := bounds(i, len(l)); err != nil {
		return nil, err
	}
	return l[i], nil
}

// Set replaces the element at index i with a copy of v.
func (l List) Set(i int64, v Value) error {
	if err := bounds(i, len(l)); err != nil {
		return err
	}
	l[i] = Clone(v)
	return nil
}

// Remove returns the list without the element at index i. The receiver's
// storage is reused.
func (l List) Remove(i int64) (List, error) {
	if err := bounds(i, len(l)); err != nil {
		return l, err
	}
	copy(l[i:], l[i+1:])
	l[len(l)-1] = nil
	return l[:len(l)-1], nil
}

// Len returns the length of a string, in Unicode scalar values, or of a list.
func Len(v Value) (int, error) {
	switch x := v.(type) {
	case Str:
		return x.Len(), nil
	case List:
		return len(x), nil
	}
	return 0, unexpected(TypeStr|TypeList, v)
}

// IsEmpty reports whether a string or list has no elements.
func IsEmpty(v Value) (bool, error) {
	n, err := Len(v)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Index returns the element of a list or the character of a string at the
// index held by i.
func Index(v, i Value) (Value, error) {
	switch x := v.(type) {
	case List:
		k, err := AsInt(i)
		if err != nil {
			return nil, err
		}
		return x.At(k)
	case Str:
		k, err := AsInt(i)
		if err != nil {
			return nil, err
		}
		return x.At(k)
	}
	return nil, &Error{Kind: IndexUnindexable, Expected: TypeStr | TypeList, Actual: TypeOf(v)}
}
