package schwift

// symbols is an insertion-ordered map from variable names to values.
// Deleting a name and binding it again moves it to the end.
type symbols struct {
	index map[string]int
	names []string
	vals  []Value
}

func (s *symbols) get(name string) (Value, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.vals[i], true
}

// ref returns a pointer to the storage of a bound name, for in-place list
// mutation. The pointer is invalidated by the next set or remove.
func (s *symbols) ref(name string) *Value {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return &s.vals[i]
}

func (s *symbols) set(name string, v Value) {
	if i, ok := s.index[name]; ok {
		s.vals[i] = v
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[name] = len(s.names)
	s.names = append(s.names, name)
	s.vals = append(s.vals, v)
}

// remove unbinds name and reports whether it was bound.
func (s *symbols) remove(name string) bool {
	i, ok := s.index[name]
	if !ok {
		return false
	}
	delete(s.index, name)
	copy(s.names[i:], s.names[i+1:])
	copy(s.vals[i:], s.vals[i+1:])
	s.names = s.names[:len(s.names)-1]
	s.vals[len(s.vals)-1] = nil
	s.vals = s.vals[:len(s.vals)-1]
	for k := i; k < len(s.names); k++ {
		s.index[s.names[k]] = k
	}
	return true
}

func (s *symbols) len() int {
	return len(s.names)
}
