package schwift

// State is a variable environment. Scoping is dynamic per call: each function
// call runs in a fresh State holding only its parameters, never its caller's
// variables.
type State struct {
	// VM is the interpreter the State executes on.
	VM *VM

	syms symbols
}

// Get returns the value bound to name.
func (s *State) Get(name string) (Value, error) {
	v, ok := s.syms.get(name)
	if !ok {
		return nil, &Error{Kind: UnknownVariable, Name: name}
	}
	return v, nil
}

// Set binds a copy of v to name, replacing any previous binding.
func (s *State) Set(name string, v Value) {
	s.syms.set(name, Clone(v))
}

// Delete unbinds name.
func (s *State) Delete(name string) error {
	if !s.syms.remove(name) {
		return &Error{Kind: UnknownVariable, Name: name}
	}
	return nil
}

// Names returns the bound names in the order they were bound.
func (s *State) Names() []string {
	return append([]string(nil), s.syms.names...)
}

// Len returns the number of bound names.
func (s *State) Len() int {
	return s.syms.len()
}

// list returns the storage of the list bound to name, for mutation in place.
func (s *State) list(name string) (*Value, List, error) {
	p := s.syms.ref(name)
	if p == nil {
		return nil, nil, &Error{Kind: UnknownVariable, Name: name}
	}
	l, ok := (*p).(List)
	if !ok {
		return nil, nil, &Error{Kind: IndexUnindexable, Expected: TypeList, Actual: TypeOf(*p)}
	}
	return p, l, nil
}
