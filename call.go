package schwift

import "log/slog"

// Call evaluates args left to right and calls the function bound to name
// with them. A user function runs in a fresh State holding only its
// parameters and must return a value.
func (s *State) Call(name string, args []Expression) (Value, error) {
	vals := make([]Value, len(args))
	for i, arg := range args {
		v, err := s.Evaluate(arg)
		if err != nil {
			return nil, err
		}
		vals[i] = Clone(v)
	}
	f, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	s.VM.Log.Debug("Function call",
		slog.String("function", name),
		slog.Int("argument-count", len(vals)))
	switch f := f.(type) {
	case *NativeFunction:
		return f.Activate(vals)
	case *Function:
		return s.VM.CallFunction(name, f, vals)
	}
	return nil, unexpected(TypeFunction, f)
}

// CallFunction calls a user function with already evaluated arguments, which
// become owned by the call. The name is used in errors.
func (vm *VM) CallFunction(name string, f *Function, args []Value) (Value, error) {
	if len(args) != len(f.Params) {
		return nil, &Error{Kind: InvalidArguments, Name: name, Args: len(args), Params: len(f.Params)}
	}
	child := vm.NewState()
	for i, p := range f.Params {
		child.syms.set(p, args[i])
	}
	result, stop, err := child.Run(f.Body)
	if err != nil {
		return nil, err
	}
	if stop != ReturnStop {
		return nil, &Error{Kind: NoReturn, Name: name}
	}
	return result, nil
}
