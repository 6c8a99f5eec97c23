package schwift

// ArgsName is the variable holding a program's command-line arguments.
const ArgsName = "argv"

// Args converts command-line arguments to a list. Each argument which is a
// literal value, such as 3 or rick, becomes that value; any other argument
// is a string.
func Args(args []string) List {
	l := make(List, len(args))
	for i, arg := range args {
		if v, ok := ParseValue(arg); ok {
			l[i] = v
		} else {
			l[i] = Str(arg)
		}
	}
	return l
}

// SetArgs binds the argument list as argv.
func (s *State) SetArgs(args []string) {
	s.syms.set(ArgsName, Args(args))
}
