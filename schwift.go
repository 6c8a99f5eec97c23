package schwift

import (
	_ "embed" // for builtins
	"io"
	"strings"
	"sync"
)

// BuiltinsLabel labels statements from the builtins preamble.
const BuiltinsLabel = "builtins.y"

//go:embed builtins.y
var builtinsSource string

var (
	builtinsOnce sync.Once
	builtinsProg []Statement
)

// BuiltinsSource returns the source of the builtins preamble.
func BuiltinsSource() string {
	return builtinsSource
}

// Builtins returns the parsed builtins preamble. The result is shared and
// must not be modified.
func Builtins() []Statement {
	builtinsOnce.Do(func() {
		prog, err := Parse(strings.NewReader(builtinsSource), BuiltinsLabel)
		if err != nil {
			panic("schwift: builtins do not parse: " + err.Error())
		}
		builtinsProg = prog
	})
	return builtinsProg
}

// RunBuiltins defines the builtin functions in s.
func (s *State) RunBuiltins() error {
	_, _, err := s.Run(Builtins())
	return err
}

// RunProgram runs a parsed program. A return at the top level ends the
// program without error.
func (s *State) RunProgram(prog []Statement) error {
	_, _, err := s.Run(prog)
	return err
}

// RunSource parses source and runs it in s. Parse failures are returned as
// *ParseError.
func (s *State) RunSource(source io.Reader, label string) error {
	prog, err := Parse(source, label)
	if err != nil {
		return err
	}
	return s.RunProgram(prog)
}

// DoString parses and runs a program held in a string.
func (s *State) DoString(src string) error {
	return s.RunSource(strings.NewReader(src), "string")
}
