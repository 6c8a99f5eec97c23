// Package testutils provides utilities for testing schwift code in Go.
package testutils

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/schwift"
)

// TestingState returns a new top-level State with the builtins defined. The
// program's standard input reads from input, and its standard output is
// collected in the returned builder.
func TestingState(input string) (*schwift.State, *strings.Builder) {
	var out strings.Builder
	vm := schwift.NewVM(strings.NewReader(input), &out)
	s := vm.NewState()
	if err := s.RunBuiltins(); err != nil {
		panic(err)
	}
	return s, &out
}

// A SourceTestCase is a test case containing schwift source code and a
// predicate to check the result.
type SourceTestCase struct {
	// Source is the schwift source code to execute.
	Source string
	// Input is the program's standard input.
	Input string
	// Pass is a predicate taking the State the source ran in, everything it
	// printed, and the error it finished with. If Pass returns false, then
	// the test fails.
	Pass func(s *schwift.State, out string, err error) bool
}

// TestFunc returns a test function for the test case. Each test case runs in
// a fresh TestingState.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		prog, err := schwift.Parse(strings.NewReader(c.Source), name)
		if err != nil {
			t.Fatalf("could not parse %q: %v", c.Source, err)
		}
		s, out := TestingState(c.Input)
		err = s.RunProgram(prog)
		if !c.Pass(s, out.String(), err) {
			t.Errorf("%q produced wrong result; printed %q, error %v", c.Source, out.String(), err)
		}
	}
}

// PassSuccess returns a Pass function for a SourceTestCase that returns true
// iff the program finished without error.
func PassSuccess() func(*schwift.State, string, error) bool {
	return func(s *schwift.State, out string, err error) bool {
		return err == nil
	}
}

// PassOutput returns a Pass function for a SourceTestCase that predicates on
// the program finishing without error having printed exactly want.
func PassOutput(want string) func(*schwift.State, string, error) bool {
	return func(s *schwift.State, out string, err error) bool {
		return err == nil && out == want
	}
}

// PassEqual returns a Pass function for a SourceTestCase that predicates on
// the program finishing without error and leaving a value equal to want in
// the variable name.
func PassEqual(name string, want schwift.Value) func(*schwift.State, string, error) bool {
	return func(s *schwift.State, out string, err error) bool {
		if err != nil {
			return false
		}
		v, err := s.Get(name)
		return err == nil && schwift.Equal(v, want)
	}
}

// PassUnbound returns a Pass function for a SourceTestCase that predicates on
// the program finishing without error and leaving name unbound.
func PassUnbound(name string) func(*schwift.State, string, error) bool {
	return func(s *schwift.State, out string, err error) bool {
		if err != nil {
			return false
		}
		_, err = s.Get(name)
		return schwift.KindOf(err) == schwift.UnknownVariable
	}
}

// PassError returns a Pass function for a SourceTestCase that returns true
// iff the program failed with an error of the given kind.
func PassError(kind schwift.ErrorKind) func(*schwift.State, string, error) bool {
	return func(s *schwift.State, out string, err error) bool {
		return err != nil && schwift.KindOf(err) == kind
	}
}

// PassFailure returns a Pass function for a SourceTestCase that returns true
// iff the program failed.
func PassFailure() func(*schwift.State, string, error) bool {
	return func(s *schwift.State, out string, err error) bool {
		return err != nil
	}
}

// CheckModule is a testing helper to check that a registered module has
// exactly the functions we expect.
func CheckModule(t *testing.T, name string, funcs []string) {
	t.Helper()
	m := schwift.LookupModule(name)
	if m == nil {
		t.Fatal("no module", name)
	}
	if m.ABI != schwift.ABICompat {
		t.Errorf("module %s has ABI version %d, want %d", name, m.ABI, schwift.ABICompat)
	}
	checked := make(map[string]bool, len(funcs))
	for _, f := range funcs {
		checked[f] = true
		t.Run("Have_"+f, func(t *testing.T) {
			fn, ok := m.Funcs[f]
			if !ok {
				t.Fatal("no function", f)
			}
			if fn == nil {
				t.Fatal("function", f, "is nil")
			}
		})
	}
	for f := range m.Funcs {
		t.Run("Want_"+f, func(t *testing.T) {
			if !checked[f] {
				t.Fatal("unexpected function", f)
			}
		})
	}
}
