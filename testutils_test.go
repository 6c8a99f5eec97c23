package schwift

import (
	"errors"
	"strings"
	"testing"
)

// testingState returns a fresh top-level State with the builtins defined,
// reading input and printing to the returned builder.
func testingState(t *testing.T, input string) (*State, *strings.Builder) {
	t.Helper()
	var out strings.Builder
	s := NewVM(strings.NewReader(input), &out).NewState()
	if err := s.RunBuiltins(); err != nil {
		t.Fatalf("builtins failed: %v", err)
	}
	return s, &out
}

// A SourceTestCase is a test case containing source code and a predicate to
// check the result.
type SourceTestCase struct {
	Source string
	Input  string
	Pass   func(s *State, out string, err error) bool
}

// TestFunc returns a test function for the test case.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		prog, err := Parse(strings.NewReader(c.Source), name)
		if err != nil {
			t.Fatalf("could not parse %q: %v", c.Source, err)
		}
		s, out := testingState(t, c.Input)
		err = s.RunProgram(prog)
		if !c.Pass(s, out.String(), err) {
			t.Errorf("%q produced wrong result; printed %q, error %v", c.Source, out.String(), err)
		}
	}
}

// PassOutput returns a Pass function for a SourceTestCase that predicates on
// the program succeeding with exactly the given output.
func PassOutput(want string) func(*State, string, error) bool {
	return func(s *State, out string, err error) bool {
		return err == nil && out == want
	}
}

// PassEqual returns a Pass function for a SourceTestCase that predicates on
// the program succeeding and leaving want in the variable name.
func PassEqual(name string, want Value) func(*State, string, error) bool {
	return func(s *State, out string, err error) bool {
		if err != nil {
			return false
		}
		v, err := s.Get(name)
		return err == nil && Equal(v, want)
	}
}

// PassUnbound returns a Pass function for a SourceTestCase that predicates on
// the program succeeding and leaving name unbound.
func PassUnbound(name string) func(*State, string, error) bool {
	return func(s *State, out string, err error) bool {
		if err != nil {
			return false
		}
		_, err = s.Get(name)
		return KindOf(err) == UnknownVariable
	}
}

// PassError returns a Pass function for a SourceTestCase that predicates on
// the program failing with the given kind of error.
func PassError(kind ErrorKind) func(*State, string, error) bool {
	return func(s *State, out string, err error) bool {
		return err != nil && KindOf(err) == kind
	}
}

// PassErrorWith returns a Pass function for a SourceTestCase that predicates
// on the program failing with an *Error satisfying pred.
func PassErrorWith(pred func(*Error) bool) func(*State, string, error) bool {
	return func(s *State, out string, err error) bool {
		var e *Error
		return errors.As(err, &e) && pred(e)
	}
}

// runCases runs each SourceTestCase as a subtest.
func runCases(t *testing.T, cases map[string]SourceTestCase) {
	t.Helper()
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}
