package schwift

import (
	"errors"
	"fmt"
)

// ErrorKind is the category of a schwift runtime error.
type ErrorKind int

// Error categories.
const (
	// NoError is the kind of errors which are not schwift errors at all.
	NoError ErrorKind = iota
	// UnknownVariable means a name was not bound in the current scope.
	UnknownVariable
	// IndexUnindexable means a list operation was applied to a non-list.
	IndexUnindexable
	// SyntaxError means an eval string failed to parse.
	SyntaxError
	// IndexOutOfBounds means a list or string index was not less than its
	// length.
	IndexOutOfBounds
	// IOError means reading standard input or a file failed.
	IOError
	// UnexpectedType means a value had the wrong type for an operation.
	UnexpectedType
	// InvalidBinaryExpression means an operator does not apply to the types
	// of its operands.
	InvalidBinaryExpression
	// InvalidArguments means a function was called with the wrong number of
	// arguments.
	InvalidArguments
	// NoReturn means a function finished without returning a value.
	NoReturn
	// NonFunctionCallInDylib means a microverse block contained something
	// other than a bare function call.
	NonFunctionCallInDylib
	// MissingAbiCompat means a microverse does not export its ABI version.
	MissingAbiCompat
	// IncompatibleAbi means a microverse was built for another ABI version.
	IncompatibleAbi
	// DylibReturnedNil means a native function returned neither a value nor
	// an error.
	DylibReturnedNil
	// LoadError means a microverse could not be opened or one of its
	// functions could not be resolved.
	LoadError
	// DivisionByZero means an integer was divided by zero.
	DivisionByZero
)

var kindNames = [...]string{
	"NoError",
	"UnknownVariable",
	"IndexUnindexable",
	"SyntaxError",
	"IndexOutOfBounds",
	"IOError",
	"UnexpectedType",
	"InvalidBinaryExpression",
	"InvalidArguments",
	"NoReturn",
	"NonFunctionCallInDylib",
	"MissingAbiCompat",
	"IncompatibleAbi",
	"DylibReturnedNil",
	"LoadError",
	"DivisionByZero",
}

func (k ErrorKind) String() string {
	if k < NoError || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// An Error is a schwift runtime error. Which fields are meaningful depends on
// the error's Kind.
type Error struct {
	Kind ErrorKind

	// Name is the variable, function, or microverse path the error concerns.
	Name string

	// Expected and Actual are the types involved in an UnexpectedType or
	// IndexUnindexable error.
	Expected, Actual Type

	// Left, Right, and Op describe an InvalidBinaryExpression.
	Left, Right Type
	Op          Operator

	// Len and Index describe an IndexOutOfBounds.
	Len   int
	Index int64

	// Args and Params are the argument and parameter counts of an
	// InvalidArguments error.
	Args, Params int

	// Version is the ABI version of an IncompatibleAbi microverse.
	Version uint32

	// Stmt is the offending statement of a NonFunctionCallInDylib.
	Stmt *Statement

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownVariable:
		return fmt.Sprintf("unknown variable %s", e.Name)
	case IndexUnindexable:
		return fmt.Sprintf("cannot index a %v", e.Actual)
	case SyntaxError:
		return fmt.Sprintf("syntax error in eval: %v", e.Err)
	case IndexOutOfBounds:
		return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Len)
	case IOError:
		return fmt.Sprintf("i/o error: %v", e.Err)
	case UnexpectedType:
		return fmt.Sprintf("expected %v, got %v", e.Expected, e.Actual)
	case InvalidBinaryExpression:
		if e.Err != nil {
			return fmt.Sprintf("cannot %v %v and %v: %v", e.Op, e.Left, e.Right, e.Err)
		}
		return fmt.Sprintf("cannot %v %v and %v", e.Op, e.Left, e.Right)
	case InvalidArguments:
		return fmt.Sprintf("%s takes %d parameters but was given %d", e.Name, e.Params, e.Args)
	case NoReturn:
		return fmt.Sprintf("%s finished without returning a value", e.Name)
	case NonFunctionCallInDylib:
		return "microverse block may only contain function calls"
	case MissingAbiCompat:
		return fmt.Sprintf("%s does not export %s: %v", e.Name, ABICompatSymbol, e.Err)
	case IncompatibleAbi:
		return fmt.Sprintf("microverse ABI version %d does not match interpreter version %d", e.Version, ABICompat)
	case DylibReturnedNil:
		return fmt.Sprintf("native function %s returned nothing", e.Name)
	case LoadError:
		return fmt.Sprintf("could not load %s: %v", e.Name, e.Err)
	case DivisionByZero:
		return "integer division by zero"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. This allows
// comparisons like errors.Is(err, &Error{Kind: NoReturn}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or NoError if
// there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

// unexpected creates an UnexpectedType error.
func unexpected(expected Type, actual Value) error {
	return &Error{Kind: UnexpectedType, Expected: expected, Actual: TypeOf(actual)}
}

// badBinary creates an InvalidBinaryExpression error.
func badBinary(op Operator, l, r Value) error {
	return &Error{Kind: InvalidBinaryExpression, Left: TypeOf(l), Right: TypeOf(r), Op: op}
}

// ContextError attaches the statement which was executing when an error
// occurred. An error receives context the first time it crosses a statement
// boundary and keeps it from then on.
type ContextError struct {
	Err  error
	Stmt *Statement
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Stmt.Label, e.Stmt.Line, e.Err)
}

// Unwrap returns the error without its context.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// withContext wraps err with stmt unless it already has context.
func withContext(err error, stmt *Statement) error {
	if err == nil {
		return nil
	}
	var ce *ContextError
	if errors.As(err, &ce) {
		return err
	}
	return &ContextError{Err: err, Stmt: stmt}
}
