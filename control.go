package schwift

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Stop represents the reason for flow control.
type Stop int

// Control flow reasons.
const (
	// NoStop indicates normal execution. The next statement runs.
	NoStop Stop = iota
	// ReturnStop should be interpreted by blocks and loops as a signal to
	// exit. The accompanying value is the function's result. Function calls
	// consume it.
	ReturnStop
)

var stopNames = [...]string{"normal", "return"}

func (s Stop) String() string {
	if s < NoStop || s > ReturnStop {
		return fmt.Sprintf("Stop(%d)", int(s))
	}
	return stopNames[s]
}

// Run executes statements in order. It stops at the first error or at the
// first statement which returns, in which case result is the returned value
// and stop is ReturnStop.
func (s *State) Run(stmts []Statement) (result Value, stop Stop, err error) {
	for i := range stmts {
		result, stop, err = s.Execute(&stmts[i])
		if err != nil || stop != NoStop {
			return result, stop, err
		}
	}
	return nil, NoStop, nil
}

// Execute executes a single statement. Errors are attached to the statement
// unless they already have context from a statement nested within it.
func (s *State) Execute(stmt *Statement) (result Value, stop Stop, err error) {
	switch k := stmt.Kind.(type) {
	case *AssignStmt:
		err = s.assign(k)
	case *DeleteStmt:
		err = s.Delete(k.Name)
	case *PrintStmt:
		err = s.print(k)
	case *ListNewStmt:
		s.syms.set(k.Name, List{})
	case *AppendStmt:
		err = s.listAppend(k)
	case *ListAssignStmt:
		err = s.listAssign(k)
	case *ListDeleteStmt:
		err = s.listDelete(k)
	case *IfStmt:
		result, stop, err = s.execIf(k)
	case *WhileStmt:
		result, stop, err = s.execWhile(k)
	case *InputStmt:
		err = s.input(k)
	case *CatchStmt:
		result, stop, err = s.catch(k)
	case *FuncStmt:
		s.syms.set(k.Name, &Function{Params: k.Params, Body: k.Body})
	case *ReturnStmt:
		result, err = s.Evaluate(k.Expr)
		if err == nil {
			stop = ReturnStop
		}
	case *CallStmt:
		_, err = s.Call(k.Name, k.Args)
	case *MicroverseStmt:
		err = s.loadMicroverse(k)
	default:
		panic(fmt.Sprintf("schwift: unknown statement kind %T", stmt.Kind))
	}
	if err != nil {
		return nil, NoStop, withContext(err, stmt)
	}
	return result, stop, nil
}

func (s *State) assign(k *AssignStmt) error {
	v, err := s.Evaluate(k.Expr)
	if err != nil {
		return err
	}
	s.Set(k.Name, v)
	return nil
}

func (s *State) print(k *PrintStmt) error {
	v, err := s.Evaluate(k.Expr)
	if err != nil {
		return err
	}
	text := v.String()
	if !k.NoNewline {
		text += "\n"
	}
	if _, err := io.WriteString(s.VM.Stdout, text); err != nil {
		return &Error{Kind: IOError, Err: err}
	}
	return nil
}

// input reads one line from standard input, without its line terminator.
// Reaching the end of input is not an error; the text read before it is
// stored, which may be empty.
func (s *State) input(k *InputStmt) error {
	line, err := s.VM.Stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return &Error{Kind: IOError, Err: err}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	s.syms.set(k.Name, Str(line))
	return nil
}

func (s *State) listAppend(k *AppendStmt) error {
	v, err := s.Evaluate(k.Expr)
	if err != nil {
		return err
	}
	p, l, err := s.list(k.Name)
	if err != nil {
		return err
	}
	*p = append(l, Clone(v))
	return nil
}

// listAssign evaluates the new element, then the index, then finds the list.
func (s *State) listAssign(k *ListAssignStmt) error {
	v, err := s.Evaluate(k.Expr)
	if err != nil {
		return err
	}
	i, err := s.evalInt(k.Index)
	if err != nil {
		return err
	}
	_, l, err := s.list(k.Name)
	if err != nil {
		return err
	}
	return l.Set(i, v)
}

func (s *State) listDelete(k *ListDeleteStmt) error {
	i, err := s.evalInt(k.Index)
	if err != nil {
		return err
	}
	p, l, err := s.list(k.Name)
	if err != nil {
		return err
	}
	l, err = l.Remove(i)
	if err != nil {
		return err
	}
	*p = l
	return nil
}

func (s *State) execIf(k *IfStmt) (Value, Stop, error) {
	cond, err := s.evalBool(k.Cond)
	if err != nil {
		return nil, NoStop, err
	}
	if cond {
		return s.Run(k.Then)
	}
	return s.Run(k.Else)
}

// execWhile re-evaluates the condition before each iteration. A return from
// the body ends the loop immediately.
func (s *State) execWhile(k *WhileStmt) (Value, Stop, error) {
	for {
		cond, err := s.evalBool(k.Cond)
		if err != nil || !cond {
			return nil, NoStop, err
		}
		result, stop, err := s.Run(k.Body)
		if err != nil || stop != NoStop {
			return result, stop, err
		}
	}
}

// catch runs the try block. If it fails, the error is discarded entirely and
// the catch block runs instead. Errors from the catch block propagate.
func (s *State) catch(k *CatchStmt) (Value, Stop, error) {
	result, stop, err := s.Run(k.Try)
	if err == nil {
		return result, stop, nil
	}
	s.VM.Log.Debug("plan for failure", slog.Any("error", err))
	return s.Run(k.Catch)
}
