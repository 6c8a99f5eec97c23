package schwift

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeSource returns a reader converting program text to UTF-8. A leading
// UTF-8 or UTF-16 byte order mark selects the encoding and is removed;
// without one, the text is taken to be UTF-8.
func DecodeSource(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// ReadSource reads and decodes the program at path. Failures are IOErrors.
func ReadSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &Error{Kind: IOError, Name: path, Err: err}
	}
	defer f.Close()
	b, err := io.ReadAll(DecodeSource(f))
	if err != nil {
		return "", &Error{Kind: IOError, Name: path, Err: err}
	}
	return string(b), nil
}

// compiled is the serialized form of a parsed program.
type compiled struct {
	// Version is the ABI version of the interpreter which compiled the
	// program.
	Version uint32
	Program []Statement
}

// WriteCompiled serializes a parsed program.
func WriteCompiled(w io.Writer, prog []Statement) error {
	return gob.NewEncoder(w).Encode(compiled{Version: ABICompat, Program: prog})
}

// ReadCompiled deserializes a program written by WriteCompiled. Programs
// compiled for a different ABI version are rejected with IncompatibleAbi.
func ReadCompiled(r io.Reader) ([]Statement, error) {
	var c compiled
	if err := gob.NewDecoder(r).Decode(&c); err != nil {
		return nil, &Error{Kind: IOError, Err: fmt.Errorf("decoding compiled program: %w", err)}
	}
	if c.Version != ABICompat {
		return nil, &Error{Kind: IncompatibleAbi, Version: c.Version}
	}
	if err := checkStmts(c.Program); err != nil {
		return nil, &Error{Kind: IOError, Err: fmt.Errorf("malformed compiled program: %w", err)}
	}
	return c.Program, nil
}

// checkStmts verifies that a decoded program has the shape the parser
// produces, so that running it cannot reach an impossible node.
func checkStmts(stmts []Statement) error {
	for i := range stmts {
		if err := checkStmt(&stmts[i]); err != nil {
			return fmt.Errorf("%s:%d: %w", stmts[i].Label, stmts[i].Line, err)
		}
	}
	return nil
}

func checkStmt(stmt *Statement) error {
	switch k := stmt.Kind.(type) {
	case *AssignStmt:
		return checkExpr(k.Expr)
	case *DeleteStmt, *ListNewStmt, *InputStmt:
		return nil
	case *PrintStmt:
		return checkExpr(k.Expr)
	case *AppendStmt:
		return checkExpr(k.Expr)
	case *ListAssignStmt:
		if err := checkExpr(k.Index); err != nil {
			return err
		}
		return checkExpr(k.Expr)
	case *ListDeleteStmt:
		return checkExpr(k.Index)
	case *IfStmt:
		if err := checkExpr(k.Cond); err != nil {
			return err
		}
		if err := checkStmts(k.Then); err != nil {
			return err
		}
		return checkStmts(k.Else)
	case *WhileStmt:
		if err := checkExpr(k.Cond); err != nil {
			return err
		}
		return checkStmts(k.Body)
	case *CatchStmt:
		if err := checkStmts(k.Try); err != nil {
			return err
		}
		return checkStmts(k.Catch)
	case *FuncStmt:
		return checkStmts(k.Body)
	case *ReturnStmt:
		return checkExpr(k.Expr)
	case *CallStmt:
		return checkExprs(k.Args)
	case *MicroverseStmt:
		return checkStmts(k.Funcs)
	case nil:
		return errors.New("missing statement")
	}
	return fmt.Errorf("unknown statement %T", stmt.Kind)
}

func checkExprs(exprs []Expression) error {
	for _, e := range exprs {
		if err := checkExpr(e); err != nil {
			return err
		}
	}
	return nil
}

func checkExpr(e Expression) error {
	switch e := e.(type) {
	case *VarExpr, *LenExpr:
		return nil
	case *OpExpr:
		if e.Op < 0 || int(e.Op) >= len(ops) {
			return fmt.Errorf("invalid operator %d", int(e.Op))
		}
		if err := checkExpr(e.Left); err != nil {
			return err
		}
		return checkExpr(e.Right)
	case *LiteralExpr:
		switch e.Value.(type) {
		case Int, Float, Bool, Str:
			return nil
		case nil:
			return errors.New("missing literal value")
		}
		return fmt.Errorf("literal of type %v", TypeOf(e.Value))
	case *IndexExpr:
		return checkExpr(e.Index)
	case *NotExpr:
		return checkExpr(e.Expr)
	case *EvalExpr:
		return checkExpr(e.Expr)
	case *CallExpr:
		return checkExprs(e.Args)
	case nil:
		return errors.New("missing expression")
	}
	return fmt.Errorf("unknown expression %T", e)
}
