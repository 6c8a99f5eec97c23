package schwift

import "fmt"

// Evaluate evaluates an expression. The result may share storage with a
// variable; callers storing it elsewhere must Clone it.
func (s *State) Evaluate(e Expression) (Value, error) {
	switch e := e.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *VarExpr:
		return s.Get(e.Name)
	case *OpExpr:
		// Both sides are always evaluated, left first.
		l, err := s.Evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		r, err := s.Evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		return e.Op.Apply(l, r)
	case *IndexExpr:
		// The index is evaluated before the variable is looked up.
		i, err := s.Evaluate(e.Index)
		if err != nil {
			return nil, err
		}
		v, err := s.Get(e.Name)
		if err != nil {
			return nil, err
		}
		return Index(v, i)
	case *LenExpr:
		v, err := s.Get(e.Name)
		if err != nil {
			return nil, err
		}
		n, err := Len(v)
		if err != nil {
			return nil, err
		}
		return Int(n), nil
	case *NotExpr:
		v, err := s.Evaluate(e.Expr)
		if err != nil {
			return nil, err
		}
		return Not(v)
	case *EvalExpr:
		return s.eval(e)
	case *CallExpr:
		return s.Call(e.Name, e.Args)
	}
	panic(fmt.Sprintf("schwift: unknown expression %T", e))
}

// eval parses the string its operand evaluates to as an expression and
// evaluates that in the same State.
func (s *State) eval(e *EvalExpr) (Value, error) {
	v, err := s.Evaluate(e.Expr)
	if err != nil {
		return nil, err
	}
	src, ok := v.(Str)
	if !ok {
		return nil, unexpected(TypeStr, v)
	}
	expr, err := ParseExpression(string(src))
	if err != nil {
		return nil, &Error{Kind: SyntaxError, Err: err}
	}
	return s.Evaluate(expr)
}

func (s *State) evalInt(e Expression) (int64, error) {
	v, err := s.Evaluate(e)
	if err != nil {
		return 0, err
	}
	return AsInt(v)
}

func (s *State) evalBool(e Expression) (bool, error) {
	v, err := s.Evaluate(e)
	if err != nil {
		return false, err
	}
	return AsBool(v)
}
