package schwift

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func parseOne(t *testing.T, src string) StatementKind {
	t.Helper()
	prog, err := Parse(strings.NewReader(src), "test")
	if err != nil {
		t.Fatalf("%q did not parse: %v", src, err)
	}
	if len(prog) != 1 {
		t.Fatalf("%q parsed to %d statements, want 1", src, len(prog))
	}
	return prog[0].Kind
}

func v(name string) Expression { return &VarExpr{Name: name} }

func lit(x Value) Expression { return &LiteralExpr{Value: x} }

// TestParseStatements tests that each statement form parses to the right
// syntax tree.
func TestParseStatements(t *testing.T) {
	cases := map[string]struct {
		text string
		want StatementKind
	}{
		"Assign":        {"x squanch 1", &AssignStmt{Name: "x", Expr: lit(Int(1))}},
		"Delete":        {"squanch x", &DeleteStmt{Name: "x"}},
		"Print":         {"show me what you got x", &PrintStmt{Expr: v("x")}},
		"PrintNoNL":     {"show me what you got! x", &PrintStmt{Expr: v("x"), NoNewline: true}},
		"PrintSpaced!":  {"show me what you got !x", &PrintStmt{Expr: &NotExpr{Expr: v("x")}}},
		"ListNew":       {"x on a cob", &ListNewStmt{Name: "x"}},
		"Append":        {"x assimilate 2.5", &AppendStmt{Name: "x", Expr: lit(Float(2.5))}},
		"ListAssign":    {"x[0] squanch rick", &ListAssignStmt{Name: "x", Index: lit(Int(0)), Expr: lit(Bool(true))}},
		"ListDelete":    {"squanch x[i]", &ListDeleteStmt{Name: "x", Index: v("i")}},
		"Input":         {"portal gun name", &InputStmt{Name: "name"}},
		"Return":        {"return morty", &ReturnStmt{Expr: lit(Bool(false))}},
		"Call":          {"f(1, x)", &CallStmt{Name: "f", Args: []Expression{lit(Int(1)), v("x")}}},
		"CallNoArgs":    {"f()", &CallStmt{Name: "f"}},
		"AssignNeg":     {"x squanch -3", &AssignStmt{Name: "x", Expr: lit(Int(-3))}},
		"AssignNegFlt":  {"x squanch -0.5", &AssignStmt{Name: "x", Expr: lit(Float(-0.5))}},
		"AssignString":  {`x squanch "a\tb\"c\\"`, &AssignStmt{Name: "x", Expr: lit(Str("a\tb\"c\\"))}},
		"AssignLen":     {"n squanch x squanch", &AssignStmt{Name: "n", Expr: &LenExpr{Name: "x"}}},
		"AssignIndex":   {"y squanch x[(i + 1)]", &AssignStmt{Name: "y", Expr: &IndexExpr{Name: "x", Index: &OpExpr{Left: v("i"), Op: Add, Right: lit(Int(1))}}}},
		"AssignEval":    {`y squanch {"(1 + 3)"}`, &AssignStmt{Name: "y", Expr: &EvalExpr{Expr: lit(Str("(1 + 3)"))}}},
		"AssignCall":    {"y squanch f(x)", &AssignStmt{Name: "y", Expr: &CallExpr{Name: "f", Args: []Expression{v("x")}}}},
		"AssignGroup":   {"y squanch (x)", &AssignStmt{Name: "y", Expr: v("x")}},
		"AssignNested":  {"y squanch ((a * b) - c)", &AssignStmt{Name: "y", Expr: &OpExpr{Left: &OpExpr{Left: v("a"), Op: Multiply, Right: v("b")}, Op: Subtract, Right: v("c")}}},
		"AssignKeyword": {"while squanch 1", &AssignStmt{Name: "while", Expr: lit(Int(1))}},
		"While": {
			"while (i less 3) :<\n i squanch (i + 1)\n>:",
			&WhileStmt{
				Cond: &OpExpr{Left: v("i"), Op: LessThan, Right: lit(Int(3))},
				Body: []Statement{{Kind: &AssignStmt{Name: "i", Expr: &OpExpr{Left: v("i"), Op: Add, Right: lit(Int(1))}}}},
			},
		},
		"If": {
			"if x :<\n>:",
			&IfStmt{Cond: v("x")},
		},
		"IfElse": {
			"if x :<\n show me what you got 1\n>: else :<\n>:",
			&IfStmt{Cond: v("x"), Then: []Statement{{Kind: &PrintStmt{Expr: lit(Int(1))}}}, Else: []Statement{}},
		},
		"Catch": {
			"normal plan :<\n f()\n>: plan for failure :<\n g()\n>:",
			&CatchStmt{Try: []Statement{{Kind: &CallStmt{Name: "f"}}}, Catch: []Statement{{Kind: &CallStmt{Name: "g"}}}},
		},
		"Func": {
			"f(a, b) :<\n return (a + b)\n>:",
			&FuncStmt{Name: "f", Params: []string{"a", "b"}, Body: []Statement{{Kind: &ReturnStmt{Expr: &OpExpr{Left: v("a"), Op: Add, Right: v("b")}}}}},
		},
		"Microverse": {
			"microverse \"./libmatrix.so\" :<\n matrix()\n>:",
			&MicroverseStmt{Path: "./libmatrix.so", Funcs: []Statement{{Kind: &CallStmt{Name: "matrix"}}}},
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got := parseOne(t, c.text)
			clearPositions(got)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("%q parsed wrong:\nwant %#v\ngot  %#v", c.text, c.want, got)
			}
		})
	}
}

// clearPositions zeroes the locations of nested statements so that trees
// can be compared structurally.
func clearPositions(k StatementKind) {
	clear := func(body []Statement) {
		for i := range body {
			body[i] = Statement{Kind: body[i].Kind}
			clearPositions(body[i].Kind)
		}
	}
	switch k := k.(type) {
	case *IfStmt:
		clear(k.Then)
		clear(k.Else)
	case *WhileStmt:
		clear(k.Body)
	case *CatchStmt:
		clear(k.Try)
		clear(k.Catch)
	case *FuncStmt:
		clear(k.Body)
	case *MicroverseStmt:
		clear(k.Funcs)
	}
}

// TestParsePrograms tests the number of statements in whole programs.
func TestParsePrograms(t *testing.T) {
	cases := map[string]struct {
		text string
		n    int
	}{
		"Empty":       {"", 0},
		"Blank":       {"\n\n  \n", 0},
		"OneLine":     {"x squanch 1 y squanch 2", 2},
		"Lines":       {"x squanch 1\ny squanch 2\n", 2},
		"CRLF":        {"x squanch 1\r\ny squanch 2\r\n", 2},
		"Builtins":    {BuiltinsSource(), 5},
		"Nested":      {"f() :<\n while rick :<\n  return 1\n >:\n>:\nf()", 2},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			prog, err := Parse(strings.NewReader(c.text), name)
			if err != nil {
				t.Fatal(err)
			}
			if len(prog) != c.n {
				t.Errorf("%q parsed to %d statements, want %d", c.text, len(prog), c.n)
			}
		})
	}
}

// TestParsePositions tests that statements record their locations.
func TestParsePositions(t *testing.T) {
	src := "x squanch 1\n\n  show me what you got x\n"
	prog, err := Parse(strings.NewReader(src), "pos.y")
	if err != nil {
		t.Fatal(err)
	}
	if len(prog) != 2 {
		t.Fatalf("wrong number of statements %d", len(prog))
	}
	s := prog[1]
	if s.Label != "pos.y" || s.Line != 3 {
		t.Errorf("wrong location %s:%d", s.Label, s.Line)
	}
	if got := src[s.Start:s.End]; got != "show me what you got x" {
		t.Errorf("wrong source range %q", got)
	}
}

// TestParseErrors tests that certain illegal phrasings result in errors.
func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"UnclosedBlock":    "while rick :<\n x squanch 1",
		"UnopenedBlock":    ">:",
		"SpacedCall":       "f (1)",
		"BareNot":          "show me what you got x\n!y",
		"ElseNextLine":     "if rick :<\n>:\nelse :<\n>:",
		"PlanNextLine":     "normal plan :<\n>:\nplan for failure :<\n>:",
		"NoOperator":       "x squanch (1 2)",
		"Unparenthesised":  "x squanch 1 + 2",
		"MicroverseNoPath": "microverse matrix :<\n>:",
		"LexerError":       "x squanch 1 @",
		"UnclosedString":   "x squanch \"abc",
		"BigInt":           "x squanch 99999999999999999999",
		"EmptyArg":         "f(1, )",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			prog, err := Parse(strings.NewReader(text), name)
			if err == nil {
				t.Errorf("%q parsed without error to %d statements", text, len(prog))
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("%q gave wrong error type %T", text, err)
			}
		})
	}
}

// TestParseErrorLocation tests that parse errors point at the farthest
// failure.
func TestParseErrorLocation(t *testing.T) {
	_, err := Parse(strings.NewReader("x squanch 1\ny squanch (1 + )\n"), "loc.y")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("wrong error %v", err)
	}
	if pe.Label != "loc.y" || pe.Line != 2 || pe.Col != 16 {
		t.Errorf("wrong location %s:%d:%d", pe.Label, pe.Line, pe.Col)
	}
	if pe.Found != `")"` {
		t.Errorf("wrong found %s", pe.Found)
	}
	if len(pe.Expected) == 0 {
		t.Error("nothing expected")
	}
}

// TestParseValue tests literal parsing as used for argv.
func TestParseValue(t *testing.T) {
	cases := map[string]struct {
		text string
		want Value
		ok   bool
	}{
		"Int":      {"42", Int(42), true},
		"NegInt":   {"-42", Int(-42), true},
		"Float":    {"4.5", Float(4.5), true},
		"Rick":     {"rick", Bool(true), true},
		"Morty":    {"morty", Bool(false), true},
		"String":   {`"hi"`, Str("hi"), true},
		"Word":     {"jerry", nil, false},
		"Trailing": {"1 2", nil, false},
		"Empty":    {"", nil, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			v, ok := ParseValue(c.text)
			if ok != c.ok {
				t.Fatalf("%q: want ok=%t, got %t", c.text, c.ok, ok)
			}
			if ok && !Equal(v, c.want) {
				t.Errorf("%q: want %v, got %v", c.text, c.want, v)
			}
		})
	}
}

// TestParseExpression tests the expression parser used by eval.
func TestParseExpression(t *testing.T) {
	e, err := ParseExpression("(1 + 3)")
	if err != nil {
		t.Fatal(err)
	}
	want := &OpExpr{Left: lit(Int(1)), Op: Add, Right: lit(Int(3))}
	if !reflect.DeepEqual(e, Expression(want)) {
		t.Errorf("wrong expression %#v", e)
	}
	if _, err := ParseExpression("1 + 3"); err == nil {
		t.Error("unparenthesised operator parsed")
	}
}
