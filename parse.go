package schwift

/*
This file is for converting lexer tokens into statements. The grammar is an
ordered choice at every level: each alternative is tried in turn, and the
parser backtracks to where the alternative began when it fails. The first
alternative to succeed wins, so the order of the rules below matters.
*/

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError describes source which could not be parsed. The location is that
// of the farthest token any grammar rule failed to accept.
type ParseError struct {
	// Label names the source, usually a file name.
	Label string
	// Line and Col are the 1-based location of the failure. Off is its byte
	// offset.
	Line, Col, Off int
	// Expected describes each thing which would have been accepted.
	Expected []string
	// Found describes what was there instead.
	Found string
	// Err is the lexer's error, if the failure was an invalid token.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d:%d: %v", e.Label, e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("%s:%d:%d: expected %s, found %s", e.Label, e.Line, e.Col, strings.Join(e.Expected, " or "), e.Found)
}

// Unwrap returns the lexer error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts schwift source code into a program. The label names the
// source in statements and errors.
func Parse(source io.Reader, label string) ([]Statement, error) {
	p := newParser(source, label)
	prog, ok := p.lines(eofToken, "end of input")
	if !ok {
		return nil, p.err()
	}
	return prog, nil
}

// ParseExpression parses a single expression, the form evaluated by eval.
func ParseExpression(src string) (Expression, error) {
	p := newParser(strings.NewReader(src), "eval")
	e, ok := p.expression()
	if ok && !p.is(eofToken, "") {
		p.fail("end of input")
		ok = false
	}
	if !ok {
		return nil, p.err()
	}
	return e, nil
}

// ParseValue parses a literal int, float, string, or bool. ok is false if src
// is anything else.
func ParseValue(src string) (v Value, ok bool) {
	p := newParser(strings.NewReader(src), "value")
	v, ok = p.value()
	if !ok || !p.is(eofToken, "") {
		return nil, false
	}
	return v, true
}

type parser struct {
	toks  []token
	i     int
	label string

	// far is the index of the farthest token at which a rule failed, and
	// expected describes what the rules failing there wanted.
	far      int
	expected []string
}

func newParser(source io.Reader, label string) *parser {
	tokens := make(chan token)
	go lex(bufio.NewReader(source), tokens)
	p := parser{label: label, far: -1}
	for tok := range tokens {
		p.toks = append(p.toks, tok)
	}
	end := token{Kind: eofToken, Line: 1, Col: 1}
	if n := len(p.toks); n > 0 {
		last := p.toks[n-1]
		end.Off, end.End = last.End, last.End
		end.Line, end.Col = last.Line, last.Col+len(last.Value)
		if last.Kind == newlineToken {
			end.Line, end.Col = last.Line+1, 1
		}
	}
	p.toks = append(p.toks, end)
	return &p
}

// fail records that the rule being tried wanted want at the current token.
func (p *parser) fail(want string) {
	switch {
	case p.i > p.far:
		p.far, p.expected = p.i, []string{want}
	case p.i == p.far:
		for _, w := range p.expected {
			if w == want {
				return
			}
		}
		p.expected = append(p.expected, want)
	}
}

// err creates an error describing the farthest failure.
func (p *parser) err() *ParseError {
	if p.far < 0 {
		p.far = p.i
	}
	tok := p.toks[p.far]
	e := ParseError{
		Label:    p.label,
		Line:     tok.Line,
		Col:      tok.Col,
		Off:      tok.Off,
		Expected: p.expected,
		Err:      tok.Err,
	}
	switch tok.Kind {
	case eofToken:
		e.Found = "end of input"
	case newlineToken:
		e.Found = "newline"
	default:
		e.Found = strconv.Quote(tok.Value)
	}
	return &e
}

// next consumes and returns the current token. The end of input is never
// consumed.
func (p *parser) next() token {
	t := p.toks[p.i]
	if t.Kind != eofToken {
		p.i++
	}
	return t
}

// is reports whether the current token has the given kind and, if val is not
// empty, the given text.
func (p *parser) is(kind tokenKind, val string) bool {
	t := p.toks[p.i]
	return t.Kind == kind && (val == "" || t.Value == val)
}

// sym consumes a token with the given kind and text.
func (p *parser) sym(kind tokenKind, val string) bool {
	if p.is(kind, val) {
		p.next()
		return true
	}
	p.fail(strconv.Quote(val))
	return false
}

// keyword consumes a sequence of words.
func (p *parser) keyword(words ...string) bool {
	for _, w := range words {
		if !p.sym(wordToken, w) {
			return false
		}
	}
	return true
}

func (p *parser) ident() (string, bool) {
	if p.is(wordToken, "") {
		return p.next().Value, true
	}
	p.fail("identifier")
	return "", false
}

// adjacent reports whether no space separates the current token from the
// previous one.
func (p *parser) adjacent() bool {
	return p.i > 0 && p.toks[p.i-1].End == p.toks[p.i].Off
}

func (p *parser) skipNewlines() {
	for p.is(newlineToken, "") {
		p.next()
	}
}

// lines parses statements until a token of kind until, which is not
// consumed.
func (p *parser) lines(until tokenKind, name string) ([]Statement, bool) {
	var body []Statement
	for {
		p.skipNewlines()
		if p.is(until, "") {
			return body, true
		}
		s, ok := p.statement()
		if !ok {
			p.fail(name)
			return nil, false
		}
		body = append(body, s)
	}
}

func (p *parser) block() ([]Statement, bool) {
	if !p.sym(beginToken, ":<") {
		return nil, false
	}
	body, ok := p.lines(endToken, `">:"`)
	if !ok || !p.sym(endToken, ">:") {
		return nil, false
	}
	return body, true
}

func (p *parser) statement() (Statement, bool) {
	rules := [...]func(*parser) (StatementKind, bool){
		(*parser).listDelete,
		(*parser).listNew,
		(*parser).appendStmt,
		(*parser).listAssign,
		(*parser).funcDef,
		(*parser).deleteStmt,
		(*parser).assign,
		(*parser).print,
		(*parser).ifStmt,
		(*parser).whileStmt,
		(*parser).input,
		(*parser).catch,
		(*parser).callStmt,
		(*parser).returnStmt,
		(*parser).microverse,
	}
	mark := p.i
	start := p.toks[mark]
	for _, rule := range rules {
		if k, ok := rule(p); ok {
			end := p.toks[p.i-1]
			return Statement{Kind: k, Label: p.label, Line: start.Line, Start: start.Off, End: end.End}, true
		}
		p.i = mark
	}
	return Statement{}, false
}

// squanch name[index]
func (p *parser) listDelete() (StatementKind, bool) {
	if !p.keyword("squanch") {
		return nil, false
	}
	name, ok := p.ident()
	if !ok || !p.sym(openToken, "[") {
		return nil, false
	}
	idx, ok := p.expression()
	if !ok || !p.sym(closeToken, "]") {
		return nil, false
	}
	return &ListDeleteStmt{Name: name, Index: idx}, true
}

// name on a cob
func (p *parser) listNew() (StatementKind, bool) {
	name, ok := p.ident()
	if !ok || !p.keyword("on", "a", "cob") {
		return nil, false
	}
	return &ListNewStmt{Name: name}, true
}

// name assimilate expr
func (p *parser) appendStmt() (StatementKind, bool) {
	name, ok := p.ident()
	if !ok || !p.keyword("assimilate") {
		return nil, false
	}
	e, ok := p.expression()
	if !ok {
		return nil, false
	}
	return &AppendStmt{Name: name, Expr: e}, true
}

// name[index] squanch expr
func (p *parser) listAssign() (StatementKind, bool) {
	name, ok := p.ident()
	if !ok || !p.sym(openToken, "[") {
		return nil, false
	}
	idx, ok := p.expression()
	if !ok || !p.sym(closeToken, "]") || !p.keyword("squanch") {
		return nil, false
	}
	e, ok := p.expression()
	if !ok {
		return nil, false
	}
	return &ListAssignStmt{Name: name, Index: idx, Expr: e}, true
}

// name(a, b) :< body >:
func (p *parser) funcDef() (StatementKind, bool) {
	name, ok := p.ident()
	if !ok || !p.sym(openToken, "(") {
		return nil, false
	}
	var params []string
	if !p.is(closeToken, ")") {
		for {
			param, ok := p.ident()
			if !ok {
				return nil, false
			}
			params = append(params, param)
			if !p.is(commaToken, "") {
				break
			}
			p.next()
		}
	}
	if !p.sym(closeToken, ")") {
		return nil, false
	}
	body, ok := p.block()
	if !ok {
		return nil, false
	}
	return &FuncStmt{Name: name, Params: params, Body: body}, true
}

// squanch name
func (p *parser) deleteStmt() (StatementKind, bool) {
	if !p.keyword("squanch") {
		return nil, false
	}
	name, ok := p.ident()
	if !ok {
		return nil, false
	}
	return &DeleteStmt{Name: name}, true
}

// name squanch expr
func (p *parser) assign() (StatementKind, bool) {
	name, ok := p.ident()
	if !ok || !p.keyword("squanch") {
		return nil, false
	}
	e, ok := p.expression()
	if !ok {
		return nil, false
	}
	return &AssignStmt{Name: name, Expr: e}, true
}

// show me what you got expr, or show me what you got! expr
func (p *parser) print() (StatementKind, bool) {
	if !p.keyword("show", "me", "what", "you", "got") {
		return nil, false
	}
	nonl := false
	if p.is(opToken, "!") && p.adjacent() {
		p.next()
		nonl = true
	}
	e, ok := p.expression()
	if !ok {
		return nil, false
	}
	return &PrintStmt{Expr: e, NoNewline: nonl}, true
}

// if cond :< then >: else :< else >:
func (p *parser) ifStmt() (StatementKind, bool) {
	if !p.keyword("if") {
		return nil, false
	}
	cond, ok := p.expression()
	if !ok {
		return nil, false
	}
	then, ok := p.block()
	if !ok {
		return nil, false
	}
	mark := p.i
	if p.keyword("else") {
		if els, ok := p.block(); ok {
			if els == nil {
				els = []Statement{}
			}
			return &IfStmt{Cond: cond, Then: then, Else: els}, true
		}
	}
	p.i = mark
	return &IfStmt{Cond: cond, Then: then}, true
}

// while cond :< body >:
func (p *parser) whileStmt() (StatementKind, bool) {
	if !p.keyword("while") {
		return nil, false
	}
	cond, ok := p.expression()
	if !ok {
		return nil, false
	}
	body, ok := p.block()
	if !ok {
		return nil, false
	}
	return &WhileStmt{Cond: cond, Body: body}, true
}

// portal gun name
func (p *parser) input() (StatementKind, bool) {
	if !p.keyword("portal", "gun") {
		return nil, false
	}
	name, ok := p.ident()
	if !ok {
		return nil, false
	}
	return &InputStmt{Name: name}, true
}

// normal plan :< try >: plan for failure :< catch >:
func (p *parser) catch() (StatementKind, bool) {
	if !p.keyword("normal", "plan") {
		return nil, false
	}
	try, ok := p.block()
	if !ok || !p.keyword("plan", "for", "failure") {
		return nil, false
	}
	catch, ok := p.block()
	if !ok {
		return nil, false
	}
	return &CatchStmt{Try: try, Catch: catch}, true
}

// name(args)
func (p *parser) callStmt() (StatementKind, bool) {
	name, ok := p.ident()
	if !ok {
		return nil, false
	}
	args, ok := p.args()
	if !ok {
		return nil, false
	}
	return &CallStmt{Name: name, Args: args}, true
}

// return expr
func (p *parser) returnStmt() (StatementKind, bool) {
	if !p.keyword("return") {
		return nil, false
	}
	e, ok := p.expression()
	if !ok {
		return nil, false
	}
	return &ReturnStmt{Expr: e}, true
}

// microverse "path" :< f() g() >:
func (p *parser) microverse() (StatementKind, bool) {
	if !p.keyword("microverse") {
		return nil, false
	}
	if !p.is(stringToken, "") {
		p.fail("string")
		return nil, false
	}
	path := p.next().Value
	funcs, ok := p.block()
	if !ok {
		return nil, false
	}
	return &MicroverseStmt{Path: unescape(path[1 : len(path)-1]), Funcs: funcs}, true
}

// args parses a parenthesised argument list, which must immediately follow
// the function name.
func (p *parser) args() ([]Expression, bool) {
	if !p.adjacent() || !p.sym(openToken, "(") {
		return nil, false
	}
	var args []Expression
	if !p.is(closeToken, ")") {
		for {
			e, ok := p.expression()
			if !ok {
				return nil, false
			}
			args = append(args, e)
			if !p.is(commaToken, "") {
				break
			}
			p.next()
		}
	}
	if !p.sym(closeToken, ")") {
		return nil, false
	}
	return args, true
}

func (p *parser) expression() (Expression, bool) {
	mark := p.i
	// {expr}
	if p.sym(openToken, "{") {
		if e, ok := p.expression(); ok && p.sym(closeToken, "}") {
			return &EvalExpr{Expr: e}, true
		}
	}
	p.i = mark
	// (expr op expr)
	if p.sym(openToken, "(") {
		if l, ok := p.expression(); ok {
			if op, ok := p.operator(); ok {
				if r, ok := p.expression(); ok && p.sym(closeToken, ")") {
					return &OpExpr{Left: l, Op: op, Right: r}, true
				}
			}
		}
	}
	p.i = mark
	// (expr)
	if p.sym(openToken, "(") {
		if e, ok := p.expression1(); ok && p.sym(closeToken, ")") {
			return e, true
		}
	}
	p.i = mark
	return p.expression1()
}

func (p *parser) operator() (Operator, bool) {
	t := p.toks[p.i]
	if t.Kind == opToken || t.Kind == wordToken {
		if op, ok := opWords[t.Value]; ok {
			p.next()
			return op, true
		}
	}
	p.fail("operator")
	return 0, false
}

func (p *parser) expression1() (Expression, bool) {
	mark := p.i
	if name, ok := p.ident(); ok {
		// name[index]
		if p.sym(openToken, "[") {
			if idx, ok := p.expression(); ok && p.sym(closeToken, "]") {
				return &IndexExpr{Name: name, Index: idx}, true
			}
		}
		p.i = mark + 1
		// name(args)
		if args, ok := p.args(); ok {
			return &CallExpr{Name: name, Args: args}, true
		}
	}
	p.i = mark
	if v, ok := p.value(); ok {
		return &LiteralExpr{Value: v}, true
	}
	p.i = mark
	if name, ok := p.ident(); ok {
		// name squanch
		if p.keyword("squanch") {
			return &LenExpr{Name: name}, true
		}
		p.i = mark + 1
		return &VarExpr{Name: name}, true
	}
	p.i = mark
	// !expr
	if p.sym(opToken, "!") {
		if e, ok := p.expression(); ok {
			return &NotExpr{Expr: e}, true
		}
	}
	p.i = mark
	return nil, false
}

// value parses a literal. An int or float may have a - sign immediately
// before it.
func (p *parser) value() (Value, bool) {
	mark := p.i
	sign := ""
	if p.is(opToken, "-") {
		p.next()
		if !p.adjacent() || !(p.is(intToken, "") || p.is(floatToken, "")) {
			p.i = mark
			p.fail("value")
			return nil, false
		}
		sign = "-"
	}
	t := p.toks[p.i]
	switch t.Kind {
	case floatToken:
		// Out of range literals become infinities.
		f, _ := strconv.ParseFloat(sign+t.Value, 64)
		p.next()
		return Float(f), true
	case intToken:
		n, err := strconv.ParseInt(sign+t.Value, 10, 64)
		if err != nil {
			p.fail("integer within 64 bits")
			p.i = mark
			return nil, false
		}
		p.next()
		return Int(n), true
	case stringToken:
		p.next()
		return Str(unescape(t.Value[1 : len(t.Value)-1])), true
	case wordToken:
		switch t.Value {
		case "rick":
			p.next()
			return Bool(true), true
		case "morty":
			p.next()
			return Bool(false), true
		}
	}
	p.fail("value")
	p.i = mark
	return nil, false
}
