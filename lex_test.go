package schwift

import (
	"bufio"
	"strings"
	"testing"
)

// String returns the name of a token kind.
func (t tokenKind) String() string {
	switch t {
	case badToken:
		return "badToken"
	case newlineToken:
		return "newlineToken"
	case wordToken:
		return "wordToken"
	case intToken:
		return "intToken"
	case floatToken:
		return "floatToken"
	case stringToken:
		return "stringToken"
	case openToken:
		return "openToken"
	case closeToken:
		return "closeToken"
	case commaToken:
		return "commaToken"
	case opToken:
		return "opToken"
	case beginToken:
		return "beginToken"
	case endToken:
		return "endToken"
	case eofToken:
		return "eofToken"
	}
	panic("invalid tokenKind")
}

// TestLexSingles tests that individual tokens have the correct kinds and
// values.
func TestLexSingles(t *testing.T) {
	cases := map[string]struct {
		text string
		kind tokenKind
		val  string
	}{
		"Newline-\\n":           {"\n", newlineToken, "\n"},
		"Newline-\\r\\n":        {"\r\n", newlineToken, "\n"},
		"Word-alpha":            {"squanch", wordToken, "squanch"},
		"Word-alnum":            {"a123", wordToken, "a123"},
		"Word-underscore":       {"_a_b", wordToken, "_a_b"},
		"Word-schwift":          {"schwift", wordToken, "schwift"},
		"Op-+":                  {"+", opToken, "+"},
		"Op--":                  {"-", opToken, "-"},
		"Op-*":                  {"*", opToken, "*"},
		"Op-/":                  {"/", opToken, "/"},
		"Op-%":                  {"%", opToken, "%"},
		"Op-!":                  {"!", opToken, "!"},
		"Op-==":                 {"==", opToken, "=="},
		"Op-<schwift":           {"<schwift", opToken, "<schwift"},
		"Op-schwift>":           {"schwift>", opToken, "schwift>"},
		"Open-(":                {"(", openToken, "("},
		"Open-[":                {"[", openToken, "["},
		"Open-{":                {"{", openToken, "{"},
		"Close-)":               {")", closeToken, ")"},
		"Close-]":               {"]", closeToken, "]"},
		"Close-}":               {"}", closeToken, "}"},
		"Comma":                 {",", commaToken, ","},
		"Begin":                 {":<", beginToken, ":<"},
		"End":                   {">:", endToken, ">:"},
		"Int":                   {"1234", intToken, "1234"},
		"Float":                 {"12.34", floatToken, "12.34"},
		"String-plain":          {`"abcd"`, stringToken, `"abcd"`},
		"String-escape":         {`"a\nb"`, stringToken, `"a\nb"`},
		"String-escaped-quote":  {`"a\"b"`, stringToken, `"a\"b"`},
		"String-escaped-slash":  {`"a\\"`, stringToken, `"a\\"`},
		"String-newline":        {"\"a\nb\"", stringToken, "\"a\nb\""},
		"Error-=":               {"=", badToken, "="},
		"Error-unclosed-string": {`"abcd`, badToken, `"abcd`},
		"Space":                 {" \t abcd \t ", wordToken, "abcd"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			ch := make(chan token, 100) // large buffer so failures complete
			lex(bufio.NewReader(strings.NewReader(c.text)), ch)
			tok, ok := <-ch
			if !ok {
				t.Fatal("no token lexed")
			}
			if tok.Kind != c.kind {
				t.Errorf("%q lexed as wrong kind: wanted %v, got %v", c.text, c.kind, tok.Kind)
			}
			if tok.Value != c.val {
				t.Errorf("%q lexed with wrong text: wanted %q, got %q", c.text, c.val, tok.Value)
			}
			tok, ok = <-ch
			if ok {
				t.Errorf("lexed extra token %v", tok)
			}
		})
	}
}

// TestLexMulti tests that the lexer obtains the correct sequences of token
// kinds.
func TestLexMulti(t *testing.T) {
	cases := map[string]struct {
		text  string
		kinds []tokenKind
	}{
		"Words":          {"a b c", []tokenKind{wordToken, wordToken, wordToken}},
		"Assign":         {"x squanch 1", []tokenKind{wordToken, wordToken, intToken}},
		"Newlines":       {"a\n\nb", []tokenKind{wordToken, newlineToken, newlineToken, wordToken}},
		"Block":          {"while rick :<\n>:", []tokenKind{wordToken, wordToken, beginToken, newlineToken, endToken}},
		"Index":          {"x[1]", []tokenKind{wordToken, openToken, intToken, closeToken}},
		"Call":           {"f(a, 2.5)", []tokenKind{wordToken, openToken, wordToken, commaToken, floatToken, closeToken}},
		"Negative":       {"-3", []tokenKind{opToken, intToken}},
		"Print!":         {"got! x", []tokenKind{wordToken, opToken, wordToken}},
		"Shift":          {"(a schwift> b)", []tokenKind{openToken, wordToken, opToken, wordToken, closeToken}},
		"Shift-left":     {"(a <schwift b)", []tokenKind{openToken, wordToken, opToken, wordToken, closeToken}},
		"Schwift-begin":  {"schwift>:", []tokenKind{wordToken, endToken}},
		"Multidot":       {"1.2.3", []tokenKind{floatToken, badToken}},
		"Int-dot":        {"1.", []tokenKind{intToken, badToken}},
		"Idents-Spaces":  {"a b  c \t d", []tokenKind{wordToken, wordToken, wordToken, wordToken}},
		"Spaces":         {" \t ", []tokenKind{}},
		"Bad-stops":      {"a @ b", []tokenKind{wordToken, badToken}},
		"Eval":           {"{x}", []tokenKind{openToken, wordToken, closeToken}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			ch := make(chan token)
			go lex(bufio.NewReader(strings.NewReader(c.text)), ch)
			i := 0
			for tok := range ch {
				if i >= len(c.kinds) {
					t.Errorf("extra token %d: %v", i, tok)
				} else if tok.Kind != c.kinds[i] {
					t.Errorf("incorrect token %d: wanted %v, got %v", i, c.kinds[i], tok.Kind)
				}
				i++
			}
			if i < len(c.kinds) {
				t.Errorf("too few tokens: wanted %d, got %d", len(c.kinds), i)
			}
		})
	}
}

// TestLexPositions tests that tokens carry their lines, columns, and offsets.
func TestLexPositions(t *testing.T) {
	ch := make(chan token)
	go lex(bufio.NewReader(strings.NewReader("x squanch 1\n  y")), ch)
	want := []token{
		{Kind: wordToken, Value: "x", Off: 0, End: 1, Line: 1, Col: 1},
		{Kind: wordToken, Value: "squanch", Off: 2, End: 9, Line: 1, Col: 3},
		{Kind: intToken, Value: "1", Off: 10, End: 11, Line: 1, Col: 11},
		{Kind: newlineToken, Value: "\n", Off: 11, End: 12, Line: 1, Col: 12},
		{Kind: wordToken, Value: "y", Off: 14, End: 15, Line: 2, Col: 3},
	}
	i := 0
	for tok := range ch {
		if i < len(want) && tok != want[i] {
			t.Errorf("token %d: wanted %+v, got %+v", i, want[i], tok)
		}
		i++
	}
	if i != len(want) {
		t.Errorf("wrong number of tokens: wanted %d, got %d", len(want), i)
	}
}
