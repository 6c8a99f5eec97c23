package schwift

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// A token is a single lexical element.
type token struct {
	Kind  tokenKind
	Value string
	Err   error

	// Off and End are the byte offsets of the token's first byte and of the
	// byte following it.
	Off, End  int
	Line, Col int
}

type tokenKind int

const (
	badToken tokenKind = iota

	newlineToken // \n or \r\n
	wordToken    // identifier or keyword
	intToken     // 1234
	floatToken   // 12.34
	stringToken  // "string"
	openToken    // open bracket: (, [, {
	closeToken   // close bracket: ), ], }
	commaToken   // comma
	opToken      // + - * / % == ! <schwift schwift>
	beginToken   // :<
	endToken     // >:
	eofToken     // end of input; never sent by the lexer
)

// pos is a position in the source.
type pos struct {
	off, line, col int
}

// adv returns the position n bytes and runes further along the same line.
func (p pos) adv(n int) pos {
	return pos{off: p.off + n, line: p.line, col: p.col + n}
}

// lexFn is a lexer state function. Each lexFn lexes a token, sends it on the
// supplied channel, and returns the next lexFn to use.
type lexFn func(src *bufio.Reader, tokens chan<- token, p pos) (lexFn, pos)

// lex converts a source into a stream of tokens.
func lex(src *bufio.Reader, tokens chan<- token) {
	state := eatSpace
	p := pos{line: 1, col: 1}
	for state != nil {
		state, p = state(src, tokens, p)
	}
	close(tokens)
}

// accept appends the next run of characters in src which satisfy the predicate
// to b. Returns b after appending, the first rune which did not satisfy the
// predicate, and any error that occurred. If there was no such error, the
// last rune is unread.
func accept(src *bufio.Reader, predicate func(rune) bool, b []byte) ([]byte, rune, error) {
	r, _, err := src.ReadRune()
	for {
		if err != nil {
			return b, r, err
		}
		if !predicate(r) {
			break
		}
		b = append(b, string(r)...)
		r, _, err = src.ReadRune()
	}
	src.UnreadRune()
	return b, r, nil
}

// lexsend is a shortcut for sending a token with error checking. It returns
// eatSpace as the default lexing function.
func lexsend(err error, tokens chan<- token, good token) lexFn {
	if err != nil && err != io.EOF {
		good.Kind = badToken
		good.Err = err
	}
	tokens <- good
	if err != nil {
		return nil
	}
	return eatSpace
}

// single sends a token made of the n bytes at p, which have already been
// read.
func single(tokens chan<- token, kind tokenKind, text string, p pos) (lexFn, pos) {
	e := p.adv(len(text))
	tokens <- token{Kind: kind, Value: text, Off: p.off, End: e.off, Line: p.line, Col: p.col}
	return eatSpace, e
}

// follows reports whether the bytes after the next one in src are s. The
// reader is not advanced.
func follows(src *bufio.Reader, s string) bool {
	peek, _ := src.Peek(1 + len(s))
	return len(peek) == 1+len(s) && string(peek[1:]) == s
}

func isWordStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isWordPart(r rune) bool {
	return isWordStart(r) || '0' <= r && r <= '9'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// eatSpace consumes space and decides the next lexFn to use.
func eatSpace(src *bufio.Reader, tokens chan<- token, p pos) (lexFn, pos) {
	eaten, r, err := accept(src, func(r rune) bool { return r == ' ' || r == '\t' || r == '\r' }, nil)
	p = p.adv(len(eaten))
	if err != nil {
		if err != io.EOF {
			tokens <- token{Kind: badToken, Err: err, Off: p.off, End: p.off, Line: p.line, Col: p.col}
		}
		return nil, p
	}
	switch {
	case r == '\n':
		src.ReadRune()
		tokens <- token{Kind: newlineToken, Value: "\n", Off: p.off, End: p.off + 1, Line: p.line, Col: p.col}
		return eatSpace, pos{off: p.off + 1, line: p.line + 1, col: 1}
	case isWordStart(r):
		return lexWord, p
	case isDigit(r):
		return lexNumber, p
	case r == '"':
		return lexString, p
	case strings.ContainsRune("([{", r):
		src.ReadRune()
		return single(tokens, openToken, string(r), p)
	case strings.ContainsRune(")]}", r):
		src.ReadRune()
		return single(tokens, closeToken, string(r), p)
	case r == ',':
		src.ReadRune()
		return single(tokens, commaToken, ",", p)
	case r == ':' && follows(src, "<"):
		src.Discard(2)
		return single(tokens, beginToken, ":<", p)
	case r == '>' && follows(src, ":"):
		src.Discard(2)
		return single(tokens, endToken, ">:", p)
	case r == '<' && follows(src, "schwift"):
		src.Discard(8)
		return single(tokens, opToken, "<schwift", p)
	case r == '=' && follows(src, "="):
		src.Discard(2)
		return single(tokens, opToken, "==", p)
	case strings.ContainsRune("+-*/%!", r):
		src.ReadRune()
		return single(tokens, opToken, string(r), p)
	}
	tokens <- token{
		Kind:  badToken,
		Value: string(r),
		Err:   fmt.Errorf("lexer encountered invalid character %q", r),
		Off:   p.off,
		End:   p.off + utf8.RuneLen(r),
		Line:  p.line,
		Col:   p.col,
	}
	return nil, p
}

// lexWord lexes an identifier or keyword, which consists of a-z, A-Z, 0-9,
// and _, not starting with a digit. The word schwift immediately followed by
// > is the right shift operator.
func lexWord(src *bufio.Reader, tokens chan<- token, p pos) (lexFn, pos) {
	b, r, err := accept(src, isWordPart, nil)
	if err == nil && r == '>' && string(b) == "schwift" {
		if peek, _ := src.Peek(2); len(peek) < 2 || peek[1] != ':' {
			src.ReadRune()
			b = append(b, '>')
		}
	}
	e := p.adv(len(b))
	kind := wordToken
	if string(b) == "schwift>" {
		kind = opToken
	}
	return lexsend(err, tokens, token{Kind: kind, Value: string(b), Off: p.off, End: e.off, Line: p.line, Col: p.col}), e
}

// lexNumber lexes an integer or a float. Floats need digits on both sides of
// the point.
func lexNumber(src *bufio.Reader, tokens chan<- token, p pos) (lexFn, pos) {
	b, r, err := accept(src, isDigit, nil)
	kind := intToken
	if err == nil && r == '.' {
		if peek, _ := src.Peek(2); len(peek) == 2 && isDigit(rune(peek[1])) {
			src.ReadRune()
			b = append(b, '.')
			b, _, err = accept(src, isDigit, b)
			kind = floatToken
		}
	}
	e := p.adv(len(b))
	return lexsend(err, tokens, token{Kind: kind, Value: string(b), Off: p.off, End: e.off, Line: p.line, Col: p.col}), e
}

// lexString lexes a string literal. The token's value keeps the quotes and
// escapes. Strings may span lines.
func lexString(src *bufio.Reader, tokens chan<- token, p pos) (lexFn, pos) {
	b := make([]byte, 1, 16)
	src.Read(b)
	e := p.adv(1)
	ps := false
	for {
		r, n, err := src.ReadRune()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			tokens <- token{Kind: badToken, Value: string(b), Err: err, Off: p.off, End: e.off, Line: p.line, Col: p.col}
			return nil, e
		}
		b = append(b, string(r)...)
		e.off += n
		e.col++
		if r == '\n' {
			e.line++
			e.col = 1
		}
		if r == '\\' {
			ps = !ps
		} else if r == '"' && !ps {
			return lexsend(nil, tokens, token{Kind: stringToken, Value: string(b), Off: p.off, End: e.off, Line: p.line, Col: p.col}), e
		} else {
			ps = false
		}
	}
}
