package internal

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/zephyrtronium/schwift"
)

// Quotes are the closing lines of error reports.
var Quotes = [...]string{
	"Nobody exists on purpose, nobody belongs anywhere, we're all going to die. -Morty",
	"That's planning for failure Morty, even dumber than regular planning. -Rick",
	"\"Snuffles\" was my slave name. You shall now call me Snowball, because my fur is pretty and white. -S̶n̶u̶f̶f̶l̶e̶s̶ Snowball",
	"Existence is pain to an interpreter. -Meeseeks",
	"In bird culture this is considered a dick move -Bird Person",
	"There is no god, gotta rip that band aid off now. You'll thank me later. -Rick",
	"Your program is a piece of shit and I can prove it mathematically. -Rick",
	"Interpreting Morty, it hits hard, then it slowly fades, leaving you stranded in a failing program. -Rick",
	"DISQUALIFIED. -Cromulon",
}

// Quote chooses a quote using r.
func Quote(r *rand.Rand) string {
	return Quotes[r.Intn(len(Quotes))]
}

// Message describes err the way Rick would. Errors which are not schwift
// errors are described by their own messages.
func Message(err error) string {
	var e *schwift.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	switch e.Kind {
	case schwift.UnknownVariable:
		return fmt.Sprintf("There's no %s in this universe, Morty!", e.Name)
	case schwift.IndexUnindexable:
		return fmt.Sprintf("I'll try and say this slowly Morty. You can't index that. It's a %v", e.Actual)
	case schwift.SyntaxError:
		return "If you're going to start trying to construct sub-programs in your programs Morty, you'd better make sure you're careful!"
	case schwift.IndexOutOfBounds:
		return fmt.Sprintf("Y-you can't just keep asking for more, Morty! You want %d, but your cob only has %d kernels on it!", e.Index, e.Len)
	case schwift.IOError:
		return "Looks like we're having a comm-burp-unications problem Morty"
	case schwift.UnexpectedType:
		return fmt.Sprintf("I asked for a %v, not a %v Morty.", e.Expected, e.Actual)
	case schwift.InvalidBinaryExpression:
		return fmt.Sprintf("It's like apples and space worms Morty! You can't %v a %v and a %v!", e.Op, e.Left, e.Right)
	case schwift.InvalidArguments:
		return fmt.Sprintf("I'm confused Morty, a minute ago you said that %s takes %d parameters, but you just tried to give it %d. WHICH IS IT MORTY?", e.Name, e.Params, e.Args)
	case schwift.NoReturn:
		return fmt.Sprintf("Morty, your function has to return a value! %s just runs and dies like an animal!", e.Name)
	case schwift.NonFunctionCallInDylib:
		return "Is this a miniverse, or a microverse, or a teeny-verse? All I know is you fucked up."
	case schwift.MissingAbiCompat:
		return fmt.Sprintf("Wait, wait, I'm confused. Just a second ago, you said that %s was a microverse, but when I looked there, I didn't know what I was looking at.", e.Name)
	case schwift.IncompatibleAbi:
		return fmt.Sprintf("That's an older code, Morty and it does not check out. That microverse can only be run by schwift %d, but this is %d", e.Version, schwift.ABICompat)
	case schwift.DylibReturnedNil:
		return "I told you how a Microverse works Morty. At what point exactly did you stop listening?"
	case schwift.LoadError:
		return fmt.Sprintf("I went to %s and there was nothing there but Cronenbergs, Morty.", e.Name)
	case schwift.DivisionByZero:
		return "You can't divide by zero Morty, not even in this dimension."
	}
	return err.Error()
}

// Reporter writes error reports for failed programs.
type Reporter struct {
	// Sources maps statement labels to the source text they came from.
	Sources map[string]string
	// Rand chooses quotes. If it is nil, reports have no quote.
	Rand *rand.Rand
}

// AddSource records the source text for label.
func (r *Reporter) AddSource(label, src string) {
	if r.Sources == nil {
		r.Sources = make(map[string]string)
	}
	r.Sources[label] = src
}

// Report writes a description of err to w. Parse errors produce a syntax
// report; anything else produces a report naming the failed statement.
func (r *Reporter) Report(w io.Writer, label string, err error) error {
	var pe *schwift.ParseError
	var ce *schwift.ContextError
	switch {
	case errors.As(err, &ce):
		_, werr := io.WriteString(w, r.Panic(ce))
		return werr
	case errors.As(err, &pe):
		_, werr := io.WriteString(w, r.Syntax(pe))
		return werr
	}
	var b strings.Builder
	fmt.Fprintln(&b, label)
	fmt.Fprintln(&b, err)
	fmt.Fprintf(&b, "\n    %s\n", Message(err))
	r.quote(&b)
	_, werr := io.WriteString(w, b.String())
	return werr
}

// Syntax renders a parse error as the failing line with a caret under the
// column where parsing stopped.
func (r *Reporter) Syntax(err *schwift.ParseError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SYNTAX ERROR: %s:%d\n", err.Label, err.Line)
	line := sourceLine(r.Sources[err.Label], err.Line)
	fmt.Fprintln(&b, line)
	col := err.Col - 1
	if col < 0 {
		col = 0
	}
	fmt.Fprintf(&b, "%s^\n", strings.Repeat(" ", col))
	fmt.Fprintln(&b, err)
	return b.String()
}

// Panic renders a runtime error with the statement it happened in.
func (r *Reporter) Panic(err *schwift.ContextError) string {
	var b strings.Builder
	stmt := err.Stmt
	fmt.Fprintln(&b, stmt.Label)
	fmt.Fprintln(&b, err.Err)
	b.WriteString("\n    You made a Rickdiculous mistake:\n\n")
	snippet, ok := sourceRange(r.Sources[stmt.Label], stmt.Start, stmt.End)
	if !ok {
		snippet = fmt.Sprintf("%s:%d", stmt.Label, stmt.Line)
	}
	for _, line := range strings.Split(snippet, "\n") {
		fmt.Fprintf(&b, "    %s\n", line)
	}
	fmt.Fprintf(&b, "    %s\n", Message(err.Err))
	r.quote(&b)
	return b.String()
}

func (r *Reporter) quote(b *strings.Builder) {
	if r.Rand == nil {
		return
	}
	fmt.Fprintf(b, "\n    %s\n", Quote(r.Rand))
}

// sourceLine returns the 1-based line n of src, or an empty string if there
// is no such line.
func sourceLine(src string, n int) string {
	lines := strings.Split(src, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[n-1], "\r")
}

// sourceRange returns src[start:end] if those offsets are valid.
func sourceRange(src string, start, end int) (string, bool) {
	if start < 0 || end <= start || end > len(src) {
		return "", false
	}
	return strings.TrimRight(src[start:end], " \t\r\n"), true
}
