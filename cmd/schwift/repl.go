package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/schwift"
)

const (
	ps1 = "schwift> "
	ps2 = "     ..> "
)

// repl reads and runs statements from the terminal until end of input. Every
// statement runs in the same state, so variables and functions persist.
func (it *interp) repl() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := it.cfg.HistoryPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			f, err := os.Create(hist)
			if err != nil {
				it.log.Warn("saving history", slog.String("file", hist), slog.Any("error", err))
				return
			}
			ln.WriteHistory(f)
			f.Close()
		}()
	}

	s, err := it.newState(nil, nil)
	if err != nil {
		it.report(schwift.BuiltinsLabel, err)
		return 1
	}
	for n := 1; ; n++ {
		src, ok := readProgram(ln)
		if !ok {
			fmt.Fprintln(it.out)
			return 0
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		label := fmt.Sprintf("<repl %d>", n)
		it.rep.AddSource(label, src)
		if err := s.RunSource(strings.NewReader(src), label); err != nil {
			it.report(label, err)
		}
	}
}

// readProgram reads lines until they form a complete program, or at least
// until they fail to parse for some reason other than ending too soon. ok is
// false at the end of input.
func readProgram(ln *liner.State) (src string, ok bool) {
	var b strings.Builder
	for {
		p := ps1
		if b.Len() > 0 {
			p = ps2
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !incomplete(b.String()) {
			return b.String(), true
		}
	}
}

// incomplete reports whether src fails to parse only because it ends in the
// middle of a statement.
func incomplete(src string) bool {
	_, err := schwift.Parse(strings.NewReader(src), "<repl>")
	var pe *schwift.ParseError
	return errors.As(err, &pe) && pe.Found == "end of input"
}
