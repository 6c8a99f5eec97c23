// Command schwiftc compiles schwift programs.
//
// Usage:
//
//	schwiftc [-o output] [-dump] program.y
//
// The compiled program is written to program.yc unless -o names another file,
// and can be run with schwift. With -dump, the parsed program is also printed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/zephyrtronium/schwift"
	"github.com/zephyrtronium/schwift/internal"
)

func main() {
	var out string
	var dump bool
	var depth int
	flag.StringVar(&out, "o", "", "output file (default the program with c appended)")
	flag.BoolVar(&dump, "dump", false, "print the parsed program")
	flag.IntVar(&depth, "depth", 0, "maximum depth of -dump output; 0 is unlimited")
	flag.Parse()
	if flag.NArg() != 1 {
		fail("usage: schwiftc [-o output] [-dump] program.y")
	}
	path := flag.Arg(0)
	if out == "" {
		out = path + "c"
	}

	src, err := schwift.ReadSource(path)
	if err != nil {
		fail(err)
	}
	prog, err := schwift.Parse(strings.NewReader(src), path)
	if err != nil {
		var r internal.Reporter
		r.AddSource(path, src)
		r.Report(os.Stdout, path, err)
		os.Exit(1)
	}
	if dump {
		dumpProgram(os.Stdout, prog, depth)
	}
	if err := compile(out, prog); err != nil {
		fail(err)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// compile writes prog to the file at path.
func compile(path string, prog []schwift.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := schwift.WriteCompiled(f, prog); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// dumpProgram prints the syntax tree of prog.
func dumpProgram(w io.Writer, prog []schwift.Statement, depth int) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		MaxDepth:                depth,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	for i := range prog {
		fmt.Fprintf(w, "%s:%d\n", prog[i].Label, prog[i].Line)
		cfg.Fdump(w, prog[i].Kind)
	}
}
