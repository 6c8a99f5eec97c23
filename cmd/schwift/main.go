// Command schwift runs schwift programs.
//
// Usage:
//
//	schwift [flags] [program.y [args...]]
//
// The arguments after the program are bound to the list argv. A program whose
// name ends in .yc, or any program when -compiled is given, is read as the
// output of schwiftc. Without a program, schwift starts a REPL if standard
// input is a terminal and otherwise reads the program from standard input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/zephyrtronium/schwift"
	"github.com/zephyrtronium/schwift/internal"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("schwift", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "configuration file (default $"+internal.ConfigEnv+" or "+internal.ConfigFile+")")
	verbose := fs.Bool("v", false, "log function calls and microverse loads")
	watch := fs.Bool("watch", false, "run the program again each time its file changes")
	compiled := fs.Bool("compiled", false, "read the program as compiled by schwiftc (implied by a .yc extension)")
	static := fs.Bool("static", false, "load only microverses linked into the interpreter")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := internal.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "schwift:", err)
		return 2
	}
	if *static {
		cfg.StaticOnly = true
	}
	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	it := &interp{cfg: cfg, log: log, rep: &internal.Reporter{}, out: os.Stdout}
	if cfg.Quotes {
		it.rep.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	it.rep.AddSource(schwift.BuiltinsLabel, schwift.BuiltinsSource())

	if fs.NArg() == 0 {
		if isTerminal(os.Stdin) {
			return it.repl()
		}
		if err := it.runStdin(); err != nil {
			it.report("<stdin>", err)
			return 1
		}
		return 0
	}

	path, argv := fs.Arg(0), fs.Args()[1:]
	isCompiled := *compiled || strings.HasSuffix(path, ".yc")
	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := it.watch(ctx, path, isCompiled, argv); err != nil {
			fmt.Fprintln(os.Stderr, "schwift:", err)
			return 1
		}
		return 0
	}
	if err := it.runFile(path, isCompiled, argv); err != nil {
		it.report(path, err)
		return 1
	}
	return 0
}

// interp runs programs according to a configuration.
type interp struct {
	cfg internal.Config
	log *slog.Logger
	rep *internal.Reporter
	out io.Writer
}

// newState creates a state reading from stdin with argv bound, the builtins
// defined, and the preloaded files run. A nil stdin is the process's.
func (it *interp) newState(stdin io.Reader, argv []string) (*schwift.State, error) {
	vm := schwift.NewVM(stdin, it.out)
	vm.Log = it.log
	if it.cfg.StaticOnly || !schwift.HavePlugins() {
		vm.Loader = nil
	}
	s := vm.NewState()
	s.SetArgs(argv)
	if it.cfg.Builtins {
		if err := s.RunBuiltins(); err != nil {
			return nil, err
		}
	}
	for _, path := range it.cfg.Preload {
		src, err := schwift.ReadSource(path)
		if err != nil {
			return nil, err
		}
		it.rep.AddSource(path, src)
		if err := s.RunSource(strings.NewReader(src), path); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// load reads a program from a source or compiled file.
func (it *interp) load(path string, compiled bool) ([]schwift.Statement, error) {
	if compiled {
		f, err := os.Open(path)
		if err != nil {
			return nil, &schwift.Error{Kind: schwift.IOError, Name: path, Err: err}
		}
		defer f.Close()
		return schwift.ReadCompiled(f)
	}
	src, err := schwift.ReadSource(path)
	if err != nil {
		return nil, err
	}
	it.rep.AddSource(path, src)
	return schwift.Parse(strings.NewReader(src), path)
}

// runFile runs the program at path in a fresh state.
func (it *interp) runFile(path string, compiled bool, argv []string) error {
	prog, err := it.load(path, compiled)
	if err != nil {
		return err
	}
	s, err := it.newState(nil, argv)
	if err != nil {
		return err
	}
	return s.RunProgram(prog)
}

// runStdin runs a program read from standard input. The program has no
// input of its own.
func (it *interp) runStdin() error {
	b, err := io.ReadAll(schwift.DecodeSource(os.Stdin))
	if err != nil {
		return &schwift.Error{Kind: schwift.IOError, Name: "<stdin>", Err: err}
	}
	src := string(b)
	it.rep.AddSource("<stdin>", src)
	prog, err := schwift.Parse(strings.NewReader(src), "<stdin>")
	if err != nil {
		return err
	}
	s, err := it.newState(strings.NewReader(""), nil)
	if err != nil {
		return err
	}
	return s.RunProgram(prog)
}

// report describes a failed program.
func (it *interp) report(label string, err error) {
	if werr := it.rep.Report(it.out, label, err); werr != nil {
		it.log.Error("writing error report", slog.Any("error", errors.Join(err, werr)))
	}
}
