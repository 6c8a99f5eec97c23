// Command schwiftfn lists the functions in Go packages which can be native
// schwift functions and prints a microverse block binding them.
//
// Usage:
//
//	schwiftfn [-match re] [-ignore re] [-path lib.so] packages...
//
// A function or variable qualifies if it is exported and assignable to
// schwift.NativeFunc. Each is declared under its name with the first letter
// lowered, which the interpreter resolves back to the exported symbol.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	var match, ignore string
	var schwift, path string
	flag.StringVar(&match, "match", ".", "include only functions matching this regular expression")
	flag.StringVar(&ignore, "ignore", "$^", "exclude functions matching this regular expression")
	flag.StringVar(&schwift, "schwift", "github.com/zephyrtronium/schwift", "import path for package schwift source code")
	flag.StringVar(&path, "path", "", "microverse path to print (default the first package's name with .so)")
	flag.Parse()
	if flag.NArg() == 0 {
		fail("usage: schwiftfn [flags] packages...")
	}
	mre, err := regexp.Compile(match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports, Fset: fset}
	pkgs, err := packages.Load(&config, append([]string{schwift}, flag.Args()...)...)
	if err != nil {
		fail("error loading packages:", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}
	fn, pkgs := getFn(pkgs)
	results := []string{}
	for _, pkg := range pkgs {
		results = append(results, find(pkg.Types.Scope(), fn, mre, ire)...)
		if path == "" {
			path = pkg.Name + ".so"
		}
	}
	sort.Strings(results)
	writeBlock(os.Stdout, path, results)
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// getFn finds the native function type in the first package, which must be
// package schwift.
func getFn(pkgs []*packages.Package) (types.Type, []*packages.Package) {
	pkg := pkgs[0].Types
	r := pkg.Scope().Lookup("NativeFunc")
	if r == nil {
		fail(pkg.Name(), "has no definition of NativeFunc")
	}
	t, ok := r.(*types.TypeName)
	if !ok {
		fail(pkg.Name(), "has incorrect definition of NativeFunc:", r)
	}
	return t.Type().Underlying(), pkgs[1:]
}

// find lists the exported functions and variables in scope which are
// assignable to fn and selected by the patterns.
func find(scope *types.Scope, fn types.Type, mre, ire *regexp.Regexp) []string {
	var r []string
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() || !mre.MatchString(name) || ire.MatchString(name) {
			continue
		}
		switch obj.(type) {
		case *types.Func, *types.Var:
		default:
			continue
		}
		if types.AssignableTo(obj.Type(), fn) {
			r = append(r, name)
		}
	}
	return r
}

// writeBlock prints a microverse statement declaring names.
func writeBlock(w io.Writer, path string, names []string) {
	fmt.Fprintf(w, "microverse %q :<\n", path)
	for _, name := range names {
		fmt.Fprintf(w, "\t%s()\n", declName(name))
	}
	fmt.Fprintln(w, ">:")
}

// declName converts a Go name to the name a program declares.
func declName(name string) string {
	return strings.ToLower(name[:1]) + name[1:]
}
