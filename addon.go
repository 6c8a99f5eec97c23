package schwift

import (
	"fmt"
	"log/slog"
	"plugin"
	"sort"
	"sync"
	"unicode"
	"unicode/utf8"
)

// ABICompat is the version of the native function interface. A microverse
// must export the same version under ABICompatSymbol to be loaded.
const ABICompat uint32 = 1

// ABICompatSymbol is the name of the symbol holding a microverse's ABI
// version. In a Go plugin it is a package-level uint32 variable:
//
//	var SchwiftABICompat uint32 = schwift.ABICompat
const ABICompatSymbol = "SchwiftABICompat"

// Library is an opened microverse.
//
// Microverses in schwift are separate packages, which may be linked
// dynamically (on platforms supporting -buildmode=plugin) or statically. A
// dynamically linked microverse is a Go plugin exporting ABICompatSymbol and
// one function per name a program binds from it. Each function must have the
// type func([]schwift.Value) (schwift.Value, error), or be a variable of type
// NativeFunc. Because Go exports only capitalised names, a program binding f
// finds the symbol f if it exists and F otherwise. Statically linked
// microverses are Modules registered with RegisterModule, usually from an
// init function.
//
// Libraries are never closed. Implementations should be pointers so that a
// library opened twice is retained once.
type Library interface {
	// Lookup returns the symbol with the given name.
	Lookup(symbol string) (interface{}, error)
}

// Loader opens microverses by path.
type Loader interface {
	Open(path string) (Library, error)
}

// PluginLoader opens microverses as Go plugins.
type PluginLoader struct{}

// Open opens the plugin at path. Go never unloads plugins, and opening the
// same path again returns the same library.
func (PluginLoader) Open(path string) (Library, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return (*pluginLibrary)(p), nil
}

type pluginLibrary plugin.Plugin

func (l *pluginLibrary) Lookup(symbol string) (interface{}, error) {
	return (*plugin.Plugin)(l).Lookup(symbol)
}

// Module is a statically linked microverse.
type Module struct {
	// Name is the path by which programs load the module.
	Name string
	// ABI is the module's ABI version. Zero means the module does not
	// export one.
	ABI uint32
	// Funcs maps function names to implementations.
	Funcs map[string]NativeFunc
}

// NewModule creates a Module for the current ABI.
func NewModule(name string, funcs map[string]NativeFunc) *Module {
	return &Module{Name: name, ABI: ABICompat, Funcs: funcs}
}

// Lookup returns a pointer to the module's ABI version or one of its
// functions.
func (m *Module) Lookup(symbol string) (interface{}, error) {
	if symbol == ABICompatSymbol {
		if m.ABI == 0 {
			return nil, fmt.Errorf("module %s: symbol %s not found", m.Name, symbol)
		}
		return &m.ABI, nil
	}
	f, ok := m.Funcs[symbol]
	if !ok {
		return nil, fmt.Errorf("module %s: symbol %s not found", m.Name, symbol)
	}
	return f, nil
}

var (
	modulesMu sync.RWMutex
	modules   = map[string]*Module{}
)

// RegisterModule makes a statically linked microverse available to every VM
// under its name. Registered modules are found before any Loader is tried.
// It panics if a module with the same name is already registered.
func RegisterModule(m *Module) {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	if _, dup := modules[m.Name]; dup {
		panic("schwift: RegisterModule called twice for module " + m.Name)
	}
	modules[m.Name] = m
}

// LookupModule returns the registered module with the given name, or nil.
func LookupModule(name string) *Module {
	modulesMu.RLock()
	defer modulesMu.RUnlock()
	return modules[name]
}

// Modules returns the names of all registered modules in sorted order.
func Modules() []string {
	modulesMu.RLock()
	defer modulesMu.RUnlock()
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// open finds a registered module or opens a microverse with the VM's Loader.
func (vm *VM) open(path string) (Library, error) {
	if m := LookupModule(path); m != nil {
		return m, nil
	}
	if vm.Loader == nil {
		return nil, fmt.Errorf("no registered microverse named %q", path)
	}
	return vm.Loader.Open(path)
}

// loadMicroverse opens a microverse, checks its ABI version, and binds each
// function named in the statement's block. Nothing is bound unless every
// function resolves.
func (s *State) loadMicroverse(k *MicroverseStmt) error {
	lib, err := s.VM.open(k.Path)
	if err != nil {
		return &Error{Kind: LoadError, Name: k.Path, Err: err}
	}
	sym, err := lib.Lookup(ABICompatSymbol)
	if err != nil {
		return &Error{Kind: MissingAbiCompat, Name: k.Path, Err: err}
	}
	var abi uint32
	switch v := sym.(type) {
	case *uint32:
		abi = *v
	case uint32:
		abi = v
	default:
		return &Error{Kind: MissingAbiCompat, Name: k.Path, Err: fmt.Errorf("%s has type %T, not uint32", ABICompatSymbol, sym)}
	}
	if abi != ABICompat {
		return &Error{Kind: IncompatibleAbi, Name: k.Path, Version: abi}
	}
	funcs := make([]*NativeFunction, 0, len(k.Funcs))
	for i := range k.Funcs {
		stmt := &k.Funcs[i]
		call, ok := stmt.Kind.(*CallStmt)
		if !ok {
			return &Error{Kind: NonFunctionCallInDylib, Name: k.Path, Stmt: stmt}
		}
		f, err := lookupNative(lib, call.Name)
		if err != nil {
			return &Error{Kind: LoadError, Name: call.Name, Err: err}
		}
		funcs = append(funcs, NewNativeFunction(call.Name, f))
	}
	s.VM.retain(lib)
	for _, f := range funcs {
		s.syms.set(f.Name, f)
	}
	s.VM.Log.Debug("microverse loaded",
		slog.String("path", k.Path),
		slog.Int("function-count", len(funcs)))
	return nil
}

// lookupNative resolves a native function by name, falling back to the
// capitalised name.
func lookupNative(lib Library, name string) (NativeFunc, error) {
	sym, err := lib.Lookup(name)
	if err != nil {
		r, n := utf8.DecodeRuneInString(name)
		if up := unicode.ToUpper(r); up != r {
			sym, err = lib.Lookup(string(up) + name[n:])
		}
		if err != nil {
			return nil, err
		}
	}
	var fn NativeFunc
	switch f := sym.(type) {
	case NativeFunc:
		fn = f
	case *NativeFunc:
		if f != nil {
			fn = *f
		}
	case func([]Value) (Value, error):
		fn = f
	case *func([]Value) (Value, error):
		if f != nil {
			fn = *f
		}
	default:
		return nil, fmt.Errorf("symbol %s has type %T, not a native function", name, sym)
	}
	if fn == nil {
		return nil, fmt.Errorf("symbol %s is a nil function", name)
	}
	return fn, nil
}

// havePlugins indicates whether Go's plugin system is available on the current
// system. Currently this should become true on Linux or Darwin with cgo
// enabled, but the cgo requirement might drop in the future (unlikely) and more
// platforms might be added (likely).
var havePlugins = false

func init() {
	_, err := plugin.Open("/dev/null")
	if err == nil || err.Error() != "plugin: not implemented" {
		havePlugins = true
	}
}

// HavePlugins reports whether microverses can be loaded as Go plugins.
func HavePlugins() bool {
	return havePlugins
}
