package schwift

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/zephyrtronium/contains"
)

// VM holds the resources shared by every State of one interpreter run: the
// standard streams, the logger, and the microverses loaded so far. A program
// and all the function calls it makes share one VM.
type VM struct {
	// Stdin is the source for portal gun.
	Stdin *bufio.Reader
	// Stdout receives the output of show me what you got.
	Stdout io.Writer
	// Log receives debug records of function calls and microverse loads.
	Log *slog.Logger
	// Loader opens microverses which are not registered modules. If it is
	// nil, only registered modules can be loaded.
	Loader Loader

	// libs holds every library opened by a microverse statement. Libraries
	// are never released, so native functions taken from them stay valid
	// for the life of the VM.
	libs []Library
	// libSet holds the identities of libs.
	libSet contains.Set
}

// NewVM prepares a new VM using the given standard streams. If stdin or
// stdout is nil, the process's own is used.
func NewVM(stdin io.Reader, stdout io.Writer) *VM {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &VM{
		Stdin:  bufio.NewReader(stdin),
		Stdout: stdout,
		Log:    slog.Default(),
		Loader: PluginLoader{},
	}
}

// NewState creates an empty top-level State executing on vm.
func (vm *VM) NewState() *State {
	return &State{VM: vm}
}

// retain records that lib is in use so that it is never released. Retaining
// a library more than once has no effect.
func (vm *VM) retain(lib Library) {
	id := libraryID(lib)
	if id != 0 && !vm.libSet.Add(id) {
		return
	}
	vm.libs = append(vm.libs, lib)
}

// Libraries returns the number of distinct libraries the VM has loaded.
func (vm *VM) Libraries() int {
	return len(vm.libs)
}
