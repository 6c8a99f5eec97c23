//go:build !nounsafe
// +build !nounsafe

package schwift

import "unsafe"

// Reading the interface's data word directly avoids reflect. Library
// implementations are expected to be pointers, so the data word is the
// handle's address.

// libraryID returns the address of a library's handle.
func libraryID(lib Library) uintptr {
	return (*[2]uintptr)(unsafe.Pointer(&lib))[1]
}
