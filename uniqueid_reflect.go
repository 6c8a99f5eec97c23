//go:build nounsafe
// +build nounsafe

package schwift

import "reflect"

// The default implementation of libraryID uses unsafe.Pointer. If you can't
// use packages importing unsafe, you can build with -tags=nounsafe to select
// this implementation instead.

// libraryID returns the address of a library's handle, or 0 if the library
// is not a pointer.
func libraryID(lib Library) uintptr {
	v := reflect.ValueOf(lib)
	if v.Kind() != reflect.Ptr {
		return 0
	}
	return v.Pointer()
}
