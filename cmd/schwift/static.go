package main

// Microverses linked into the interpreter. These load by name even when
// plugins are unavailable or disabled.
import (
	_ "github.com/zephyrtronium/schwift/addons/matrix"
	_ "github.com/zephyrtronium/schwift/coreext"
)
