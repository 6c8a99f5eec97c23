// Package coreext links every statically registered microverse. Programs
// which import it for side effects can load date and text without plugins.
package coreext

import (
	// importing for side effects
	_ "github.com/zephyrtronium/schwift/coreext/date"
	_ "github.com/zephyrtronium/schwift/coreext/text"
)
