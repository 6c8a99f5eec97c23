// Package text provides the text microverse, which changes the case of
// strings and normalizes them.
package text

import (
	"fmt"

	"github.com/zephyrtronium/schwift"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

func init() {
	schwift.RegisterModule(schwift.NewModule("text", map[string]schwift.NativeFunc{
		"upper":     caser("upper", cases.Upper(language.Und)),
		"lower":     caser("lower", cases.Lower(language.Und)),
		"title":     caser("title", cases.Title(language.Und)),
		"normalize": normalize,
	}))
}

// caser creates a text function applying a case mapping to its one string
// argument.
func caser(name string, c cases.Caser) schwift.NativeFunc {
	return func(args []schwift.Value) (schwift.Value, error) {
		if err := schwift.CheckArgs(name, args, 1); err != nil {
			return nil, err
		}
		s, err := schwift.AsStr(args[0])
		if err != nil {
			return nil, err
		}
		return schwift.Str(c.String(s)), nil
	}
}

var forms = map[string]norm.Form{
	"NFC":  norm.NFC,
	"NFD":  norm.NFD,
	"NFKC": norm.NFKC,
	"NFKD": norm.NFKD,
}

// normalize is a text function.
//
// normalize(s, form) returns s in the Unicode normalization form named by
// form, one of "NFC", "NFD", "NFKC", or "NFKD".
func normalize(args []schwift.Value) (schwift.Value, error) {
	if err := schwift.CheckArgs("normalize", args, 2); err != nil {
		return nil, err
	}
	s, err := schwift.AsStr(args[0])
	if err != nil {
		return nil, err
	}
	name, err := schwift.AsStr(args[1])
	if err != nil {
		return nil, err
	}
	f, ok := forms[name]
	if !ok {
		return nil, fmt.Errorf("unknown normalization form %q", name)
	}
	return schwift.Str(f.String(s)), nil
}
