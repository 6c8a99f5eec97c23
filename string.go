package schwift

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// MaxStrLen is the length in bytes of the longest string repetition can
// produce.
const MaxStrLen = math.MaxInt32

// AsStr returns the value of a string.
func AsStr(v Value) (string, error) {
	if s, ok := v.(Str); ok {
		return string(s), nil
	}
	return "", unexpected(TypeStr, v)
}

// Repeat returns n copies of s. The first copy is s itself and n-1 more are
// appended, so s * 1 is s. Counts less than one and the empty string produce
// the empty string. A result longer than MaxStrLen bytes is an
// InvalidBinaryExpression error.
func (s Str) Repeat(n int64) (Str, error) {
	if n <= 0 || s == "" {
		return "", nil
	}
	if n > MaxStrLen/int64(len(s)) {
		err := badBinary(Multiply, s, Int(n)).(*Error)
		err.Err = fmt.Errorf("result would exceed %d bytes", MaxStrLen)
		return "", err
	}
	var b strings.Builder
	b.Grow(len(s) * int(n))
	b.WriteString(string(s))
	for i := int64(1); i < n; i++ {
		b.WriteString(string(s))
	}
	return Str(b.String()), nil
}

// Len returns the number of Unicode scalar values in s.
func (s Str) Len() int {
	return utf8.RuneCountInString(string(s))
}

// At returns the character at index i as a single-character string. Indices
// count Unicode scalar values, not bytes.
func (s Str) At(i int64) (Value, error) {
	n := s.Len()
	if i < 0 || i >= int64(n) {
		return nil, &Error{Kind: IndexOutOfBounds, Len: n, Index: i}
	}
	var k int64
	for _, r := range string(s) {
		if k == i {
			return Str(string(r)), nil
		}
		k++
	}
	panic("schwift: rune index disagrees with rune count")
}

// unescape interprets the escapes allowed in string literals: \n, \t, \\,
// and \". Any other backslash is kept literally.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte(c)
			continue
		}
		i++
	}
	return b.String()
}
