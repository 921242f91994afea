package comb

import (
	"strings"
	"unicode/utf8"
)

// Input is an immutable view over the text being parsed.
// Parsers never modify it; they narrow it by returning a suffix view.
// Two views over the same text at the same offset compare equal with ==.
type Input struct {
	src string
	off int
}

// NewInput returns a view over the whole of s.
func NewInput(s string) Input {
	return Input{src: s}
}

// String returns the unconsumed text.
func (in Input) String() string {
	return in.src[in.off:]
}

// Source returns the full text the view was created from.
func (in Input) Source() string {
	return in.src
}

// Offset returns the byte offset of the view within its source.
func (in Input) Offset() int {
	return in.off
}

// Len returns the number of unconsumed bytes.
func (in Input) Len() int {
	return len(in.src) - in.off
}

// Empty reports whether all input has been consumed.
func (in Input) Empty() bool {
	return in.off >= len(in.src)
}

// HasPrefix reports whether the unconsumed text starts with s.
func (in Input) HasPrefix(s string) bool {
	return strings.HasPrefix(in.src[in.off:], s)
}

// Peek decodes the next rune without consuming it.
// The returned size is 0 at the end of input.
func (in Input) Peek() (rune, int) {
	if in.Empty() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(in.src[in.off:])
}

// Advance returns the view n bytes further along.
// n must not exceed Len.
func (in Input) Advance(n int) Input {
	return Input{src: in.src, off: in.off + n}
}

// Consumed returns the text between in and a later view rest of the same source.
func (in Input) Consumed(rest Input) string {
	return in.src[in.off:rest.off]
}
