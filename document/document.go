// Package document runs a grammar over a complete text and reports failures
// with a source position.
package document

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dhamidi/comb"
)

// ErrTrailingInput is wrapped by the SyntaxError returned when a parse
// succeeded but left input behind.
var ErrTrailingInput = errors.New("trailing input")

// Position represents a location in a document.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate returns the position of at within its source.
// Lines and columns are 1-based; columns count runes.
func Locate(at comb.Input) Position {
	pos := Position{Offset: at.Offset(), Line: 1, Column: 1}
	src := at.Source()[:at.Offset()]
	for _, ch := range src {
		if ch == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// SyntaxError describes where a document stopped matching its grammar.
type SyntaxError struct {
	Position Position
	Near     string
	err      error
}

func (e *SyntaxError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("%s: unexpected end of input", e.Position)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %v near %q", e.Position, e.err, e.Near)
	}
	return fmt.Sprintf("%s: unexpected %q", e.Position, e.Near)
}

func (e *SyntaxError) Unwrap() error {
	return e.err
}

const nearLength = 20

func newSyntaxError(at comb.Input, filename string, err error) *SyntaxError {
	pos := Locate(at)
	pos.Filename = filename
	near := at.String()
	if utf8.RuneCountInString(near) > nearLength {
		near = string([]rune(near)[:nearLength])
	}
	return &SyntaxError{Position: pos, Near: near, err: err}
}

// Option configures Parse.
type Option func(*options)

type options struct {
	filename string
	partial  bool
}

// WithFile sets the file name reported in positions.
func WithFile(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Partial accepts input left over after a successful parse.
func Partial() Option {
	return func(o *options) {
		o.partial = true
	}
}

// Parse runs p over text. Unless Partial is given, the whole text must be
// consumed. The returned Input is the remainder, also on failure.
func Parse[T any](p comb.Parser[T], text string, opts ...Option) (T, comb.Input, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := p.Parse(comb.NewInput(text))
	if !r.OK {
		var zero T
		return zero, r.Rest, newSyntaxError(r.Rest, o.filename, nil)
	}
	if !o.partial && !r.Rest.Empty() {
		return r.Value, r.Rest, newSyntaxError(r.Rest, o.filename, ErrTrailingInput)
	}
	return r.Value, r.Rest, nil
}
