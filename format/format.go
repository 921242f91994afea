// Package format renders parse trees produced by the grammars.
package format

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrUnknownFormat is returned by NewEncoder for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown format")

// Tree is a parsed document. Value converts it to maps, slices and scalars
// for the structured encoders; String renders it in its own syntax.
type Tree interface {
	Value() any
	String() string
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(tree Tree) error
}

var encoders = map[string]func(io.Writer) Encoder{
	"tree": func(w io.Writer) Encoder { return NewTreeEncoder(w) },
	"json": func(w io.Writer) Encoder { return NewJSONEncoder(w) },
	"yaml": func(w io.Writer) Encoder { return NewYAMLEncoder(w) },
}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	newEncoder, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownFormat, name, Names())
	}
	return newEncoder(w), nil
}

// Names lists the supported format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
