// Package grammars is the registry of document grammars shared by the
// command line and the language server.
package grammars

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhamidi/comb"
	"github.com/dhamidi/comb/document"
	"github.com/dhamidi/comb/format"
	"github.com/dhamidi/comb/json"
	"github.com/dhamidi/comb/xml"
)

var ErrUnknown = errors.New("unknown grammar")

// Grammar couples a grammar's EBNF description with a function that parses
// a whole document with it.
type Grammar struct {
	Name  string
	EBNF  string
	Start string
	Parse func(text string, opts ...document.Option) (format.Tree, comb.Input, error)
}

var registry = map[string]Grammar{
	"json": {
		Name:  "json",
		EBNF:  json.EBNF,
		Start: "Element",
		Parse: parseWith(json.ElementParser),
	},
	"xml": {
		Name:  "xml",
		EBNF:  xml.EBNF,
		Start: "Element",
		Parse: parseWith(xml.ElementParser),
	},
}

func parseWith[T format.Tree](build func() comb.Parser[T]) func(string, ...document.Option) (format.Tree, comb.Input, error) {
	return func(text string, opts ...document.Option) (format.Tree, comb.Input, error) {
		v, rest, err := document.Parse(build(), text, opts...)
		if err != nil && !errors.Is(err, document.ErrTrailingInput) {
			return nil, rest, err
		}
		return v, rest, err
	}
}

// Lookup returns the grammar registered under name.
func Lookup(name string) (Grammar, error) {
	g, ok := registry[name]
	if !ok {
		return Grammar{}, fmt.Errorf("%w %q (available: %v)", ErrUnknown, name, Names())
	}
	return g, nil
}

// Names lists the registered grammars in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
