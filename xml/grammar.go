// Package xml is a grammar for a small XML subset built from comb parsers:
// elements with attributes and child elements, no text content, comments
// or declarations.
package xml

import (
	_ "embed"

	"github.com/dhamidi/comb"
	"github.com/dhamidi/comb/document"
)

// EBNF describes the language accepted by ElementParser.
//
//go:embed grammar.ebnf
var EBNF string

// ElementParser parses one element, either <name/> or <name>...</name>,
// and the whitespace around it.
func ElementParser() comb.Parser[Element] {
	return comb.Trace("xml.element", comb.WhitespaceWrap(comb.Either(SingleElementParser(), parentElement())))
}

// SingleElementParser parses a self-closing element such as <div class="x"/>.
func SingleElementParser() comb.Parser[Element] {
	return comb.Map(comb.Left(elementStart(), comb.Literal("/>")), newElement)
}

// ParseDocument parses text as one element. The whole text must match.
func ParseDocument(text string, opts ...document.Option) (Element, error) {
	e, _, err := document.Parse(ElementParser(), text, opts...)
	return e, err
}

func newElement(start comb.Tuple[string, []Attribute]) Element {
	return Element{Name: start.First, Attributes: start.Second}
}

// elementStart parses "<name" and the attributes that follow it.
func elementStart() comb.Parser[comb.Tuple[string, []Attribute]] {
	return comb.Right(comb.Literal("<"), comb.Pair(comb.Identifier(), comb.Left(attributes(), comb.Space0())))
}

func openElement() comb.Parser[Element] {
	return comb.Map(comb.Left(elementStart(), comb.Literal(">")), newElement)
}

// closeElement matches </name> only when name is the expected one.
func closeElement(expected string) comb.Parser[string] {
	return comb.Pred(
		comb.Right(comb.Literal("</"), comb.Left(comb.Identifier(), comb.Literal(">"))),
		func(name string) bool { return name == expected },
	)
}

// parentElement reads the opening tag, the children and then a closing tag
// whose name must match the opening one. A mismatch is reported at the
// closing tag.
func parentElement() comb.Parser[Element] {
	return comb.AndThen(openElement(), func(el Element) comb.Parser[Element] {
		return comb.AndThen(children(), func(kids []Element) comb.Parser[Element] {
			return comb.Map(closeElement(el.Name), func(string) Element {
				el.Children = kids
				return el
			})
		})
	})
}

// children parses child elements up to the next closing tag. A child that
// breaks is reported where it broke.
func children() comb.Parser[[]Element] {
	more := comb.AndThen(comb.Lazy(ElementParser), func(kid Element) comb.Parser[[]Element] {
		return comb.Map(comb.Lazy(children), func(rest []Element) []Element {
			return append([]Element{kid}, rest...)
		})
	})
	end := comb.Map(comb.Right(comb.Space0(), ahead("</")), func(struct{}) []Element { return nil })
	return comb.Either(more, end)
}

// ahead matches when the input starts with lit, without consuming it.
func ahead(lit string) comb.Parser[struct{}] {
	return comb.Func[struct{}](func(in comb.Input) comb.Result[struct{}] {
		if !in.HasPrefix(lit) {
			return comb.Failure[struct{}](in)
		}
		return comb.Success(in, struct{}{})
	})
}

func attributePair() comb.Parser[Attribute] {
	return comb.Map(
		comb.Pair(comb.Identifier(), comb.Right(comb.Literal("="), comb.QuotedString())),
		func(t comb.Tuple[string, string]) Attribute {
			return Attribute{Name: t.First, Value: t.Second}
		},
	)
}

func attributes() comb.Parser[[]Attribute] {
	return comb.ZeroOrMore(comb.Right(comb.Space1(), attributePair()))
}
