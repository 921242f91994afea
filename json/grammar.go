// Package json is a JSON grammar built from comb parsers.
//
// It accepts null, booleans, 32-bit integers, strings without escape
// sequences, arrays and objects. The accepted language is written down in
// EBNF.
package json

import (
	_ "embed"
	"strconv"
	"unicode"

	"github.com/dhamidi/comb"
	"github.com/dhamidi/comb/document"
)

// EBNF describes the language accepted by ElementParser.
//
//go:embed grammar.ebnf
var EBNF string

// ElementParser parses a single JSON value and the whitespace around it.
func ElementParser() comb.Parser[Element] {
	return comb.Trace("json.element", comb.WhitespaceWrap(comb.Choice(
		null(),
		boolean(),
		number(),
		str(),
		array(),
		object(),
	)))
}

// ObjectParser parses a JSON object. Once the opening brace has matched,
// a failure inside the object is reported where it happened.
func ObjectParser() comb.Parser[map[string]Element] {
	empty := comb.Map(token("}"), func(struct{}) map[string]Element {
		return map[string]Element{}
	})
	filled := comb.Left(members(), token("}"))
	return comb.Trace("json.object", comb.AndThen(token("{"), func(struct{}) comb.Parser[map[string]Element] {
		return comb.Either(empty, filled)
	}))
}

// ParseDocument parses text as one JSON value. The whole text must match.
func ParseDocument(text string, opts ...document.Option) (Element, error) {
	e, _, err := document.Parse(ElementParser(), text, opts...)
	return e, err
}

func token(lit string) comb.Parser[struct{}] {
	return comb.WhitespaceWrap(comb.Literal(lit))
}

func null() comb.Parser[Element] {
	return comb.Map(comb.Literal("null"), func(struct{}) Element { return Null() })
}

func boolean() comb.Parser[Element] {
	return comb.Either(
		comb.Map(comb.Literal("true"), func(struct{}) Element { return Bool(true) }),
		comb.Map(comb.Literal("false"), func(struct{}) Element { return Bool(false) }),
	)
}

// number parses an optionally negative integer. The sign is parsed with the
// digits, so the full 32-bit range is accepted.
func number() comb.Parser[Element] {
	digit := comb.Pred(comb.AnyChar(), unicode.IsDigit)
	negative := comb.Map(comb.Right(comb.Literal("-"), comb.OneOrMore(digit)), func(ds []rune) string {
		return "-" + string(ds)
	})
	return comb.Either(
		comb.Map(comb.Pred(negative, fitsInt32), func(s string) Element {
			n, _ := strconv.ParseInt(s, 10, 32)
			return Number(int(n))
		}),
		comb.Map(comb.Number(), Number),
	)
}

func fitsInt32(s string) bool {
	_, err := strconv.ParseInt(s, 10, 32)
	return err == nil
}

func str() comb.Parser[Element] {
	return comb.Map(comb.QuotedString(), String)
}

func array() comb.Parser[Element] {
	empty := comb.Map(token("]"), func(struct{}) Element { return Array() })
	filled := comb.Map(comb.Left(items(), token("]")), func(items []Element) Element {
		return Array(items...)
	})
	return comb.AndThen(comb.Literal("["), func(struct{}) comb.Parser[Element] {
		return comb.Either(empty, filled)
	})
}

// items parses the comma separated values of an array. After a comma
// another value is required, so a broken value is reported where it is
// instead of at the opening bracket.
func items() comb.Parser[[]Element] {
	return comb.AndThen(comb.Lazy(ElementParser), func(first Element) comb.Parser[[]Element] {
		more := comb.Right(comb.Literal(","), comb.Lazy(items))
		last := comb.Map(ahead("]"), func(struct{}) []Element { return nil })
		return comb.Map(comb.Either(more, last), func(rest []Element) []Element {
			return append([]Element{first}, rest...)
		})
	})
}

func object() comb.Parser[Element] {
	return comb.Map(ObjectParser(), Object)
}

// elementPair parses "name": value. Once the key has been read the pair is
// committed, so a broken value is reported right after the key.
func elementPair() comb.Parser[comb.Tuple[string, Element]] {
	value := comb.Right(token(":"), comb.Lazy(ElementParser))
	return comb.AndThen(comb.QuotedString(), func(name string) comb.Parser[comb.Tuple[string, Element]] {
		return comb.Map(value, func(e Element) comb.Tuple[string, Element] {
			return comb.Tuple[string, Element]{First: name, Second: e}
		})
	})
}

// members parses the comma separated pairs of an object. Later duplicate
// keys win.
func members() comb.Parser[map[string]Element] {
	return comb.AndThen(elementPair(), func(first comb.Tuple[string, Element]) comb.Parser[map[string]Element] {
		more := comb.Right(token(","), comb.Lazy(members))
		last := comb.Map(ahead("}"), func(struct{}) map[string]Element { return map[string]Element{} })
		return comb.Map(comb.Either(more, last), func(fields map[string]Element) map[string]Element {
			if _, ok := fields[first.First]; !ok {
				fields[first.First] = first.Second
			}
			return fields
		})
	})
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
