package comb

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Literal matches lit exactly, case-sensitively.
func Literal(lit string) Parser[struct{}] {
	return Func[struct{}](func(in Input) Result[struct{}] {
		if !in.HasPrefix(lit) {
			return Failure[struct{}](in)
		}
		return Success(in.Advance(len(lit)), struct{}{})
	})
}

// Identifier matches a letter followed by any number of letters, numbers
// and hyphens, and produces the matched text.
func Identifier() Parser[string] {
	return Func[string](func(in Input) Result[string] {
		s := in.String()
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || !unicode.IsLetter(r) {
			return Failure[string](in)
		}
		end := size
		for end < len(s) {
			r, size = utf8.DecodeRuneInString(s[end:])
			if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' {
				break
			}
			end += size
		}
		return Success(in.Advance(end), s[:end])
	})
}

// AnyChar consumes a single rune. It fails only at the end of input.
func AnyChar() Parser[rune] {
	return Func[rune](func(in Input) Result[rune] {
		r, size := in.Peek()
		if size == 0 {
			return Failure[rune](in)
		}
		return Success(in.Advance(size), r)
	})
}

// WhitespaceChar consumes a single whitespace rune.
func WhitespaceChar() Parser[rune] {
	return Pred(AnyChar(), unicode.IsSpace)
}

// Space0 consumes any amount of whitespace, including none.
func Space0() Parser[[]rune] {
	return ZeroOrMore(WhitespaceChar())
}

// Space1 consumes at least one whitespace rune.
func Space1() Parser[[]rune] {
	return OneOrMore(WhitespaceChar())
}

// QuotedString matches text between double quotes and produces the text
// without them. Escape sequences are not interpreted.
func QuotedString() Parser[string] {
	notQuote := Pred(AnyChar(), func(r rune) bool { return r != '"' })
	return Map(
		Right(Literal(`"`), Left(ZeroOrMore(notQuote), Literal(`"`))),
		func(chars []rune) string { return string(chars) },
	)
}

// Number matches a run of decimal digits and converts it to an int.
// The run must fit in 32 bits.
func Number() Parser[int] {
	return Func[int](func(in Input) Result[int] {
		s := in.String()
		end := 0
		for end < len(s) {
			r, size := utf8.DecodeRuneInString(s[end:])
			if !unicode.IsDigit(r) {
				break
			}
			end += size
		}
		n, err := strconv.ParseInt(s[:end], 10, 32)
		if err != nil {
			return Failure[int](in)
		}
		return Success(in.Advance(end), int(n))
	})
}
