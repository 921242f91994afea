package comb

import (
	"reflect"
	"strings"
	"testing"
)

func TestPair(t *testing.T) {
	tag := Pair(Literal("<"), Identifier())

	got := expectOK(t, ParseString(tag, "<my-first-element/>"), "/>")
	if got.Second != "my-first-element" {
		t.Errorf("expected 'my-first-element', got %q", got.Second)
	}

	expectFail(t, ParseString(tag, "oops"), "oops")
	expectFail(t, ParseString(tag, "<!oops"), "<!oops")
}

func TestLeftRight(t *testing.T) {
	left := Left(Identifier(), Literal(">"))
	if got := expectOK(t, ParseString(left, "div>x"), "x"); got != "div" {
		t.Errorf("expected 'div', got %q", got)
	}
	expectFail(t, ParseString(left, "div x"), "div x")

	right := Right(Literal("<"), Identifier())
	if got := expectOK(t, ParseString(right, "<div/>"), "/>"); got != "div" {
		t.Errorf("expected 'div', got %q", got)
	}
	expectFail(t, ParseString(right, "<!div"), "<!div")
}

func TestZeroOrMore(t *testing.T) {
	p := ZeroOrMore(Literal("ha"))

	if got := expectOK(t, ParseString(p, "hahaha"), ""); len(got) != 3 {
		t.Errorf("expected 3 matches, got %d", len(got))
	}
	if got := expectOK(t, ParseString(p, "ahah"), "ahah"); len(got) != 0 {
		t.Errorf("expected 0 matches, got %d", len(got))
	}
	if got := expectOK(t, ParseString(p, ""), ""); len(got) != 0 {
		t.Errorf("expected 0 matches, got %d", len(got))
	}
}

func TestZeroOrMoreIsTotal(t *testing.T) {
	committed := AndThen(Identifier(), func(name string) Parser[string] {
		return Map(Right(Literal("="), QuotedString()), func(string) string { return name })
	})
	parsers := []Parser[[]string]{
		ZeroOrMore(Identifier()),
		ZeroOrMore(Map(Literal("x"), func(struct{}) string { return "x" })),
		ZeroOrMore(Right(Literal(","), Identifier())),
		ZeroOrMore(QuotedString()),
		ZeroOrMore(committed),
		ZeroOrMore(Left(committed, Space0())),
	}
	inputs := []string{"", "!", "abc", "a=", `a="1"b=`, "   ", ",a,b,", `"x""y`, `a="1" b=2`}

	for i, p := range parsers {
		for _, s := range inputs {
			if r := ParseString(p, s); !r.OK {
				t.Errorf("parser %d failed on %q: %s", i, s, r)
			}
		}
	}
}

func TestZeroOrMoreStopsAtCommittedFailure(t *testing.T) {
	ab := AndThen(Literal("a"), func(struct{}) Parser[struct{}] { return Literal("b") })
	if got := expectOK(t, ParseString(ZeroOrMore(ab), "ac"), "ac"); len(got) != 0 {
		t.Errorf("expected 0 matches, got %d", len(got))
	}
	if got := expectOK(t, ParseString(ZeroOrMore(ab), "ababac"), "ac"); len(got) != 2 {
		t.Errorf("expected 2 matches, got %d", len(got))
	}

	attr := AndThen(Identifier(), func(string) Parser[string] {
		return Right(Literal("="), QuotedString())
	})
	p := ZeroOrMore(Left(attr, Space0()))

	if got := expectOK(t, ParseString(p, `a="1" b="2">`), ">"); len(got) != 2 {
		t.Errorf("expected 2 attributes, got %d", len(got))
	}
	if got := expectOK(t, ParseString(p, `a="1" b=2>`), "b=2>"); len(got) != 1 {
		t.Errorf("expected 1 attribute, got %d", len(got))
	}
}

func TestOneOrMore(t *testing.T) {
	p := OneOrMore(Literal("ha"))

	if got := expectOK(t, ParseString(p, "hahah"), "h"); len(got) != 2 {
		t.Errorf("expected 2 matches, got %d", len(got))
	}
	expectFail(t, ParseString(p, "ahah"), "ahah")
	expectFail(t, ParseString(p, ""), "")
}

func TestEither(t *testing.T) {
	p := Either(
		Map(Literal("true"), func(struct{}) bool { return true }),
		Map(Literal("false"), func(struct{}) bool { return false }),
	)

	if got := expectOK(t, ParseString(p, "true!"), "!"); !got {
		t.Error("expected true")
	}
	if got := expectOK(t, ParseString(p, "false!"), "!"); got {
		t.Error("expected false")
	}
	expectFail(t, ParseString(p, "maybe"), "maybe")
}

func TestEitherTriesSecondAfterCommittedFailure(t *testing.T) {
	ab := AndThen(Literal("a"), func(struct{}) Parser[string] {
		return Map(Literal("b"), func(struct{}) string { return "ab" })
	})
	ac := Map(Literal("ac"), func(struct{}) string { return "ac" })

	if got := expectOK(t, ParseString(Either(ab, ac), "ac!"), "!"); got != "ac" {
		t.Errorf("expected 'ac', got %q", got)
	}

	r := ParseString(Either(ab, ac), "ad")
	expectFail(t, r, "d")
	if !r.Committed {
		t.Error("expected the committed failure to be reported")
	}

	r = ParseString(Either(ac, ab), "ad")
	expectFail(t, r, "d")
	if !r.Committed {
		t.Error("expected the committed failure to be reported")
	}
}

func TestEitherPrefersFirst(t *testing.T) {
	attempted := false
	always := Map(Literal(""), func(struct{}) string { return "first" })
	never := Func[string](func(in Input) Result[string] {
		attempted = true
		return Failure[string](in)
	})

	got := expectOK(t, ParseString(Either[string](always, never), "input"), "input")
	if got != "first" {
		t.Errorf("expected 'first', got %q", got)
	}
	if attempted {
		t.Error("second alternative should not be attempted")
	}
}

func TestChoice(t *testing.T) {
	word := func(w string) Parser[string] {
		return Map(Literal(w), func(struct{}) string { return w })
	}
	p := Choice(word("null"), word("nil"), word("none"))

	for _, s := range []string{"null", "nil", "none"} {
		if got := expectOK(t, ParseString(p, s), ""); got != s {
			t.Errorf("expected %q, got %q", s, got)
		}
	}
	expectFail(t, ParseString(p, "nothing"), "nothing")
	expectFail(t, ParseString(Choice[string](), "x"), "x")
}

func TestChoiceReportsFurthestCommittedFailure(t *testing.T) {
	prefixed := func(prefix, rest string) Parser[string] {
		return AndThen(Literal(prefix), func(struct{}) Parser[string] {
			return Map(Literal(rest), func(struct{}) string { return prefix + rest })
		})
	}
	p := Choice(prefixed("a", "x"), prefixed("ab", "y"), prefixed("abc", "z"), prefixed("ab", "cd"))

	if got := expectOK(t, ParseString(p, "abcd"), ""); got != "abcd" {
		t.Errorf("expected 'abcd', got %q", got)
	}

	r := ParseString(p, "abc!")
	expectFail(t, r, "!")
	if !r.Committed {
		t.Error("expected committed failure")
	}

	r = ParseString(p, "b")
	expectFail(t, r, "b")
	if r.Committed {
		t.Error("expected plain failure")
	}
}

func TestWhitespaceWrap(t *testing.T) {
	p := WhitespaceWrap(Literal(":"))

	expectOK(t, ParseString(p, "  :  1"), "1")
	expectOK(t, ParseString(p, ":1"), "1")
	expectFail(t, ParseString(p, "  ;"), "  ;")
}

func TestLazyBuildsOnce(t *testing.T) {
	builds := 0
	p := Lazy(func() Parser[string] {
		builds++
		return Identifier()
	})

	expectOK(t, ParseString(p, "a b"), " b")
	expectOK(t, ParseString(p, "c d"), " d")
	if builds != 1 {
		t.Errorf("expected 1 build, got %d", builds)
	}
}

// nested is a recursive grammar of balanced parentheses that counts depth.
func nested() Parser[int] {
	return Either(
		Map(
			Right(Literal("("), Left(Lazy(nested), Literal(")"))),
			func(depth int) int { return depth + 1 },
		),
		Map(Literal(""), func(struct{}) int { return 0 }),
	)
}

func TestLazyRecursion(t *testing.T) {
	if got := expectOK(t, ParseString(nested(), "((()))x"), "x"); got != 3 {
		t.Errorf("expected depth 3, got %d", got)
	}
}

func TestCompositesDoNotProgressOnFailure(t *testing.T) {
	attr := Pair(Identifier(), Right(Literal("="), QuotedString()))
	parsers := map[string]Parser[string]{
		"Pair":           Map(attr, func(t Tuple[string, string]) string { return t.First }),
		"Left":           Left(Identifier(), Literal(";")),
		"Right":          Right(Space1(), Identifier()),
		"OneOrMore":      Map(OneOrMore(Identifier()), func(s []string) string { return strings.Join(s, "") }),
		"Either":         Either(Left(Identifier(), Literal("!")), Left(Identifier(), Literal("?"))),
		"WhitespaceWrap": WhitespaceWrap(Left(Identifier(), Literal("."))),
		"Pred":           Pred(Identifier(), func(s string) bool { return s == "yes" }),
	}
	inputs := []string{"", "abc", `abc="`, "  abc", "abc;x", "no", "1"}

	for name, p := range parsers {
		for _, s := range inputs {
			in := NewInput(s)
			r := p.Parse(in)
			if !r.OK && r.Rest != in {
				t.Errorf("%s advanced on failure for %q: %s", name, s, r)
			}
		}
	}
}

func TestConsumptionReconstructsInput(t *testing.T) {
	p := Pair(WhitespaceWrap(Identifier()), ZeroOrMore(Right(Literal(","), WhitespaceWrap(Identifier()))))
	inputs := []string{"a", " a , b ,c;", "a,b,", "x y"}

	for _, s := range inputs {
		in := NewInput(s)
		r := p.Parse(in)
		if !r.OK {
			t.Fatalf("expected success for %q, got %s", s, r)
		}
		if r.Rest.Len() > in.Len() {
			t.Errorf("rest longer than input for %q", s)
		}
		if got := in.Consumed(r.Rest) + r.Rest.String(); got != s {
			t.Errorf("expected %q to be reconstructed, got %q", s, got)
		}
	}
}

func TestTuple(t *testing.T) {
	p := Pair(Number(), Right(Literal(","), Number()))
	got := expectOK(t, ParseString(p, "1,2"), "")
	if !reflect.DeepEqual(got, Tuple[int, int]{First: 1, Second: 2}) {
		t.Errorf("expected {1 2}, got %v", got)
	}
}
