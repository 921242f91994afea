// Package comb is a small parser-combinator engine.
//
// # Overview
//
// A Parser[T] consumes a prefix of an Input and produces a value of type T,
// or fails. Inputs are immutable views; a successful parse hands back the
// unconsumed suffix, a failed one hands back the input it was given.
// Grammars are built by composing primitives with combinators:
//
//	┌──────────────┐     ┌──────────────┐     ┌──────────────┐
//	│  Primitives  │────▶│ Combinators  │────▶│   Grammar    │
//	│ Literal ...  │     │ Pair, Map... │     │ Parser[Elem] │
//	└──────────────┘     └──────────────┘     └──────────────┘
//
// Go methods cannot introduce type parameters, so every derived operation
// (Map, Pred, AndThen, OrElse) is a free function taking the parser as its
// first argument.
//
// # Failures
//
// There is exactly one kind of failure: no match at this position.
// Sequencing combinators are atomic, so a failure reports the input the
// composite parser was given and nothing is consumed on a failing path.
// AndThen is the exception: after its first stage succeeds the parse is
// committed, and a failure of the dependent stage is reported where it
// happened. Committed failures are passed through unchanged by sequencing
// combinators. Ordered choice (Either, Choice, OrElse) still tries every
// alternative, and reports the furthest committed failure only when none
// of them matches. Repetition (ZeroOrMore) always succeeds with the
// matches made before the first failure, committed or not.
//
// The engine never requires the whole input to be consumed. Callers decide
// whether a non-empty remainder is an error.
//
// # Example
//
//	tag := comb.Right(comb.Literal("<"), comb.Left(comb.Identifier(), comb.Literal(">")))
//	r := comb.ParseString(tag, "<div>rest")
//	// r.OK == true, r.Value == "div", r.Rest.String() == "rest"
//
// # Thread Safety
//
// Parsers hold no mutable state once built and may be shared. Lazy builds
// its parser at most once.
package comb
