package comb

// Parser consumes a prefix of its input and produces a value of type T, or fails.
type Parser[T any] interface {
	Parse(in Input) Result[T]
}

// Func adapts a plain function or closure to the Parser interface.
type Func[T any] func(in Input) Result[T]

// Parse calls f.
func (f Func[T]) Parse(in Input) Result[T] {
	return f(in)
}

// ParseString runs p over the whole of s.
func ParseString[T any](p Parser[T], s string) Result[T] {
	return p.Parse(NewInput(s))
}

// Map passes the value produced by p through f.
// It consumes exactly what p consumes.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Func[B](func(in Input) Result[B] {
		r := p.Parse(in)
		if !r.OK {
			return fail[B](in, r)
		}
		return Success(r.Rest, f(r.Value))
	})
}

// Pred turns a success of p into a failure at the original input when
// predicate rejects the produced value.
func Pred[T any](p Parser[T], predicate func(T) bool) Parser[T] {
	return Func[T](func(in Input) Result[T] {
		r := p.Parse(in)
		if !r.OK {
			return fail[T](in, r)
		}
		if !predicate(r.Value) {
			return Failure[T](in)
		}
		return r
	})
}

// AndThen runs p, builds a second parser from its value and runs that on
// the remainder. Once p has succeeded the parse is committed: a failure of
// the second parser is reported where it happened and marked Committed, so
// the error keeps its position when no alternative matches either.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return Func[B](func(in Input) Result[B] {
		r := p.Parse(in)
		if !r.OK {
			return fail[B](in, r)
		}
		next := f(r.Value).Parse(r.Rest)
		if !next.OK {
			return Result[B]{Rest: next.Rest, Committed: true}
		}
		return next
	})
}

// OrElse runs p and, when it fails, runs the parser returned by f on the
// same input. When both fail the committed failure that got furthest is
// reported, or a plain failure at the original input.
func OrElse[T any](p Parser[T], f func(Input) Parser[T]) Parser[T] {
	return Func[T](func(in Input) Result[T] {
		r := p.Parse(in)
		if r.OK {
			return r
		}
		alt := f(in).Parse(in)
		if alt.OK {
			return alt
		}
		return furthest(in, r, alt)
	})
}
