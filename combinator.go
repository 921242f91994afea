package comb

import "sync"

// Tuple is the value produced by Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Pair runs p1 and then p2 on what p1 left, producing both values.
func Pair[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Tuple[A, B]] {
	return Func[Tuple[A, B]](func(in Input) Result[Tuple[A, B]] {
		r1 := p1.Parse(in)
		if !r1.OK {
			return fail[Tuple[A, B]](in, r1)
		}
		r2 := p2.Parse(r1.Rest)
		if !r2.OK {
			return fail[Tuple[A, B]](in, r2)
		}
		return Success(r2.Rest, Tuple[A, B]{First: r1.Value, Second: r2.Value})
	})
}

// Left runs p1 then p2 and keeps the value of p1.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) A { return t.First })
}

// Right runs p1 then p2 and keeps the value of p2.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) B { return t.Second })
}

// ZeroOrMore applies p until it fails and collects the values in order.
// It always succeeds, possibly with no values. p must consume input
// whenever it succeeds, otherwise the repetition does not terminate.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(in Input) Result[[]T] {
		var out []T
		rest := in
		for {
			r := p.Parse(rest)
			if !r.OK {
				break
			}
			out = append(out, r.Value)
			rest = r.Rest
		}
		return Success(rest, out)
	})
}

// OneOrMore is ZeroOrMore that requires at least one match.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	more := ZeroOrMore(p)
	return Func[[]T](func(in Input) Result[[]T] {
		first := p.Parse(in)
		if !first.OK {
			return fail[[]T](in, first)
		}
		r := more.Parse(first.Rest)
		return Success(r.Rest, append([]T{first.Value}, r.Value...))
	})
}

// Either tries p1 and falls back to p2 when p1 fails.
func Either[T any](p1, p2 Parser[T]) Parser[T] {
	return OrElse(p1, func(Input) Parser[T] { return p2 })
}

// Choice is Either over any number of alternatives, tried in order. The
// first success wins; when all fail the furthest committed failure is
// reported.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return Func[T](func(in Input) Result[T] {
		failed := Failure[T](in)
		for _, p := range ps {
			r := p.Parse(in)
			if r.OK {
				return r
			}
			failed = furthest(in, failed, r)
		}
		return failed
	})
}

// WhitespaceWrap discards whitespace before and after p.
func WhitespaceWrap[T any](p Parser[T]) Parser[T] {
	return Right(Space0(), Left(p, Space0()))
}

// Lazy defers building a parser until it is first run. Recursive grammars
// use it to refer to a rule that is still under construction.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var (
		once sync.Once
		p    Parser[T]
	)
	return Func[T](func(in Input) Result[T] {
		once.Do(func() { p = build() })
		return p.Parse(in)
	})
}
