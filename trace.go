package comb

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("comb")

const tracePreview = 16

// Trace wraps p so that every run is logged at debug level under name.
// When debug logging is disabled it adds nothing but the level check.
func Trace[T any](name string, p Parser[T]) Parser[T] {
	return Func[T](func(in Input) Result[T] {
		if !log.AllowLevel(commonlog.Debug) {
			return p.Parse(in)
		}
		log.Debugf("%s: try at %d %q", name, in.Offset(), preview(in.String()))
		r := p.Parse(in)
		switch {
		case r.OK:
			log.Debugf("%s: matched %q", name, preview(in.Consumed(r.Rest)))
		case r.Committed:
			log.Debugf("%s: committed failure at %d", name, r.Rest.Offset())
		default:
			log.Debugf("%s: no match at %d", name, in.Offset())
		}
		return r
	})
}

func preview(s string) string {
	n := 0
	for i := range s {
		if n == tracePreview {
			return s[:i] + "…"
		}
		n++
	}
	return s
}
