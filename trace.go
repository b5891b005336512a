package pika

// TraceLevel is the granularity at which a Root reports evaluation events
// to its tracer. Any level enables all levels below it in this ordering.
type TraceLevel int

const (
	NoTrace TraceLevel = iota
	TraceError
	TraceCall
	TraceLoop
	TraceStatement
	TraceBody
	TraceArgument
	TraceBrackets
)

// TracerFunc observes evaluation events: the source text being evaluated,
// the byte offset within it, whether the reported value is an lvalue
// reference rather than a plain rvalue, the value itself, the level the
// event was raised at, and whether this is the exit (vs. entry) half of the
// event.
type TracerFunc func(source string, offset int, isLValue bool, value Value, level TraceLevel, isExit bool)

// SetTracer installs fn as the Root's tracer, active at level and below.
// Passing level NoTrace (or a nil fn) disables tracing. Level and function
// are always updated together, so a concurrent trace call never observes a
// level without its matching function.
func (r *Root) SetTracer(level TraceLevel, fn TracerFunc) {
	r.traceLevel = level
	r.tracerFn = fn
}

// trace invokes the Root's tracer if tracing is active at level or above,
// guarding against re-entrant invocation. If the tracer itself panics,
// tracing is disabled and the panic continues to unwind normally: this is
// the mechanism by which a host cancels in-flight evaluation from its
// tracer callback.
func (r *Root) trace(source string, offset int, isLValue bool, value Value, level TraceLevel, isExit bool) {
	if r.tracerFn == nil || level == NoTrace || level > r.traceLevel || r.inTracer {
		return
	}
	r.inTracer = true
	func() {
		defer func() {
			r.inTracer = false
			if rec := recover(); rec != nil {
				r.tracerFn = nil
				r.traceLevel = NoTrace
				panic(rec)
			}
		}()
		r.tracerFn(source, offset, isLValue, value, level, isExit)
	}()
}

// traceErrorSite reports a TraceError event at the given offset with the
// error text as the reported value. It does not re-panic, and no parser
// function calls it, so errors raised during evaluation produce no
// TraceError event.
func (p *parser) traceErrorSite(offset int, e *Error) {
	p.frame.root.trace(p.src, offset, false, Value(e.Error()), TraceError, true)
}
