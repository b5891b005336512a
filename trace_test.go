package pika

import "testing"

func TestSetTracerUpdatesLevelAndFunc(t *testing.T) {
	root := NewRoot(nil)
	called := false
	root.SetTracer(TraceCall, func(string, int, bool, Value, TraceLevel, bool) {
		called = true
	})
	root.trace("src", 0, false, "v", TraceCall, true)
	if !called {
		t.Error("tracer should have been invoked at its own level")
	}
}

func TestTraceSkipsAboveConfiguredLevel(t *testing.T) {
	root := NewRoot(nil)
	called := false
	root.SetTracer(TraceError, func(string, int, bool, Value, TraceLevel, bool) {
		called = true
	})
	root.trace("src", 0, false, "v", TraceStatement, true)
	if called {
		t.Error("tracer should not fire for a level above the configured threshold")
	}
}

func TestTraceGuardsReentrancy(t *testing.T) {
	root := NewRoot(nil)
	depth := 0
	var tracer TracerFunc
	tracer = func(source string, offset int, isLValue bool, value Value, level TraceLevel, isExit bool) {
		depth++
		root.trace(source, offset, isLValue, value, level, isExit)
	}
	root.SetTracer(TraceStatement, tracer)
	root.trace("src", 0, false, "v", TraceStatement, true)
	if depth != 1 {
		t.Errorf("reentrant trace call should be suppressed, got depth=%d", depth)
	}
}

func TestTracePanicDisablesTracing(t *testing.T) {
	root := NewRoot(nil)
	root.SetTracer(TraceStatement, func(string, int, bool, Value, TraceLevel, bool) {
		panic("cancel")
	})
	func() {
		defer func() { recover() }()
		root.trace("src", 0, false, "v", TraceStatement, true)
	}()
	if root.tracerFn != nil || root.traceLevel != NoTrace {
		t.Error("a panicking tracer should disable tracing for subsequent events")
	}
}

func TestSetTracerNoTraceDisables(t *testing.T) {
	root := NewRoot(nil)
	called := false
	root.SetTracer(TraceStatement, func(string, int, bool, Value, TraceLevel, bool) {
		called = true
	})
	root.SetTracer(NoTrace, nil)
	root.trace("src", 0, false, "v", TraceStatement, true)
	if called {
		t.Error("tracing should be disabled after SetTracer(NoTrace, nil)")
	}
}
