package pika

import "testing"

func TestNativeThrowRaisesUserThrown(t *testing.T) {
	root := NewStandardRoot(nil)
	_, err := root.Evaluate("throw('boom')")
	e, ok := err.(*Error)
	if !ok || e.Kind != UserThrown {
		t.Fatalf("got err=%v, want UserThrown", err)
	}
	if e.Msg != "boom" {
		t.Errorf("got message %q, want boom", e.Msg)
	}
}

func TestNativeTraceInvokesCallback(t *testing.T) {
	root := NewStandardRoot(nil)
	if _, err := root.Evaluate("events = 0"); err != nil {
		t.Fatal(err)
	}
	if _, err := root.Evaluate("trace(>events += 1)"); err != nil {
		t.Fatal(err)
	}
	if _, err := root.Evaluate("x = 1 + 1"); err != nil {
		t.Fatal(err)
	}
	v, err := root.Evaluate("events")
	if err != nil {
		t.Fatal(err)
	}
	f, err := v.AsDouble()
	if err != nil {
		t.Fatal(err)
	}
	if f <= 0 {
		t.Errorf("tracer should have fired at least once, events=%v", f)
	}
}

func TestNativeTraceDisableWithNoArgument(t *testing.T) {
	root := NewStandardRoot(nil)
	if _, err := root.Evaluate("trace(>1)"); err != nil {
		t.Fatal(err)
	}
	if _, err := root.Evaluate("trace()"); err != nil {
		t.Fatal(err)
	}
	if root.traceLevel != NoTrace {
		t.Error("trace() with no argument should disable tracing")
	}
}
