package pika

import "testing"

// newArgFrame binds args the same way Frame.call does, without requiring a
// callable body to execute, so native argument helpers can be tested in
// isolation.
func newArgFrame(args ...Value) *Frame {
	root := NewRoot(nil)
	f := root.frame.newChildFrame()
	for i, a := range args {
		f.vars.Assign(argName(i), a)
	}
	f.vars.Assign("$n", ValueFromInt(int64(len(args))))
	return f
}

func TestArgDefaultsWhenMissing(t *testing.T) {
	f := newArgFrame("a", "b")
	if v := arg(f, 5, "fallback"); v != "fallback" {
		t.Errorf("got %q, want fallback", v)
	}
	if v := arg(f, 1, "fallback"); v != "b" {
		t.Errorf("got %q, want b", v)
	}
}

func TestArgCount(t *testing.T) {
	f := newArgFrame("a", "b", "c")
	if n := argCount(f); n != 3 {
		t.Errorf("got %d, want 3", n)
	}
}

func TestFloatArgIntArgStringArgBoolArg(t *testing.T) {
	f := newArgFrame("3.5", "7", "hi", "true")
	if v := floatArg(f, 0, 0); v != 3.5 {
		t.Errorf("floatArg got %v, want 3.5", v)
	}
	if v := intArg(f, 1, 0); v != 7 {
		t.Errorf("intArg got %v, want 7", v)
	}
	if v := stringArg(f, 2, ""); v != "hi" {
		t.Errorf("stringArg got %q, want hi", v)
	}
	if v := boolArg(f, 3, false); v != true {
		t.Errorf("boolArg got %v, want true", v)
	}
}

func TestFloatArgIntArgBoolArgDefaults(t *testing.T) {
	f := newArgFrame()
	if v := floatArg(f, 0, 9); v != 9 {
		t.Errorf("got %v, want default 9", v)
	}
	if v := intArg(f, 0, 9); v != 9 {
		t.Errorf("got %v, want default 9", v)
	}
	if v := boolArg(f, 0, true); v != true {
		t.Errorf("got %v, want default true", v)
	}
}

func TestWrapFloat1And2(t *testing.T) {
	f := newArgFrame("4")
	n := wrapFloat1(func(x float64) float64 { return x * x })
	if v := n.Invoke(f); v != "16" {
		t.Errorf("got %q, want 16", v)
	}
	f2 := newArgFrame("3", "4")
	n2 := wrapFloat2(func(a, b float64) float64 { return a + b })
	if v := n2.Invoke(f2); v != "7" {
		t.Errorf("got %q, want 7", v)
	}
}
