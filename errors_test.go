package pika

import "testing"

func TestErrorKindString(t *testing.T) {
	if SyntaxError.String() != "SyntaxError" {
		t.Errorf("got %q, want SyntaxError", SyntaxError.String())
	}
	if ErrorKind(999).String() != "UnknownError" {
		t.Errorf("got %q, want UnknownError for an out-of-range kind", ErrorKind(999).String())
	}
}

func TestErrorErrorFallsBackToKindName(t *testing.T) {
	e := &Error{Kind: Undefined}
	if e.Error() != "Undefined" {
		t.Errorf("got %q, want Undefined", e.Error())
	}
	e2 := newError(Undefined, "undefined: %s", "x")
	if e2.Error() != "undefined: x" {
		t.Errorf("got %q, want undefined: x", e2.Error())
	}
}

func TestRecoverErrorConvertsPanic(t *testing.T) {
	var err error
	func() {
		defer recoverError(&err)
		throw(Undefined, "boom")
	}()
	e, ok := err.(*Error)
	if !ok || e.Kind != Undefined {
		t.Fatalf("got %v, want *Error{Kind: Undefined}", err)
	}
}

func TestRecoverErrorRepanicsNonErrorValues(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a non-*Error panic should continue unwinding")
		}
	}()
	var err error
	defer recoverError(&err)
	panic("not an *Error")
}
