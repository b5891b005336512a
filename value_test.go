package pika

import (
	"math"
	"testing"
)

func TestValueAsBool(t *testing.T) {
	if b, err := trueValue.AsBool(); err != nil || !b {
		t.Errorf("true: got %v, %v", b, err)
	}
	if b, err := falseValue.AsBool(); err != nil || b {
		t.Errorf("false: got %v, %v", b, err)
	}
	if _, err := Value("maybe").AsBool(); err == nil {
		t.Error("expected error for non-boolean value")
	}
}

func TestValueAsDoubleInfinity(t *testing.T) {
	v := Value("infinity")
	f, err := v.AsDouble()
	if err != nil || !math.IsInf(f, 1) {
		t.Fatalf("got %v, %v", f, err)
	}
	neg := Value("-infinity")
	nf, err := neg.AsDouble()
	if err != nil || !math.IsInf(nf, -1) {
		t.Fatalf("got %v, %v", nf, err)
	}
}

func TestValueAsDoubleRejectsInfWord(t *testing.T) {
	if _, err := Value("inf").AsDouble(); err == nil {
		t.Error("\"inf\" should not parse as a number")
	}
	if _, err := Value("nan").AsDouble(); err == nil {
		t.Error("\"nan\" should not parse as a number")
	}
}

func TestSubscriptJoining(t *testing.T) {
	cases := []struct {
		base, child Value
		want        Value
	}{
		{"::a", "b", "::a.b"},
		{"::", "b", "::b"},
		{":3:a", "b", ":3:a.b"},
		{"$0", "b", "$0.b"},
	}
	for _, c := range cases {
		if got := c.base.Subscript(c.child); got != c.want {
			t.Errorf("%q.Subscript(%q) = %q, want %q", c.base, c.child, got, c.want)
		}
	}
}

func TestCompareNumericVsLexicographic(t *testing.T) {
	if Compare("2", "10") >= 0 {
		t.Error("numeric comparison should order 2 before 10")
	}
	if Compare("2", "10x") <= 0 {
		t.Error("non-numeric comparison should fall back to lexicographic order")
	}
}

func TestEqualVsIdentical(t *testing.T) {
	if !Equal("1", "1.0") {
		t.Error("1 and 1.0 should be numerically equal")
	}
	if Identical("1", "1.0") {
		t.Error("1 and 1.0 are not the identical character sequence")
	}
	if !Identical("1.0", "1.0") {
		t.Error("identical strings should be Identical")
	}
}

func TestIsReference(t *testing.T) {
	for _, v := range []Value{"::x", ":3:x", "^x", "$0"} {
		if !IsReference(v) {
			t.Errorf("%q should be a reference", v)
		}
	}
	if IsReference("x") {
		t.Error("plain identifier text is not itself a reference prefix")
	}
}
