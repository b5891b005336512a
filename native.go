package pika

// NativeFunc adapts a plain Go function taking the callee Frame directly to
// the Native interface. Use this when a native needs full access to the
// calling frame (argument count, $callee, the ability to evaluate further
// script in the caller's context).
type NativeFunc func(f *Frame) Value

// Invoke implements Native.
func (fn NativeFunc) Invoke(f *Frame) Value { return fn(f) }

// arg fetches the callee frame's $N argument, defaulting to def if fewer
// than N+1 arguments were supplied.
func arg(f *Frame, n int, def Value) Value {
	return f.getOptional(argName(n), def)
}

func argName(n int) string {
	s, _ := FormatInt(int64(n), 10, 0)
	return "$" + s
}

func argCount(f *Frame) int {
	n, err := f.get("$n", false).AsLong()
	if err != nil {
		return 0
	}
	return int(n)
}

// floatArg, intArg, stringArg, boolArg are the Value-convertible argument
// readers the 1-ary/2-ary adapters below are specialized from in the
// standard-natives files, fetching $n from the callee frame and converting
// it, raising InvalidNumber/InvalidBoolean through the normal panic/recover
// path on failure.
func floatArg(f *Frame, n int, def float64) float64 {
	v := arg(f, n, "")
	if v.IsVoid() {
		return def
	}
	return v.mustDouble()
}

func intArg(f *Frame, n int, def int64) int64 {
	v := arg(f, n, "")
	if v.IsVoid() {
		return def
	}
	return v.mustLong()
}

func stringArg(f *Frame, n int, def string) string {
	v := arg(f, n, Value(def))
	return string(v)
}

func boolArg(f *Frame, n int, def bool) bool {
	v := arg(f, n, "")
	if v.IsVoid() {
		return def
	}
	return v.mustBool()
}

// wrapFloat0 adapts a 0-ary host function to Native, converting its result
// to a Value. This is the "0-ary () -> R" shape of the Native Bridge.
func wrapFloat0(fn func() float64) Native {
	return NativeFunc(func(f *Frame) Value {
		return ValueFromFloat(fn())
	})
}

// wrapFloat1 adapts a 1-ary float64 host function to Native, fetching its
// argument from $0. This is the "1-ary (A0) -> R" shape where A0 is
// Value-convertible, as opposed to the Frame-taking shape NativeFunc itself
// already serves.
func wrapFloat1(fn func(float64) float64) Native {
	return NativeFunc(func(f *Frame) Value {
		return ValueFromFloat(fn(floatArg(f, 0, 0)))
	})
}

// wrapFloat2 adapts a 2-ary float64 host function to Native, fetching both
// arguments from $0 and $1. This is the "2-ary (A0, A1) -> R" shape.
func wrapFloat2(fn func(a, b float64) float64) Native {
	return NativeFunc(func(f *Frame) Value {
		return ValueFromFloat(fn(floatArg(f, 0, 0), floatArg(f, 1, 0)))
	})
}
