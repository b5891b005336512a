package pika

// registerControlNatives binds the control natives of spec.md §4.8 into
// root's Variable Space.
func registerControlNatives(root *Root) {
	root.RegisterNative("throw", NativeFunc(nativeThrow))
	root.RegisterNative("trace", NativeFunc(nativeTrace))
}

// throw(msg) raises UserThrown carrying msg as its payload text.
func nativeThrow(f *Frame) Value {
	msg := stringArg(f, 0, "")
	throw(UserThrown, "%s", msg)
	panic("unreachable")
}

// trace(fn?, level?) installs fn as the Root's tracer at the given level
// (default TraceStatement), calling it with the six trace-event fields as
// $0..$5. Calling trace() with no fn disables tracing.
func nativeTrace(f *Frame) Value {
	fn := arg(f, 0, "")
	level := TraceLevel(intArg(f, 1, int64(TraceStatement)))
	root := f.root

	if fn.IsVoid() {
		root.SetTracer(NoTrace, nil)
		return voidValue
	}

	tracerFrame := root.frame
	root.SetTracer(level, func(source string, offset int, isLValue bool, value Value, lvl TraceLevel, isExit bool) {
		args := []Value{
			Value(source),
			ValueFromInt(int64(offset)),
			ValueFromBool(isLValue),
			value,
			ValueFromInt(int64(lvl)),
			ValueFromBool(isExit),
		}
		tracerFrame.call("", fn, args)
	})
	return voidValue
}
