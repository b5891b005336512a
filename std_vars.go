package pika

import "strconv"

// registerVarsNatives binds the variable, evaluation, and elevate natives
// of spec.md §4.8 into root's Variable Space.
func registerVarsNatives(root *Root) {
	root.RegisterNative("exists", NativeFunc(nativeExists))
	root.RegisterNative("deleter", NativeFunc(nativeDeleter))
	root.RegisterNative("foreach", NativeFunc(nativeForeach))

	root.RegisterNative("evaluate", NativeFunc(nativeEvaluate))
	root.RegisterNative("parse", NativeFunc(nativeParse))
	root.RegisterNative("invoke", NativeFunc(nativeInvoke))
	root.RegisterNative("try", NativeFunc(nativeTry))

	root.RegisterNative("elevate", NativeFunc(nativeElevate))
}

func nativeExists(f *Frame) Value {
	return ValueFromBool(f.exists(stringArg(f, 0, "")))
}

func nativeDeleter(f *Frame) Value {
	return ValueFromBool(f.erase(stringArg(f, 0, "")))
}

// foreach(container-ref, fn) invokes fn once for each symbol bound in the
// container-ref's own frame whose name starts with "<bare-symbol>.",
// passing that symbol's reference and value as $0 and $1.
func nativeForeach(f *Frame) Value {
	ref := stringArg(f, 0, "")
	fn := arg(f, 1, "")
	target, symbol := resolveReference(f, ref)
	prefix := symbol + "."
	for _, kv := range target.vars.List(prefix) {
		f.call("", fn, []Value{Value(target.label + kv.Symbol), kv.Value})
	}
	return voidValue
}

// evaluate(source, frame?) evaluates source in the current frame, or in the
// frame named by the frame? reference if given.
func nativeEvaluate(f *Frame) Value {
	source := stringArg(f, 0, "")
	target := f
	if frameRef := arg(f, 1, ""); !frameRef.IsVoid() {
		t, _ := resolveReference(f, string(frameRef))
		target = t
	}
	return target.evaluate(source)
}

// parse(source, literal?) measures how far a parse of source would get
// without evaluating it, returning the stopping offset.
func nativeParse(f *Frame) Value {
	source := stringArg(f, 0, "")
	literalOnly := boolArg(f, 1, false)
	return ValueFromInt(int64(f.parse(source, 0, len(source), literalOnly)))
}

// invoke(name?, body?, argv, offset?, count?) calls body (or the native
// named by name) with arguments drawn from the "<argv-symbol>.N" slots of
// argv's own frame, starting at offset (default 0) for count entries
// (default: however many consecutive slots are bound from offset).
func nativeInvoke(f *Frame) Value {
	name := stringArg(f, 0, "")
	body := arg(f, 1, "")
	argvRef := stringArg(f, 2, "")
	offset := intArg(f, 3, 0)
	count := intArg(f, 4, -1)

	if body.IsVoid() {
		body = Value("<" + name + ">")
	}
	target, symbol := resolveReference(f, argvRef)
	if count < 0 {
		count = 0
		for {
			if _, ok := target.vars.Lookup(symbol + "." + strconv.FormatInt(offset+count, 10)); !ok {
				break
			}
			count++
		}
	}
	args := make([]Value, 0, count)
	for i := int64(0); i < count; i++ {
		v, _ := target.vars.Lookup(symbol + "." + strconv.FormatInt(offset+i, 10))
		args = append(args, v)
	}
	return f.call(name, body, args)
}

// try (the "tryer" native) executes body and catches any *Error it raises,
// returning the error's text; on success it returns void.
func nativeTry(f *Frame) (result Value) {
	body := arg(f, 0, "")
	result = voidValue
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			result = Value(e.Error())
		}
	}()
	f.execute(body)
	return voidValue
}

// elevate implements the "reflective method dispatch" helper: it splits the
// callee frame's own $callee on its last '.', resolves the head as a
// reference in the caller's frame (with Root fallback), and re-executes
// whatever that reference names in the current (callee) frame. A $callee
// with no '.' fails NonMethodCall.
func nativeElevate(f *Frame) Value {
	calleeVal, ok := f.vars.Lookup("$callee")
	if !ok {
		throw(NonMethodCall, "elevate: no $callee bound in this frame")
	}
	callee := string(calleeVal)
	dot := lastIndexByte(callee, '.')
	if dot < 0 {
		throw(NonMethodCall, "elevate: $callee has no method qualifier: %s", callee)
	}
	head := callee[:dot]
	caller := f.caller
	if caller == nil {
		throw(NonMethodCall, "elevate: no caller frame")
	}
	target := caller.get(head, true)
	return f.execute(target)
}

func lastIndexByte(s string, b byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}
