package pika

// Root is a distinguished top-level Frame: the unique-label generator and
// tracer policy for one interpreter instance. Every Frame created within an
// evaluation ultimately traces its Root link back to one Root value.
type Root struct {
	frame *Frame

	labelCounter uint64

	traceLevel TraceLevel
	tracerFn   TracerFunc
	inTracer   bool
}

// NewRoot constructs a Root over the given VariableSpace, which becomes the
// Root frame's (shared, persistent) variable space. A nil space gets the
// standard map-backed implementation.
func NewRoot(vars VariableSpace) *Root {
	if vars == nil {
		vars = NewVariableSpace()
	}
	r := &Root{}
	r.frame = &Frame{
		root:  r,
		vars:  vars,
		label: "::",
	}
	r.frame.closure = r.frame
	return r
}

// Frame returns the Root's own Frame, suitable for use as the starting
// frame of a top-level Evaluate or Call.
func (r *Root) Frame() *Frame { return r.frame }

// NewStandardRoot constructs a Root the same way NewRoot does, then
// registers the full standard-natives library (spec.md §4.8) into it.
func NewStandardRoot(vars VariableSpace) *Root {
	r := NewRoot(vars)
	registerMathNatives(r)
	registerStringNatives(r)
	registerVarsNatives(r)
	registerControlNatives(r)
	registerTimeNatives(r)
	return r
}

// RegisterNative binds n under identifier in the Root's variable space and
// sets the variable identifier to "<identifier>" as a marker, so that
// ordinary script code can call the native by name as well as by explicit
// <identifier> literal.
func (r *Root) RegisterNative(identifier string, n Native) {
	r.frame.vars.AssignNative(identifier, n)
	r.frame.vars.Assign(identifier, Value("<"+identifier+">"))
}

// UnregisterNative binds a null native (one that always fails UnknownNative)
// under identifier. The variable marker set by RegisterNative is left in
// place, matching the contract that unregistering is "binds a null native".
func (r *Root) UnregisterNative(identifier string) {
	r.frame.vars.AssignNative(identifier, nullNative{identifier: identifier})
}

type nullNative struct{ identifier string }

func (n nullNative) Invoke(f *Frame) Value {
	throw(UnknownNative, "unregistered native: %s", n.identifier)
	panic("unreachable")
}

// Evaluate parses and evaluates source in the Root frame.
func (r *Root) Evaluate(source string) (v Value, err error) {
	defer recoverError(&err)
	return r.frame.evaluate(source), nil
}

// Call constructs a fresh child of the Root frame, binds args and callee as
// Frame.call describes, and executes body in it.
func (r *Root) Call(callee string, body Value, args []Value) (v Value, err error) {
	defer recoverError(&err)
	return r.frame.call(callee, body, args), nil
}
