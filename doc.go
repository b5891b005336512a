/*
Package pika implements PikaScript, an embeddable, string-first scripting
language interpreted directly from source: there is no bytecode stage and
no separate AST, only a single-pass recursive-descent parser that evaluates
as it parses.

Every value in PikaScript is a string (a Value). Numbers, booleans, and
references are just strings interpreted on demand at operator and native
boundaries; nothing fixes a slot's "type" at assignment. Variables live in
Frames: one Frame per call, each owning a Variable Space, linked to its
caller and to a closure Frame that unqualified identifier lookups redirect
through.

To embed PikaScript, construct a Root and evaluate source in it:

	root := pika.NewStandardRoot(nil)
	v, err := root.Evaluate("3 + 4 * 2")

NewStandardRoot registers the full standard-natives library (math, string,
variable, control, and time natives); NewRoot alone constructs a bare Root
with none of them, for an embedder that wants to curate its own native
surface from scratch.

References

A reference is a Value whose text names a Frame and a bare symbol within
it: "::x" names x in the Root, ":3:y" names y in the frame labeled "3",
"^z" names z one frame up the caller chain from wherever the reference is
resolved. The '@' prefix operator turns an lvalue expression into its
reference text; "[ref]" turns reference text back into an lvalue. This is
how closures, foreach, and the evaluate/invoke natives all address
variables that live outside the current frame.

Tracing

A Root's tracer is the only logging seam this package defines: install one
with Root.SetTracer to observe every statement, loop iteration, call,
argument, or bracketed-expression boundary the evaluator crosses, down to
the granularity given by a TraceLevel. A tracer that panics disables
tracing and lets its panic continue unwinding, which is how a host cancels
an in-flight evaluation from inside its own tracer callback.

Errors

Every failure the evaluator can raise is classified by an ErrorKind and
carried in an *Error (see errors.go). Internally the evaluator panics with
*Error to unwind its own recursive descent; every exported function
recovers such a panic at its boundary and returns it as an ordinary error,
so a caller of this package never observes a panic.
*/
package pika
