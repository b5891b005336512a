package pika

import "reflect"

// uintptrOf returns the address of f as an integer, used only to give
// contains.Set a stable per-frame identity during caller-chain walks. This
// mirrors the reflect-based unique-ID fallback in the teacher's object
// identity code; since this module does not otherwise need unsafe pointer
// arithmetic, it is not worth introducing a build-tag-gated fast path for.
func uintptrOf(f *Frame) uintptr {
	return reflect.ValueOf(f).Pointer()
}
