package pika

import (
	"math"
	"math/rand"
)

// registerMathNatives binds the numeric, integer/format, and character
// natives of spec.md §4.8 into root's Variable Space.
func registerMathNatives(root *Root) {
	root.RegisterNative("abs", wrapFloat1(math.Abs))
	root.RegisterNative("acos", wrapFloat1(math.Acos))
	root.RegisterNative("asin", wrapFloat1(math.Asin))
	root.RegisterNative("atan", wrapFloat1(math.Atan))
	root.RegisterNative("atan2", wrapFloat2(math.Atan2))
	root.RegisterNative("ceil", wrapFloat1(math.Ceil))
	root.RegisterNative("cos", wrapFloat1(math.Cos))
	root.RegisterNative("cosh", wrapFloat1(math.Cosh))
	root.RegisterNative("exp", wrapFloat1(math.Exp))
	root.RegisterNative("floor", wrapFloat1(math.Floor))
	root.RegisterNative("log", wrapFloat1(math.Log))
	root.RegisterNative("log10", wrapFloat1(math.Log10))
	root.RegisterNative("pow", wrapFloat2(math.Pow))
	root.RegisterNative("sin", wrapFloat1(math.Sin))
	root.RegisterNative("sinh", wrapFloat1(math.Sinh))
	root.RegisterNative("sqrt", wrapFloat1(math.Sqrt))
	root.RegisterNative("tan", wrapFloat1(math.Tan))
	root.RegisterNative("tanh", wrapFloat1(math.Tanh))
	root.RegisterNative("random", NativeFunc(nativeRandom))

	root.RegisterNative("radix", NativeFunc(nativeRadix))
	root.RegisterNative("precision", NativeFunc(nativePrecision))

	root.RegisterNative("char", NativeFunc(nativeChar))
	root.RegisterNative("ordinal", NativeFunc(nativeOrdinal))
}

// random(m) is uniform over [0, m).
func nativeRandom(f *Frame) Value {
	m := floatArg(f, 0, 1)
	return ValueFromFloat(rand.Float64() * m)
}

// radix(v, r, minLen) renders v, truncated to an integer, in radix r
// (2-16), left-padded to minLen digits.
func nativeRadix(f *Frame) Value {
	v := intArg(f, 0, 0)
	r := int(intArg(f, 1, 10))
	minLen := int(intArg(f, 2, 0))
	s, err := FormatInt(v, r, minLen)
	if err != nil {
		panic(err.(*Error))
	}
	return Value(s)
}

// precision(v, digits) renders v at the given significant-digit count
// (clamped to 1-24 by FormatFloat).
func nativePrecision(f *Frame) Value {
	v := floatArg(f, 0, 0)
	digits := int(intArg(f, 1, 17))
	return Value(FormatFloat(v, digits))
}

// char(code) converts a numeric code point to its one-character string,
// failing IllegalCharacterCode if code is not a valid Unicode scalar value.
func nativeChar(f *Frame) Value {
	code := intArg(f, 0, 0)
	r, err := runeFromCodePoint(code)
	if err != nil {
		panic(err.(*Error))
	}
	return Value(string(r))
}

// ordinal(s) converts a single-character string to its numeric code point,
// failing unless s holds exactly one Unicode scalar value.
func nativeOrdinal(f *Frame) Value {
	s := stringArg(f, 0, "")
	r, size := decodeSingleRune(s)
	if size == 0 || size != len(s) {
		throw(IllegalCharacterCode, "ordinal: not a single character: %q", s)
	}
	return ValueFromInt(int64(r))
}
