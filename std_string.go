package pika

import "strings"

// registerStringNatives binds the string-search and string-transform
// natives of spec.md §4.8 into root's Variable Space.
func registerStringNatives(root *Root) {
	root.RegisterNative("length", NativeFunc(nativeLength))
	root.RegisterNative("find", NativeFunc(nativeFind))
	root.RegisterNative("rfind", NativeFunc(nativeRFind))
	root.RegisterNative("mismatch", NativeFunc(nativeMismatch))
	root.RegisterNative("rmismatch", NativeFunc(nativeRMismatch))
	root.RegisterNative("search", NativeFunc(nativeSearch))
	root.RegisterNative("rsearch", NativeFunc(nativeRSearch))
	root.RegisterNative("span", NativeFunc(nativeSpan))
	root.RegisterNative("rspan", NativeFunc(nativeRSpan))

	root.RegisterNative("lower", NativeFunc(nativeLower))
	root.RegisterNative("upper", NativeFunc(nativeUpper))
	root.RegisterNative("reverse", NativeFunc(nativeReverse))
	root.RegisterNative("escape", NativeFunc(nativeEscapeNative))
	root.RegisterNative("trim", NativeFunc(nativeTrim))
	root.RegisterNative("repeat", NativeFunc(nativeRepeat))
	root.RegisterNative("chop", NativeFunc(nativeChop))
	root.RegisterNative("right", NativeFunc(nativeRight))
}

func nativeLength(f *Frame) Value {
	s := stringArg(f, 0, "")
	return ValueFromInt(int64(len(s)))
}

// find(a, b) returns the index of the first character of a that also
// appears in b, or length(a) on miss.
func nativeFind(f *Frame) Value {
	a := stringArg(f, 0, "")
	b := stringArg(f, 1, "")
	i := strings.IndexAny(a, b)
	if i < 0 {
		return ValueFromInt(int64(len(a)))
	}
	return ValueFromInt(int64(i))
}

// rfind(a, b) is find's mirror: the last character of a that appears in b,
// or -1 on miss.
func nativeRFind(f *Frame) Value {
	a := stringArg(f, 0, "")
	b := stringArg(f, 1, "")
	i := strings.LastIndexAny(a, b)
	return ValueFromInt(int64(i))
}

// mismatch(a, b) returns the index of the first position at which a and b
// differ (or the length of the shorter string, if one is a prefix of the
// other).
func nativeMismatch(f *Frame) Value {
	a := stringArg(f, 0, "")
	b := stringArg(f, 1, "")
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return ValueFromInt(int64(i))
}

// rmismatch(a, b) compares from the right: the index (from the left) at
// which the trailing runs of a and b, aligned at their ends, stop agreeing.
func nativeRMismatch(f *Frame) Value {
	a := stringArg(f, 0, "")
	b := stringArg(f, 1, "")
	i, j := len(a)-1, len(b)-1
	for i >= 0 && j >= 0 && a[i] == b[j] {
		i--
		j--
	}
	return ValueFromInt(int64(i + 1))
}

// search(a, b) returns the index of the first occurrence of substring b in
// a, or length(a) on miss.
func nativeSearch(f *Frame) Value {
	a := stringArg(f, 0, "")
	b := stringArg(f, 1, "")
	i := strings.Index(a, b)
	if i < 0 {
		return ValueFromInt(int64(len(a)))
	}
	return ValueFromInt(int64(i))
}

// rsearch(a, b) returns the index of the last occurrence of substring b in
// a, or -1 on miss.
func nativeRSearch(f *Frame) Value {
	a := stringArg(f, 0, "")
	b := stringArg(f, 1, "")
	return ValueFromInt(int64(strings.LastIndex(a, b)))
}

// span(a, set) returns the index of the first character of a not in set,
// or length(a) if every character of a is in set.
func nativeSpan(f *Frame) Value {
	a := stringArg(f, 0, "")
	set := stringArg(f, 1, "")
	i := strings.IndexFunc(a, func(r rune) bool { return !strings.ContainsRune(set, r) })
	if i < 0 {
		return ValueFromInt(int64(len(a)))
	}
	return ValueFromInt(int64(i))
}

// rspan(a, set) is span's mirror: the index of the last character of a not
// in set, or -1 if every character of a is in set.
func nativeRSpan(f *Frame) Value {
	a := stringArg(f, 0, "")
	set := stringArg(f, 1, "")
	i := strings.LastIndexFunc(a, func(r rune) bool { return !strings.ContainsRune(set, r) })
	return ValueFromInt(int64(i))
}

func nativeLower(f *Frame) Value {
	return Value(strings.ToLower(stringArg(f, 0, "")))
}

func nativeUpper(f *Frame) Value {
	return Value(strings.ToUpper(stringArg(f, 0, "")))
}

func nativeReverse(f *Frame) Value {
	s := []rune(stringArg(f, 0, ""))
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return Value(string(s))
}

func nativeEscapeNative(f *Frame) Value {
	return Value(Escape(stringArg(f, 0, "")))
}

// trim(s, cutset?) trims leading and trailing whitespace, or leading and
// trailing characters from cutset if given.
func nativeTrim(f *Frame) Value {
	s := stringArg(f, 0, "")
	if argCount(f) > 1 {
		return Value(strings.Trim(s, stringArg(f, 1, "")))
	}
	return Value(strings.TrimSpace(s))
}

func nativeRepeat(f *Frame) Value {
	s := stringArg(f, 0, "")
	n := int(intArg(f, 1, 0))
	if n < 0 {
		n = 0
	}
	return Value(strings.Repeat(s, n))
}

// chop(s, n?) removes the last n characters of s (default 1).
func nativeChop(f *Frame) Value {
	s := stringArg(f, 0, "")
	n := int(intArg(f, 1, 1))
	if n < 0 {
		n = 0
	}
	if n >= len(s) {
		return voidValue
	}
	return Value(s[:len(s)-n])
}

// right(s, n?) returns the rightmost n characters of s (default 1).
func nativeRight(f *Frame) Value {
	s := stringArg(f, 0, "")
	n := int(intArg(f, 1, 1))
	if n <= 0 {
		return voidValue
	}
	if n >= len(s) {
		return Value(s)
	}
	return Value(s[len(s)-n:])
}
