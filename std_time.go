package pika

import (
	"time"

	"github.com/variadico/lctime"
)

// registerTimeNatives binds the "misc" time native of spec.md §4.8 into
// root's Variable Space.
func registerTimeNatives(root *Root) {
	root.RegisterNative("time", NativeFunc(nativeTime))
}

// time(format?) returns the current Unix timestamp as a number when called
// with no argument, or a locale-formatted string (via lctime.Strftime, ANSI
// C strftime directives) when given a format string.
func nativeTime(f *Frame) Value {
	now := time.Now()
	if argCount(f) == 0 {
		return ValueFromFloat(float64(now.UnixNano()) / 1e9)
	}
	format := stringArg(f, 0, "%Y-%m-%d %H:%M:%S")
	return Value(lctime.Strftime(format, now))
}
