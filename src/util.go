package tpmscore

import (
	"fmt"
	"runtime"
)

// Assert panics with the caller's file and line if t is false. Used only
// for invariants that indicate a bug in this package, never for validating
// untrusted input (malformed samples/bitmaps fail softly with a false
// return, they don't panic).
func Assert(t bool) {
	if !t {
		_, file, line, _ := runtime.Caller(1)
		panic(fmt.Sprintf("assertion failed at %s:%d", file, line))
	}
}

func durationDelta(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// repeatPattern concatenates unit n times, for protocols whose preamble is
// a fixed count of repeated symbol pairs rather than a single literal
// string constant.
func repeatPattern(unit string, n int) string {
	var sb []byte
	for i := 0; i < n; i++ {
		sb = append(sb, unit...)
	}
	return string(sb)
}
