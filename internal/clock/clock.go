package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Fixed returns a clock function that always reports t.
func Fixed(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
