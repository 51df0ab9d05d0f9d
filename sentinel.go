// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seize

// Sentinel is the capability a type implements to participate in
// [TakeNoExit]. A sentinel is an invalid-but-drop-safe instance of T used as
// a transient placeholder while the real value is out being transformed.
//
// The constraint is F-bounded (T Sentinel[T]): the type provides both
// operations on itself.
//
//   - NewSentinel constructs the placeholder. It is invoked on a zero-value
//     receiver and must not inspect it; the result must be safe to discard
//     silently at any later point.
//   - ReleaseSentinel consumes a placeholder on the non-panicking path.
//     Precondition: the receiver is exactly the value the matching
//     NewSentinel call produced for the current operation. Implementations
//     must not relax this into a runtime check; presuming the precondition
//     is what lets release be free. Violating it is a caller error with
//     unspecified consequences.
type Sentinel[T any] interface {
	NewSentinel() T
	ReleaseSentinel()
}

// TakeNoExit behaves like [Take] but never terminates the process. Instead
// of guarding the transformation, it first installs a freshly constructed
// sentinel into *ptr, so that the location holds a well-formed (if invalid)
// T for the whole window in which the original value is out.
//
// On a normal return from transform, *ptr holds the transformation's result
// and the displaced sentinel is released. If transform panics, the panic
// propagates to the caller unchanged and *ptr is left holding the sentinel —
// still a valid, drop-safe T, just not the value the caller wanted. The
// caller decides how to proceed from there.
func TakeNoExit[T Sentinel[T]](ptr *T, transform func(T) T) {
	var probe T
	old := Replace(ptr, probe.NewSentinel())
	// A panic below leaves the sentinel installed, intentionally.
	Replace(ptr, transform(old)).ReleaseSentinel()
}
