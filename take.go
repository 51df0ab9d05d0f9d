// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seize

// Take moves the value out of *ptr, applies transform to it, and stores the
// result back into *ptr. The transformation owns the value for the duration
// of the call: it may consume it, embed it in the replacement, or return it
// unchanged, but every non-panicking return path must produce a well-formed
// replacement.
//
// transform is invoked exactly once. It must not read or write *ptr itself;
// the location is logically empty while it runs.
//
// If transform panics the process terminates with [ExitCode] — see the
// package documentation for why the panic cannot be allowed to unwind. Use
// [TakeNoExit] when the value type can supply a placeholder instead.
func Take[T any](ptr *T, transform func(T) T) {
	exitOnPanic(func() struct{} {
		old := *ptr
		*ptr = transform(old)
		return struct{}{}
	})
}
