// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seize

// Move-and-replace helpers. These are the primitive motions the swap
// operations are built from: a new value goes in, the displaced value comes
// out as an owned result rather than being overwritten silently.

// Replace stores v into *ptr and returns the value that was displaced.
// Unlike [Take], the replacement must exist before the old value becomes
// available, which is exactly the restriction Take lifts.
func Replace[T any](ptr *T, v T) T {
	old := *ptr
	*ptr = v
	return old
}

// Swap exchanges the values behind a and b.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}
