// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seize

import (
	"sync/atomic"
)

// Oneshot wraps a transformation with one-shot enforcement.
// The transformation can be applied at most once; subsequent attempts
// panic (Apply) or return false (TryApply).
//
// Swap operations invoke their transformation exactly once and require it
// not to be re-entered for the same location. Oneshot turns that documented
// obligation into a runtime-enforced one: pass the Apply method where a
// transformation is expected.
type Oneshot[T any] struct {
	used      atomic.Uintptr
	transform func(T) T
}

// Once creates a one-shot transformation from a regular one.
// The returned Oneshot can be applied at most once.
func Once[T any](f func(T) T) *Oneshot[T] {
	return &Oneshot[T]{transform: f}
}

// Apply invokes the transformation with the given value.
// Panics if the transformation has already been used.
func (o *Oneshot[T]) Apply(v T) T {
	if o.used.Add(1) != 1 {
		panic("seize: one-shot transformation applied twice")
	}
	return o.transform(v)
}

// TryApply attempts to invoke the transformation.
// Returns (result, true) on success, or (zero, false) if already used.
func (o *Oneshot[T]) TryApply(v T) (T, bool) {
	if o.used.Add(1) != 1 {
		var zero T
		return zero, false
	}
	return o.transform(v), true
}

// Discard marks the transformation as used without invoking it.
func (o *Oneshot[T]) Discard() {
	o.used.Store(1)
}
