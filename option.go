// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seize

// Option represents a possibly-absent value.
//
// Option is the built-in [Sentinel] provider: the absent state is the
// sentinel, and releasing it presumes absence without checking. The zero
// value of Option is None.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates an Option holding a value.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether the option holds a value.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone reports whether the option is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the contained value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOr returns the contained value, or def when absent.
func (o Option[A]) GetOr(def A) A {
	if o.present {
		return o.value
	}
	return def
}

// Map applies f to the contained value, if any. This is the self-typed
// variant of [MapOption], shaped to compose with [Take] and [TakeNoExit]
// transformations.
func (o Option[A]) Map(f func(A) A) Option[A] {
	if o.present {
		return Some(f(o.value))
	}
	return o
}

// NewSentinel implements [Sentinel]. The sentinel for Option is None.
func (Option[A]) NewSentinel() Option[A] {
	return None[A]()
}

// ReleaseSentinel implements [Sentinel]. Release presumes the receiver is
// None and does nothing; this skips a presence check that the capability's
// precondition already rules out.
func (Option[A]) ReleaseSentinel() {}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the contained value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two possibly-absent computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}
