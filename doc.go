// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seize provides ownership-style access to values behind pointers.
//
// The core function [Take] moves the value out of a *T, hands it to a
// caller-supplied transformation that may consume it freely, and stores the
// transformation's result back into the same location. Contrast with
// [Replace], which also installs a new value but requires it to exist before
// the old value can be consumed.
//
// # Design Philosophy
//
// seize provides:
//   - A single-cycle "take ownership, transform, put back" primitive over an
//     exclusively held location
//   - Failure containment that guarantees a location is never observed
//     holding an invalid value
//   - A minimal two-operation capability ([Sentinel]) for types that opt in
//     to a non-terminating failure path
//
// From the outside, a location operated on by this package always holds a
// well-formed T. The interior window in which the value has been moved out
// is never observable: on the [Take] path a panicking transformation
// terminates the process, and on the [TakeNoExit] path the location holds a
// drop-safe placeholder for the whole window.
//
// All operations assume the caller holds exclusive access to the location
// for the full duration of the call. The package adds no synchronization of
// its own.
//
// # Exit-on-Panic Guarantee
//
// If the transformation passed to [Take] panics, there is no valid T to put
// back. Letting the panic unwind would leave the location in a half-consumed
// state observable by deferred functions and recover sites further up the
// stack. [Take] therefore intercepts the panic, writes the panic value and a
// stack trace to stderr, and terminates the process with [ExitCode]. This is
// a process-fatal path by design, not a recoverable one; see [TakeNoExit]
// for the recoverable alternative.
//
// # Sentinel Capability
//
// [TakeNoExit] trades process termination for a weaker postcondition. The
// value type declares, via the [Sentinel] constraint, how to construct a
// placeholder that is always safe to silently discard, and how to release
// such a placeholder afterwards. During the transformation the location
// holds the placeholder; if the transformation panics, the panic propagates
// normally and the placeholder simply stays behind as the location's value.
//
//   - [Sentinel]: the two-operation capability constraint
//   - [TakeNoExit]: the sentinel-based swap
//   - [Option]: the built-in provider, with None as its sentinel
//
// ReleaseSentinel carries an unchecked precondition: it must only be invoked
// on the exact value the matching NewSentinel produced. The package never
// verifies this at runtime; violating it is a caller error.
//
// # Move-and-Replace Helpers
//
//   - [Replace]: store a new value, return the displaced one
//   - [Swap]: exchange the values behind two pointers
//
// # One-Shot Transformations
//
// A transformation is one-shot: each swap invokes it exactly once, and it
// must not re-enter the location it is transforming. [Once] wraps a
// transformation with runtime enforcement of that contract:
//
//   - [Once]: create a one-shot transformation
//   - [Oneshot.Apply]: invoke (panics on reuse)
//   - [Oneshot.TryApply]: non-panicking variant
//   - [Oneshot.Discard]: drop without invoking
//
// # Option Type
//
// [Option] represents a possibly-absent value:
//
//   - [Some], [None]: constructors
//   - [Option.IsSome], [Option.IsNone]: predicates
//   - [Option.Get], [Option.GetOr]: accessors
//   - [Option.Map]: self-typed transformation of the contained value
//   - [MatchOption]: pattern matching
//   - [MapOption]: functor map to another element type
//   - [FlatMapOption]: monadic bind
//
// # Example
//
//	type conn struct{ /* ... */ }
//
//	func reconnect(c conn) conn {
//		c.close()            // consume the old connection
//		return dial(c.addr)  // produce its replacement
//	}
//
//	var active conn = dial(addr)
//	seize.Take(&active, reconnect)
//	// active now holds the new connection; the old one was consumed
//	// while the location was logically empty, invisibly to any observer.
package seize
