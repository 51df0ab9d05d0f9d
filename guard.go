// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seize

import (
	"fmt"
	"os"
	"runtime/debug"
)

// ExitCode is the process exit status used when a transformation passed to
// [Take] panics. The numeric value is a documented convention with no
// further meaning; it is fixed and nonzero so supervisors can tell this
// termination apart from a clean exit.
const ExitCode = 101

// exitOnPanic runs op and returns its result. If op panics, the panic is
// intercepted here: the panic value and a stack trace are written to stderr
// and the process terminates with [ExitCode]. The panic never unwinds past
// this function.
func exitOnPanic[A any](op func() A) A {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "seize: transformation panicked: %v\n%s", r, debug.Stack())
			os.Exit(ExitCode)
		}
	}()
	return op()
}
