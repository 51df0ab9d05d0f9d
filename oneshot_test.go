// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seize_test

import (
	"testing"

	"code.hybscloud.com/seize"
)

func TestOneshotApply(t *testing.T) {
	once := seize.Once(func(x int) int { return x * 2 })

	got := once.Apply(21)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}

	// After Apply, TryApply must fail
	_, ok := once.TryApply(0)
	if ok {
		t.Fatal("expected TryApply to fail after Apply")
	}
}

func TestOneshotPanicOnReuse(t *testing.T) {
	once := seize.Once(func(x int) int { return x })

	_ = once.Apply(1)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on second Apply")
		}
		if s, ok := r.(string); !ok || s != "seize: one-shot transformation applied twice" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	_ = once.Apply(2)
}

func TestOneshotTryApply(t *testing.T) {
	once := seize.Once(func(s string) string { return s + "!" })

	got, ok := once.TryApply("hi")
	if !ok {
		t.Fatal("expected first TryApply to succeed")
	}
	if got != "hi!" {
		t.Fatalf("got %q, want %q", got, "hi!")
	}

	got, ok = once.TryApply("again")
	if ok {
		t.Fatal("expected second TryApply to fail")
	}
	if got != "" {
		t.Fatalf("got %q, want zero value on failed TryApply", got)
	}
}

func TestOneshotDiscard(t *testing.T) {
	invoked := false
	once := seize.Once(func(x int) int {
		invoked = true
		return x
	})

	once.Discard()

	_, ok := once.TryApply(1)
	if ok {
		t.Fatal("expected TryApply to fail after Discard")
	}
	if invoked {
		t.Fatal("transformation must not run after Discard")
	}
}
