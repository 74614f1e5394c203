// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package between_test

import (
	"testing"

	"code.hybscloud.com/between"
)

func add(a, b int) int { return a + b }

func TestBetween2L(t *testing.T) {
	// Between2L(negate, +1)(+)(3)(4) == negate((3+1)+(4+1)) == -9
	negate := func(n int) int { return -n }
	incr := func(n int) int { return n + 1 }

	got := between.Between2L(negate, incr)(between.Curry2(add))(3)(4)
	if got != -9 {
		t.Fatalf("got %d, want -9", got)
	}
}

// TestBetween2LIdentity: Between2L(Identity, g) is the classic "apply g to
// both operands before calling a binary function" pattern.
func TestBetween2LIdentity(t *testing.T) {
	g := func(n int) int { return n * n }

	on := between.Between2L(between.Identity[int], g)(between.Curry2(add))
	for _, tc := range []struct{ a, b, want int }{
		{3, 4, 25},
		{0, 0, 0},
		{-2, 5, 29},
	} {
		if got := on(tc.a)(tc.b); got != tc.want {
			t.Fatalf("at (%d, %d): got %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestBetween2LSelfComposition: Between2L(f, g) ≡ Between(Between(f, g), g)
// pointwise.
func TestBetween2LSelfComposition(t *testing.T) {
	f := func(n int) int { return n * 7 }
	g := func(n int) int { return n - 2 }
	h := between.Curry2(func(a, b int) int { return a*10 + b })

	for _, a := range []int{0, 1, 5} {
		for _, b := range []int{2, 3, 8} {
			left := between.Between2L(f, g)(h)(a)(b)
			right := between.Between(between.Between(f, g), g)(h)(a)(b)
			if left != right {
				t.Fatalf("at (%d, %d): %d != %d", a, b, left, right)
			}
			if want := f(h(g(a))(g(b))); left != want {
				t.Fatalf("at (%d, %d): got %d, want %d", a, b, left, want)
			}
		}
	}
}

func TestBetween3L(t *testing.T) {
	// Between3L(f, g)(h)(a)(b)(c) == f(h(g(a))(g(b))(g(c)))
	f := func(n int) int { return -n }
	g := func(n int) int { return n + 1 }
	sum3 := between.Curry3(func(a, b, c int) int { return a + b + c })

	got := between.Between3L(f, g)(sum3)(1)(2)(3)
	if got != -9 {
		t.Fatalf("got %d, want -9", got)
	}

	for _, a := range []int{0, 4} {
		for _, b := range []int{1, 6} {
			for _, c := range []int{-3, 2} {
				left := between.Between3L(f, g)(sum3)(a)(b)(c)
				want := f(sum3(g(a))(g(b))(g(c)))
				if left != want {
					t.Fatalf("at (%d, %d, %d): got %d, want %d", a, b, c, left, want)
				}
			}
		}
	}
}

func TestCurry2(t *testing.T) {
	curried := between.Curry2(add)
	if got := curried(2)(3); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestCurry3(t *testing.T) {
	concat := func(a, b, c string) string { return a + b + c }
	curried := between.Curry3(concat)
	if got := curried("a")("b")("c"); got != "abc" {
		t.Fatalf("got %q, want %q", got, "abc")
	}
}
