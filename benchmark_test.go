// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package between_test

import (
	"testing"

	"code.hybscloud.com/between"
)

// BenchmarkCompose measures a single composed call.
func BenchmarkCompose(b *testing.B) {
	f := func(n int) int { return n * 2 }
	g := func(n int) int { return n + 1 }
	composed := between.Compose(f, g)

	for b.Loop() {
		_ = composed(21)
	}
}

// BenchmarkBetweenConstruction measures building the combinator chain.
func BenchmarkBetweenConstruction(b *testing.B) {
	f := func(n int) int { return n * 2 }
	g := func(n int) int { return n + 1 }
	h := func(n int) int { return n - 3 }

	for b.Loop() {
		_ = between.Between(f, g)(h)
	}
}

// BenchmarkBetweenApplication measures calling a prebuilt sandwich.
func BenchmarkBetweenApplication(b *testing.B) {
	f := func(n int) int { return n * 2 }
	g := func(n int) int { return n + 1 }
	sandwich := between.Between(f, g)(func(n int) int { return n - 3 })

	for b.Loop() {
		_ = sandwich(21)
	}
}

// BenchmarkBetween3L measures the self-composed ternary form.
func BenchmarkBetween3L(b *testing.B) {
	f := func(n int) int { return -n }
	g := func(n int) int { return n + 1 }
	h := between.Curry3(func(x, y, z int) int { return x + y + z })
	composed := between.Between3L(f, g)(h)

	for b.Loop() {
		_ = composed(1)(2)(3)
	}
}

// BenchmarkBetweenLiftedBoth measures the lifted sandwich over Option.
func BenchmarkBetweenLiftedBoth(b *testing.B) {
	f := func(n int) int { return n * 2 }
	g := func(n int) int { return n + 5 }
	lifted := between.BetweenLiftedBoth(
		between.MapOption[int, int],
		between.MapOption[int, int],
		f, g,
	)(between.MapOption(func(n int) int { return n - 1 }))
	in := between.Some(21)

	for b.Loop() {
		_ = lifted(in)
	}
}
