// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package between

// Strict composition primitive and its two sections.
//
// Go function application is strict, so Compose forces the inner result to
// a value before the outer function runs. A panic raised while computing
// g(a) therefore surfaces before f is entered, even when f never uses its
// argument. Everything else in this package is built on top of Compose.

// Compose composes two functions right to left: Compose(f, g)(a) == f(g(a)).
// The inner result g(a) is fully evaluated before f is applied, so abort
// timing is observable at each composition step.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// PostCompose is the left section of composition: PostCompose(f) maps a
// later-supplied h to Compose(f, h).
func PostCompose[A, B, C any](f func(B) C) func(func(A) B) func(A) C {
	return func(h func(A) B) func(A) C {
		return Compose(f, h)
	}
}

// PreCompose is the right section of composition: PreCompose(g) maps a
// later-supplied h to Compose(h, g).
func PreCompose[A, B, C any](g func(A) B) func(func(B) C) func(A) C {
	return func(h func(B) C) func(A) C {
		return Compose(h, g)
	}
}

// Identity returns its argument unchanged.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func Identity[A any](a A) A { return a }

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}
