// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package between

// Core sandwich combinator.
//
// Between fixes two boundary functions f and g and turns a middle function
// h into f ∘ h ∘ g. The definition composes the act of composing —
// Compose(PostCompose(f), PreCompose(g)) — rather than applying the
// boundaries directly. Keeping the combinator in this point-free shape is
// what lets the derived combinators (Between2L, Between3L, the parametrized
// and lifted families) be built by further composition instead of bespoke
// formulas, so their mutual-consistency laws hold by construction.

// Between returns a combinator that sandwiches a middle function between
// the outer boundary f and the inner boundary g:
//
//	Between(f, g)(h)(a) == f(h(g(a)))
//
// Both boundary applications are strict per Compose: g(a) is a value before
// h runs, and h's result is a value before f runs.
//
// Between is equivalent to Compose(PostCompose(f), PreCompose(g)).
func Between[A, B, C, D any](f func(C) D, g func(A) B) func(func(B) C) func(A) D {
	return Compose(PostCompose[A](f), PreCompose[A, B, C](g))
}

// BetweenFlipped is Between with the boundary functions supplied in swapped
// order: the inner boundary g first, the outer boundary f second. The
// resulting combinator is identical:
//
//	BetweenFlipped(g, f)(h)(a) == Between(f, g)(h)(a) == f(h(g(a)))
func BetweenFlipped[A, B, C, D any](g func(A) B, f func(C) D) func(func(B) C) func(A) D {
	return Between(f, g)
}
