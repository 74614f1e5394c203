// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package between

// Parametrized derivatives of the core combinator.
//
// These thread an extra argument into one or both boundary functions. They
// are defined by delegating to Between with the boundary functions applied
// to the parametrizing argument, not by independent formulas.

// BetweenParam parametrizes the outer boundary by the eventual call
// argument: f receives the same a that the composed function is applied to.
//
//	BetweenParam(f, g)(h)(a) == f(a)(h(g(a))) == Between(f(a), g)(h)(a)
func BetweenParam[A, B, C, D any](f func(A) func(C) D, g func(A) B) func(func(B) C) func(A) D {
	return func(h func(B) C) func(A) D {
		return func(a A) D {
			return Between(f(a), g)(h)(a)
		}
	}
}

// BetweenParamFlipped is BetweenParam with the boundary functions supplied
// in swapped order: inner boundary g first, parametrized outer boundary f
// second.
func BetweenParamFlipped[A, B, C, D any](g func(A) B, f func(A) func(C) D) func(func(B) C) func(A) D {
	return BetweenParam(f, g)
}

// BetweenParamBoth parametrizes both boundaries by a shared first argument.
// Unlike BetweenParam, the parametrizing argument a and the composed call's
// argument b are independent: a selects the boundaries, b feeds the
// composition.
//
//	BetweenParamBoth(f, g)(h)(a) == Between(f(a), g(a))(h)
//	BetweenParamBoth(f, g)(h)(a)(b) == f(a)(h(g(a)(b)))
func BetweenParamBoth[A, B, C, D, E any](f func(A) func(D) E, g func(A) func(B) C) func(func(C) D) func(A) func(B) E {
	return func(h func(C) D) func(A) func(B) E {
		return func(a A) func(B) E {
			return Between(f(a), g(a))(h)
		}
	}
}

// BetweenParamBothFlipped is BetweenParamBoth with the boundary functions
// supplied in swapped order.
func BetweenParamBothFlipped[A, B, C, D, E any](g func(A) func(B) C, f func(A) func(D) E) func(func(C) D) func(A) func(B) E {
	return BetweenParamBoth(f, g)
}
