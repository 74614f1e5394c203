// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package between

// Arity-extended derivatives: apply the same inner boundary to each
// argument of a curried n-ary middle function, then apply the outer
// boundary to the final result. Both are literal self-applications of
// Between — the outer boundary of the outer Between is itself a Between
// combinator — which is what makes the law
//
//	Between2L(f, g)(h)(a)(b) == f(h(g(a))(g(b)))
//
// hold by construction rather than by hand-derived formula.

// Between2L sandwiches a curried binary middle function: the inner boundary
// g is applied to each of the two arguments, the outer boundary f to the
// binary result.
//
//	Between2L(f, g)(h)(a)(b) == f(h(g(a))(g(b)))
//
// Between2L(Identity, g) is the classic "apply g to both operands before
// calling a binary function" pattern.
func Between2L[A, B, C, D any](f func(C) D, g func(A) B) func(func(B) func(B) C) func(A) func(A) D {
	return Between(Between(f, g), g)
}

// Between3L sandwiches a curried ternary middle function, applying the
// inner boundary g to each of the three arguments.
//
//	Between3L(f, g)(h)(a)(b)(c) == f(h(g(a))(g(b))(g(c)))
func Between3L[A, B, C, D any](f func(C) D, g func(A) B) func(func(B) func(B) func(B) C) func(A) func(A) func(A) D {
	return Between(Between(Between(f, g), g), g)
}

// Curry2 turns an uncurried binary function into the curried shape the
// arity-extended combinators expect.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 turns an uncurried ternary function into curried shape.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}
