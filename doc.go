// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package between provides a small algebra of strict function-sandwich
// combinators in Go.
//
// The core pattern: given two fixed boundary functions f and g, transform a
// later-supplied middle function h into f ∘ h ∘ g. Everything in the
// package is this combinator, its derivatives, and variants that lift one
// or both boundaries through a mapping context.
//
// # Design Philosophy
//
// between provides:
//   - A strict composition primitive on which every combinator is built
//   - Derived combinators constructed by composing simpler ones, so their
//     mutual-consistency laws hold by construction
//   - A functor-lifted family parameterized by a first-class map operation
//     instead of a type-constructor bound, which Go does not have
//
// All combinators are pure value transformers: no shared state, no I/O, no
// concurrency. The only resource discipline is evaluation-order strictness —
// each composition step fully forces its inner result before applying the
// outer function, so a panic raised by a supplied function surfaces at the
// point its result is forced, never later.
//
// # Strict Composition
//
//   - [Compose]: Right-to-left composition, Compose(f, g)(a) == f(g(a))
//   - [PostCompose]: Left section (f ·)
//   - [PreCompose]: Right section (· g)
//   - [Identity], [Const]: Plumbing for callers and laws
//
// # Core Combinator
//
// [Between] fixes the outer boundary f and inner boundary g:
//
//	Between(f, g)(h)(a) == f(h(g(a)))
//
// It is defined by composing the act of composing:
//
//	Between(f, g) == Compose(PostCompose(f), PreCompose(g))
//
//   - [Between]: Core sandwich combinator
//   - [BetweenFlipped]: Boundaries supplied in (inner, outer) order
//
// # Parametrized Derivatives
//
// The outer boundary, or both boundaries, additionally receive a
// parametrizing argument:
//
//   - [BetweenParam]: f receives the eventual call argument —
//     BetweenParam(f, g)(h)(a) == f(a)(h(g(a)))
//   - [BetweenParamBoth]: Both boundaries receive a shared first argument,
//     independent of the composed call's second argument —
//     BetweenParamBoth(f, g)(h)(a)(b) == f(a)(h(g(a)(b)))
//   - [BetweenParamFlipped], [BetweenParamBothFlipped]: Swapped supply order
//
// # Arity-Extended Self-Composition
//
// Applying the same inner boundary to each argument of a curried n-ary
// middle, by self-application of [Between]:
//
//   - [Between2L]: Between(Between(f, g), g) —
//     Between2L(f, g)(h)(a)(b) == f(h(g(a))(g(b)))
//   - [Between3L]: Ternary analogue
//   - [Curry2], [Curry3]: Bridges from uncurried Go functions
//
// # Functor-Lifted Family
//
// A [Mapping] value is the map operation of a context, lifting func(A) B to
// a function on wrapped values. Each lifted combinator is its unlifted base
// with one or both boundaries pre-mapped. Outer/Inner in a name says which
// boundary is lifted; Flipped says boundaries are supplied in (inner,
// outer) order; flipping never changes which boundary is lifted.
//
// Core class:
//
//   - [BetweenLiftedBoth], [BetweenLiftedOuter], [BetweenLiftedInner]
//   - [BetweenFlippedLiftedBoth], [BetweenFlippedLiftedOuter],
//     [BetweenFlippedLiftedInner]
//
// Single-parametrized class:
//
//   - [BetweenParamLiftedOuter], [BetweenParamLiftedInner]
//   - [BetweenParamFlippedLiftedOuter], [BetweenParamFlippedLiftedInner]
//
// Double-parametrized class:
//
//   - [BetweenParamBothLiftedOuter], [BetweenParamBothLiftedInner]
//   - [BetweenParamBothFlippedLiftedOuter],
//     [BetweenParamBothFlippedLiftedInner]
//
// # Mapping Contexts
//
// Two lawful [Mapping] instances ship with the package; the combinators
// themselves never construct or inspect context values, only thread them.
//
// [Option] — a value that may be absent:
//
//   - [Some], [None]: Constructors
//   - [Option.IsSome], [Option.IsNone], [Option.GetSome], [Option.GetOrElse]
//   - [MatchOption]: Pattern matching
//   - [MapOption]: Functor map — the Mapping instance
//   - [FlatMapOption]: Monadic bind
//
// [Either] — success (Right) or failure (Left), mapped over its Right side:
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight], [Either.GetLeft], [Either.GetRight]
//   - [MatchEither]: Pattern matching
//   - [MapEither]: Functor map over Right — the Mapping instance
//   - [FlatMapEither]: Monadic bind
//   - [MapLeftEither]: Transform Left value
//
// # Example
//
//	double := func(n int) int { return n * 2 }
//	show := strconv.Itoa
//
//	// fix the boundaries, then sandwich any middle function between them
//	onNumber := between.Between(show, double)
//	f := onNumber(func(n int) int { return n + 1 })
//	_ = f(20) // "41" == show((20 * 2) + 1)
//
//	// the same sandwich when the value sits inside an Option
//	lifted := between.BetweenLiftedBoth(
//		between.MapOption[int, string],
//		between.MapOption[string, int],
//		show,
//		func(s string) int { return len(s) },
//	)
package between
