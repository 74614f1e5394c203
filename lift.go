// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package between

// Functor-lifted combinator family.
//
// Each combinator here is its unlifted base with one or both boundary
// functions sent through a context's map operation before composing. Go has
// no type-constructor parameters, so the map capability is passed as a
// first-class [Mapping] value; the wrapped types C<A>, C<B>, ... appear as
// ordinary type parameters (CA, CB, ...).
//
// Naming: Outer is the boundary applied last (f in f(h(g(a)))), Inner the
// boundary applied first (g). Flipped variants supply the boundaries in
// (inner, outer) order; which boundary gets mapped never changes with
// flipping, only the order of supply does.
//
// The family exists to build accessor/update pairs where the value being
// read or written lives inside a container (an optional or an effectful
// result) rather than being bare: the same sandwich machinery then operates
// uniformly whether or not a side is in context.

// Mapping is the map operation of a mapping context: it lifts a function on
// plain values to a function on wrapped values, where CA and CB stand for
// the context applied to A and B. A Mapping must be lawful —
//
//	m(Identity) behaves as Identity
//	m(Compose(f, g)) behaves as Compose(m(f), m(g))
//
// — which this package assumes and never verifies. [MapOption] and
// [MapEither] are lawful instances.
type Mapping[A, B, CA, CB any] func(func(A) B) func(CA) CB

// BetweenLiftedBoth lifts both boundary functions, each through its own
// context. The middle function runs entirely inside the contexts: it takes
// the inner context's wrapped value and yields the outer context's.
//
//	BetweenLiftedBoth(mo, mi, f, g) == Between(mo(f), mi(g))
func BetweenLiftedBoth[A, B, C, D, GA, GB, FC, FD any](
	mapOuter Mapping[C, D, FC, FD],
	mapInner Mapping[A, B, GA, GB],
	f func(C) D,
	g func(A) B,
) func(func(GB) FC) func(GA) FD {
	return Between(mapOuter(f), mapInner(g))
}

// BetweenLiftedOuter lifts only the outer boundary: the middle function's
// range is already inside the context, and so is the final result.
//
//	BetweenLiftedOuter(m, f, g) == Between(m(f), g)
func BetweenLiftedOuter[A, B, C, D, FC, FD any](
	m Mapping[C, D, FC, FD],
	f func(C) D,
	g func(A) B,
) func(func(B) FC) func(A) FD {
	return Between(m(f), g)
}

// BetweenLiftedInner lifts only the inner boundary: the eventual argument
// and the middle function's domain are inside the context.
//
//	BetweenLiftedInner(m, f, g) == Between(f, m(g))
func BetweenLiftedInner[A, B, C, D, GA, GB any](
	m Mapping[A, B, GA, GB],
	f func(C) D,
	g func(A) B,
) func(func(GB) C) func(GA) D {
	return Between(f, m(g))
}

// BetweenFlippedLiftedBoth is BetweenLiftedBoth with boundaries supplied in
// (inner, outer) order, mappings alongside their functions.
func BetweenFlippedLiftedBoth[A, B, C, D, GA, GB, FC, FD any](
	mapInner Mapping[A, B, GA, GB],
	mapOuter Mapping[C, D, FC, FD],
	g func(A) B,
	f func(C) D,
) func(func(GB) FC) func(GA) FD {
	return BetweenLiftedBoth(mapOuter, mapInner, f, g)
}

// BetweenFlippedLiftedOuter is BetweenLiftedOuter with boundaries supplied
// in (inner, outer) order; the outer boundary is still the lifted one.
func BetweenFlippedLiftedOuter[A, B, C, D, FC, FD any](
	m Mapping[C, D, FC, FD],
	g func(A) B,
	f func(C) D,
) func(func(B) FC) func(A) FD {
	return BetweenLiftedOuter(m, f, g)
}

// BetweenFlippedLiftedInner is BetweenLiftedInner with boundaries supplied
// in (inner, outer) order; the inner boundary is still the lifted one.
func BetweenFlippedLiftedInner[A, B, C, D, GA, GB any](
	m Mapping[A, B, GA, GB],
	g func(A) B,
	f func(C) D,
) func(func(GB) C) func(GA) D {
	return BetweenLiftedInner(m, f, g)
}

// BetweenParamLiftedOuter lifts the parametrized outer boundary of
// BetweenParam: for each argument a, f(a) is sent through the context's map.
//
//	BetweenParamLiftedOuter(m, f, g)(h)(a) == m(f(a))(h(g(a)))
func BetweenParamLiftedOuter[A, B, C, D, FC, FD any](
	m Mapping[C, D, FC, FD],
	f func(A) func(C) D,
	g func(A) B,
) func(func(B) FC) func(A) FD {
	return BetweenParam(func(a A) func(FC) FD { return m(f(a)) }, g)
}

// BetweenParamLiftedInner lifts the inner boundary of BetweenParam. The
// eventual argument is then a wrapped value, so the parametrized outer
// boundary receives the wrapped argument.
//
//	BetweenParamLiftedInner(m, f, g)(h)(ga) == f(ga)(h(m(g)(ga)))
func BetweenParamLiftedInner[A, B, C, D, GA, GB any](
	m Mapping[A, B, GA, GB],
	f func(GA) func(C) D,
	g func(A) B,
) func(func(GB) C) func(GA) D {
	return BetweenParam(f, m(g))
}

// BetweenParamFlippedLiftedOuter is BetweenParamLiftedOuter with boundaries
// supplied in (inner, outer) order.
func BetweenParamFlippedLiftedOuter[A, B, C, D, FC, FD any](
	m Mapping[C, D, FC, FD],
	g func(A) B,
	f func(A) func(C) D,
) func(func(B) FC) func(A) FD {
	return BetweenParamLiftedOuter(m, f, g)
}

// BetweenParamFlippedLiftedInner is BetweenParamLiftedInner with boundaries
// supplied in (inner, outer) order.
func BetweenParamFlippedLiftedInner[A, B, C, D, GA, GB any](
	m Mapping[A, B, GA, GB],
	g func(A) B,
	f func(GA) func(C) D,
) func(func(GB) C) func(GA) D {
	return BetweenParamLiftedInner(m, f, g)
}

// BetweenParamBothLiftedOuter lifts the parametrized outer boundary of
// BetweenParamBoth: for each parametrizing argument a, f(a) is mapped.
//
//	BetweenParamBothLiftedOuter(m, f, g)(h)(a)(b) == m(f(a))(h(g(a)(b)))
func BetweenParamBothLiftedOuter[A, B, C, D, E, FD, FE any](
	m Mapping[D, E, FD, FE],
	f func(A) func(D) E,
	g func(A) func(B) C,
) func(func(C) FD) func(A) func(B) FE {
	return BetweenParamBoth(func(a A) func(FD) FE { return m(f(a)) }, g)
}

// BetweenParamBothLiftedInner lifts the parametrized inner boundary of
// BetweenParamBoth: for each parametrizing argument a, g(a) is mapped, so
// the composed call's second argument is a wrapped value.
//
//	BetweenParamBothLiftedInner(m, f, g)(h)(a)(gb) == f(a)(h(m(g(a))(gb)))
func BetweenParamBothLiftedInner[A, B, C, D, E, GB, GC any](
	m Mapping[B, C, GB, GC],
	f func(A) func(D) E,
	g func(A) func(B) C,
) func(func(GC) D) func(A) func(GB) E {
	return BetweenParamBoth(f, func(a A) func(GB) GC { return m(g(a)) })
}

// BetweenParamBothFlippedLiftedOuter is BetweenParamBothLiftedOuter with
// boundaries supplied in (inner, outer) order.
func BetweenParamBothFlippedLiftedOuter[A, B, C, D, E, FD, FE any](
	m Mapping[D, E, FD, FE],
	g func(A) func(B) C,
	f func(A) func(D) E,
) func(func(C) FD) func(A) func(B) FE {
	return BetweenParamBothLiftedOuter(m, f, g)
}

// BetweenParamBothFlippedLiftedInner is BetweenParamBothLiftedInner with
// boundaries supplied in (inner, outer) order.
func BetweenParamBothFlippedLiftedInner[A, B, C, D, E, GB, GC any](
	m Mapping[B, C, GB, GC],
	g func(A) func(B) C,
	f func(A) func(D) E,
) func(func(GC) D) func(A) func(GB) E {
	return BetweenParamBothLiftedInner(m, f, g)
}
