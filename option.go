// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package between

// Option represents a value that may be absent.
// It is the canonical mapping context for the lifted combinator family:
// MapOption is a lawful [Mapping] instance.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// GetSome returns the value and true, or zero and false.
func (o Option[A]) GetSome() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value if present, otherwise the fallback.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption lifts a function over Option: present values are transformed,
// absence propagates without calling f.
func MapOption[A, B any](f func(A) B) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if o.present {
			return Some(f(o.value))
		}
		return None[B]()
	}
}

// FlatMapOption sequences two optional computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}
