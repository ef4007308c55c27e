// Package fn provides arity-tagged function types and the small set of
// combinators that build new function values from them.
//
// Arity is capped at two arguments. The suffix of each combinator names the
// arity of the function it produces (ComposeI2O1 yields a two-input,
// one-output function) or, for partial application, the arity of the
// function it consumes.
package fn

// F0 is a zero-argument producer.
type F0[O any] func() O

// F1 is a one-argument transformer.
type F1[I, O any] func(I) O

// F2 is a two-argument combiner.
type F2[I1, I2, O any] func(I1, I2) O

// Endo is a unary function whose input and output share one type.
type Endo[T any] func(T) T

// F0Err, F1Err and F2Err are the fallible forms of F0, F1 and F2.
type (
	F0Err[O any]         func() (O, error)
	F1Err[I, O any]      func(I) (O, error)
	F2Err[I1, I2, O any] func(I1, I2) (O, error)
)

// Identity returns its argument unchanged. It is the neutral element of composition.
func Identity[A any](x A) A {
	return x
}

// Constantly0 returns a producer that always yields x.
func Constantly0[O any](x O) F0[O] {
	return func() O {
		return x
	}
}

// Constantly1 returns a one-argument function that ignores its argument and yields x.
func Constantly1[I, O any](x O) F1[I, O] {
	return func(_ I) O {
		return x
	}
}

// Constantly2 returns a two-argument function that ignores both arguments and yields x.
func Constantly2[I1, I2, O any](x O) F2[I1, I2, O] {
	return func(_ I1, _ I2) O {
		return x
	}
}

// ConstantlyEndo returns an endomorphism that ignores its argument and yields x.
func ConstantlyEndo[T any](x T) Endo[T] {
	return func(_ T) T {
		return x
	}
}
