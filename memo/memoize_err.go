package memo

import (
	"github.com/on-the-ground/combinator_go/fn"
	"github.com/on-the-ground/combinator_go/pair"
)

// MemoizeI0O1Err memoizes a fallible producer. Only a successful result is
// cached; after an error the next call invokes f again.
func MemoizeI0O1Err[O any](f fn.F0Err[O], opts ...Option) fn.F0Err[O] {
	t := newTable[unit, O](nil, newConfig(opts))
	fallible := func(unit) (O, error) {
		return f()
	}
	return func() (O, error) {
		return t.call(unit{}, fallible)
	}
}

// MemoizeI1O1Err memoizes a fallible one-argument function. Errors are
// returned unchanged and never cached.
func MemoizeI1O1Err[I comparable, O any](f fn.F1Err[I, O], opts ...Option) fn.F1Err[I, O] {
	t := newTable[I, O](nil, newConfig(opts))
	return func(x I) (O, error) {
		return t.call(x, f)
	}
}

// MemoizeI2O1Err memoizes a fallible two-argument function. Errors are
// returned unchanged and never cached.
func MemoizeI2O1Err[I1, I2 comparable, O any](f fn.F2Err[I1, I2, O], opts ...Option) fn.F2Err[I1, I2, O] {
	t := newTable[pair.Pair[I1, I2], O](nil, newConfig(opts))
	fallible := func(key pair.Pair[I1, I2]) (O, error) {
		return f(key.Unpack())
	}
	return func(x I1, y I2) (O, error) {
		return t.call(pair.New(x, y), fallible)
	}
}
