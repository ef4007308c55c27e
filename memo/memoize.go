package memo

import (
	"github.com/on-the-ground/combinator_go/fn"
	"github.com/on-the-ground/combinator_go/pair"
)

// unit keys the single result of a zero-argument function.
type unit struct{}

func MemoizeI0O1[O any](f fn.F0[O]) fn.F0[O] {
	return MemoizeI0O1With(f)
}

func MemoizeI1O1[I comparable, O any](f fn.F1[I, O]) fn.F1[I, O] {
	return MemoizeI1O1With(f)
}

func MemoizeI2O1[I1, I2 comparable, O any](f fn.F2[I1, I2, O]) fn.F2[I1, I2, O] {
	return MemoizeI2O1With(f)
}

func MemoizeI0O1With[O any](f fn.F0[O], opts ...Option) fn.F0[O] {
	t := newTable[unit, O](nil, newConfig(opts))
	return func() O {
		v, _ := t.call(unit{}, func(unit) (O, error) {
			return f(), nil
		})
		return v
	}
}

func MemoizeI1O1With[I comparable, O any](f fn.F1[I, O], opts ...Option) fn.F1[I, O] {
	return MemoizeI1O1In(f, nil, opts...)
}

func MemoizeI2O1With[I1, I2 comparable, O any](f fn.F2[I1, I2, O], opts ...Option) fn.F2[I1, I2, O] {
	return MemoizeI2O1In(f, nil, opts...)
}

// MemoizeI1O1In memoizes f into store. A nil store selects the default one.
func MemoizeI1O1In[I comparable, O any](f fn.F1[I, O], store Store[I, O], opts ...Option) fn.F1[I, O] {
	t := newTable(store, newConfig(opts))
	fallible := func(x I) (O, error) {
		return f(x), nil
	}
	return func(x I) O {
		v, _ := t.call(x, fallible)
		return v
	}
}

// MemoizeI2O1In memoizes f into store, keyed by the pair of arguments.
// A nil store selects the default one.
func MemoizeI2O1In[I1, I2 comparable, O any](
	f fn.F2[I1, I2, O],
	store Store[pair.Pair[I1, I2], O],
	opts ...Option,
) fn.F2[I1, I2, O] {
	t := newTable(store, newConfig(opts))
	fallible := func(key pair.Pair[I1, I2]) (O, error) {
		return f(key.Unpack()), nil
	}
	return func(x I1, y I2) O {
		v, _ := t.call(pair.New(x, y), fallible)
		return v
	}
}
