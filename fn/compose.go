package fn

// ComposeI0O1 returns a producer computing f(g()).
func ComposeI0O1[M, O any](f F1[M, O], g F0[M]) F0[O] {
	return func() O {
		return f(g())
	}
}

// ComposeI1O1 returns a function computing f(g(x)).
func ComposeI1O1[I, M, O any](f F1[M, O], g F1[I, M]) F1[I, O] {
	return func(x I) O {
		return f(g(x))
	}
}

// ComposeI2O1 returns a function computing f(g(x, y)).
// The outer function is always unary; g decides the arity of the result.
func ComposeI2O1[I1, I2, M, O any](f F1[M, O], g F2[I1, I2, M]) F2[I1, I2, O] {
	return func(x I1, y I2) O {
		return f(g(x, y))
	}
}

// ComposeEndo chains fs right to left, so ComposeEndo(f, g)(x) == f(g(x)).
// With no functions it returns Identity.
func ComposeEndo[T any](fs ...Endo[T]) Endo[T] {
	chain := make([]Endo[T], len(fs))
	copy(chain, fs)
	return func(x T) T {
		for i := len(chain) - 1; i >= 0; i-- {
			x = chain[i](x)
		}
		return x
	}
}
