package fn

// PartialI1O1 binds the only argument of f and returns a producer of f(x).
func PartialI1O1[I, O any](f F1[I, O], x I) F0[O] {
	return func() O {
		return f(x)
	}
}

// PartialI2O1 binds both arguments of f and returns a producer of f(x, y).
func PartialI2O1[I1, I2, O any](f F2[I1, I2, O], x I1, y I2) F0[O] {
	return func() O {
		return f(x, y)
	}
}

// PartialSecondI2O1 binds the second argument of f. The result still expects
// the first one: PartialSecondI2O1(f, y)(x) == f(x, y).
func PartialSecondI2O1[I1, I2, O any](f F2[I1, I2, O], y I2) F1[I1, O] {
	return func(x I1) O {
		return f(x, y)
	}
}
