package fn_test

import (
	"strconv"
	"testing"

	"github.com/on-the-ground/combinator_go/fn"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	assert.Equal(t, 1, fn.Identity(1))
	assert.Equal(t, "a", fn.Identity("a"))

	type point struct{ X, Y int }
	assert.Equal(t, point{1, 2}, fn.Identity(point{1, 2}))
}

func TestConstantly(t *testing.T) {
	assert.Equal(t, 42, fn.Constantly0(42)())
	assert.Equal(t, 42, fn.Constantly1[int](42)(100))
	assert.Equal(t, 42, fn.Constantly2[int, string](42)(100, "ignored"))

	never := fn.Constantly1[string]("fixed")
	for _, in := range []string{"", "a", "b"} {
		assert.Equal(t, "fixed", never(in))
	}
}

func TestConstantlyEndo(t *testing.T) {
	five := fn.ConstantlyEndo(5)
	for x := -2; x <= 2; x++ {
		assert.Equal(t, 5, five(x))
	}
	assert.Equal(t, 5, fn.ComposeEndo(five, func(x int) int { return x * 2 })(3))
}

func TestComposeI0O1(t *testing.T) {
	f := fn.ComposeI0O1(
		func(x int) float64 { return float64(x) + 1.0 },
		func() int { return 2 },
	)
	assert.Equal(t, 3.0, f())
}

func TestComposeI1O1(t *testing.T) {
	f := fn.ComposeI1O1(
		func(x int) float64 { return float64(x) + 1.0 },
		func(x int) int { return x * 2 },
	)
	assert.Equal(t, 7.0, f(3))
}

func TestComposeI1O1_OrderMatters(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }

	for x := -3; x <= 3; x++ {
		assert.Equal(t, inc(double(x)), fn.ComposeI1O1(inc, double)(x))
		assert.Equal(t, double(inc(x)), fn.ComposeI1O1(double, inc)(x))
	}
}

func TestComposeI2O1(t *testing.T) {
	f := fn.ComposeI2O1(
		func(x int) float64 { return float64(x) + 1.0 },
		func(x, y int) int { return x * y },
	)
	assert.Equal(t, 7.0, f(2, 3))
}

func TestComposeIdentityConstantly(t *testing.T) {
	f := fn.ComposeI1O1(fn.Identity[int], fn.Constantly1[int](5))
	assert.Equal(t, 5, f(3))
}

func TestComposeIsLazy(t *testing.T) {
	calls := 0
	f := fn.ComposeI0O1(strconv.Itoa, func() int {
		calls++
		return 7
	})
	assert.Equal(t, 0, calls)
	assert.Equal(t, "7", f())
	assert.Equal(t, "7", f())
	assert.Equal(t, 2, calls)
}

func TestComposeEndo(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }

	assert.Equal(t, 7, fn.ComposeEndo[int](inc, double)(3))
	assert.Equal(t, 8, fn.ComposeEndo[int](double, inc)(3))
	assert.Equal(t, 3, fn.ComposeEndo[int]()(3))
	assert.Equal(t, 5, fn.ComposeEndo(fn.Identity[int], fn.ConstantlyEndo(5))(3))
}

func TestComposePropagatesPanic(t *testing.T) {
	f := fn.ComposeI1O1(fn.Identity[int], func(x int) int { return 10 / x })
	assert.Panics(t, func() { f(0) })
}
