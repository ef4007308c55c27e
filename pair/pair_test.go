package pair_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/combinator_go/pair"
	"github.com/stretchr/testify/assert"
)

func TestPair_Accessors(t *testing.T) {
	p := pair.New(3, "four")
	assert.Equal(t, 3, p.First())
	assert.Equal(t, "four", p.Second())

	a, b := p.Unpack()
	assert.Equal(t, 3, a)
	assert.Equal(t, "four", b)
	assert.Equal(t, "(3, four)", p.String())
}

func TestPair_Equality(t *testing.T) {
	values := []int{-1, 0, 1, 2}
	for _, a1 := range values {
		for _, b1 := range values {
			for _, a2 := range values {
				for _, b2 := range values {
					p, q := pair.New(a1, b1), pair.New(a2, b2)
					want := a1 == a2 && b1 == b2
					assert.Equal(t, want, p.Equal(q))
					assert.Equal(t, want, p == q)
					if want {
						assert.Equal(t, p.Hash(), q.Hash())
					}
				}
			}
		}
	}
}

func TestPair_HashIsDeterministic(t *testing.T) {
	p := pair.New("x", 1.5)
	assert.Equal(t, p.Hash(), p.Hash())
	assert.Equal(t, p.Hash(), pair.New("x", 1.5).Hash())
}

func TestPair_SignedZeroHashesEqual(t *testing.T) {
	pos := pair.New(0.0, 1)
	neg := pair.New(math.Copysign(0, -1), 1)
	assert.True(t, pos.Equal(neg))
	assert.Equal(t, pos.Hash(), neg.Hash())
}

func TestPair_AsMapKey(t *testing.T) {
	m := map[pair.Pair[int, int]]int{}
	m[pair.New(3, 4)] = 12
	m[pair.New(4, 3)] = 13

	assert.Len(t, m, 2)
	assert.Equal(t, 12, m[pair.New(3, 4)])
	assert.Equal(t, 13, m[pair.New(4, 3)])
}

func TestPair_FieldOrderMatters(t *testing.T) {
	assert.False(t, pair.New(1, 2).Equal(pair.New(2, 1)))
}
