// Package pair provides an immutable two-field value usable as a composite map key.
//
// Both field types must be comparable, so equality is structural and a Pair
// can key a Go map directly. This makes Pair meaningful only for value-like
// field types: two pointers are equal only when they point at the same object.
package pair

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// seed is shared by every Pair in the process so that Hash is deterministic
// for the process lifetime.
var seed = maphash.MakeSeed()

type Pair[A, B comparable] struct {
	first  A
	second B
}

func New[A, B comparable](a A, b B) Pair[A, B] {
	return Pair[A, B]{
		first:  a,
		second: b,
	}
}

func (p Pair[A, B]) First() A {
	return p.first
}

func (p Pair[A, B]) Second() B {
	return p.second
}

// Unpack returns both fields as multiple return values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

// Equal reports whether both fields of p and other are equal. It agrees with p == other.
func (p Pair[A, B]) Equal(other Pair[A, B]) bool {
	return p.first == other.first && p.second == other.second
}

// Hash combines the hashes of both fields. Equal pairs always hash equal;
// unequal pairs may collide.
func (p Pair[A, B]) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], maphash.Comparable(seed, p.first))
	binary.LittleEndian.PutUint64(buf[8:], maphash.Comparable(seed, p.second))
	return xxhash.Sum64(buf[:])
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}
