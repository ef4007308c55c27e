package workload

import (
	"sync/atomic"

	"github.com/on-the-ground/combinator_go/fn"
	"github.com/on-the-ground/combinator_go/memo"
)

// EditDistance computes the Levenshtein distance of two strings. Its
// recursion is memoized on the pair of remaining suffixes.
type EditDistance struct {
	between fn.F2[string, string, int]
	calls   atomic.Int64
}

func NewEditDistance(opts ...memo.Option) *EditDistance {
	d := &EditDistance{}
	d.between = memo.MemoizeI2O1With(func(a, b string) int {
		d.calls.Add(1)
		if len(a) == 0 {
			return len(b)
		}
		if len(b) == 0 {
			return len(a)
		}
		if a[0] == b[0] {
			return d.between(a[1:], b[1:])
		}
		return 1 + min(
			d.between(a[1:], b),
			d.between(a, b[1:]),
			d.between(a[1:], b[1:]),
		)
	}, append([]memo.Option{memo.WithName("edit_distance")}, opts...)...)
	return d
}

func (d *EditDistance) Between(a, b string) int {
	return d.between(a, b)
}

// Calls reports how many times the unmemoized body has run.
func (d *EditDistance) Calls() int64 {
	return d.calls.Load()
}

// NaiveEditDistance is the unmemoized definition, kept for comparison.
func NaiveEditDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return NaiveEditDistance(a[1:], b[1:])
	}
	return 1 + min(
		NaiveEditDistance(a[1:], b),
		NaiveEditDistance(a, b[1:]),
		NaiveEditDistance(a[1:], b[1:]),
	)
}
