// Package workload holds recursive functions that only become tractable once
// memoized. Each one counts how often its body runs, which makes the effect
// of memoization observable.
package workload

import (
	"sync/atomic"

	"github.com/on-the-ground/combinator_go/fn"
	"github.com/on-the-ground/combinator_go/memo"
)

// MaxFibonacciIndex is the largest n whose Fibonacci number fits an int32.
const MaxFibonacciIndex = 46

// Fibonacci is the naive doubly recursive definition whose recursive calls
// go through its own memoized wrapper.
type Fibonacci struct {
	at    fn.F1[int, int32]
	calls atomic.Int64
}

func NewFibonacci(opts ...memo.Option) *Fibonacci {
	f := &Fibonacci{}
	f.at = memo.MemoizeI1O1With(func(n int) int32 {
		f.calls.Add(1)
		if n <= 1 {
			return int32(n)
		}
		return f.at(n-1) + f.at(n-2)
	}, append([]memo.Option{memo.WithName("fibonacci")}, opts...)...)
	return f
}

// At returns the n-th Fibonacci number. Results above MaxFibonacciIndex overflow;
// a negative n is returned unchanged.
func (f *Fibonacci) At(n int) int32 {
	return f.at(n)
}

// Calls reports how many times the unmemoized body has run.
func (f *Fibonacci) Calls() int64 {
	return f.calls.Load()
}

// NaiveFibonacci is the unmemoized definition, kept for comparison.
func NaiveFibonacci(n int) int32 {
	if n <= 1 {
		return int32(n)
	}
	return NaiveFibonacci(n-1) + NaiveFibonacci(n-2)
}
