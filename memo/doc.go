// Package memo memoizes pure functions of zero, one and two arguments.
//
// Memoization is not just an optimization here. Wrapping a function with
// Memoize is a claim about it:
//
//	→ "Is this function really pure?"
//	→ "Can repeated calls with the same input be answered from a table?"
//
// A memoized function calls the wrapped function exactly once for each
// distinct input it sees, stores the result, and answers later calls with
// the same input from that store. Side effects of the wrapped function are
// therefore observed at most once per input.
//
// Features:
//   - MemoizeI0O1, MemoizeI1O1, MemoizeI2O1: typed memoizers per arity.
//   - ...With variants taking Options (logging, bounded stores, single-flight).
//   - ...In variants taking an explicit Store, such as a RistrettoStore.
//   - ...Err variants for functions returning an error; errors are never cached.
//
// The default store is an unbounded map that grows for the lifetime of the
// memoized function and never evicts. Bounded stores are opt-in.
//
// A memoized function is not safe for concurrent use unless it was built with
// Synchronized. Failures of the wrapped function, whether a panic or a
// returned error, reach the caller unchanged and leave nothing in the store.
//
// Recursive functions may memoize themselves through a captured variable:
//
//	var fib fn.F1[int, int]
//	fib = memo.MemoizeI1O1(func(n int) int {
//		if n <= 1 {
//			return n
//		}
//		return fib(n-1) + fib(n-2)
//	})
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package memo
