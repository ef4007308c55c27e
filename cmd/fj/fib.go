package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/on-the-ground/combinator_go/workload"
	"github.com/spf13/cobra"
)

var (
	ErrInvalidIndex    = errors.New("invalid fibonacci index")
	ErrIndexOutOfRange = errors.New("fibonacci index out of range")
)

func newFibCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fib N",
		Short: "Compute the N-th Fibonacci number with a self-memoizing recursion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			fib := workload.NewFibonacci(opts.memoOptions()...)
			v := fib.At(n)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "fib(%d) = %d (%d evaluations)\n", n, v, fib.Calls())
			return err
		},
	}
}

func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, arg)
	}
	if n < 0 || n > workload.MaxFibonacciIndex {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, n, workload.MaxFibonacciIndex)
	}
	return n, nil
}
