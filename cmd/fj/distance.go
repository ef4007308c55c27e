package main

import (
	"fmt"

	"github.com/on-the-ground/combinator_go/workload"
	"github.com/spf13/cobra"
)

func newDistanceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "distance A B",
		Short: "Compute the edit distance of two strings with a memoized recursion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := workload.NewEditDistance(opts.memoOptions()...)
			v := d.Between(args[0], args[1])
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "distance(%s, %s) = %d (%d evaluations)\n", args[0], args[1], v, d.Calls())
			return err
		},
	}
}
