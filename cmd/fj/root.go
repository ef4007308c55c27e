package main

import (
	"io"

	"github.com/on-the-ground/combinator_go/memo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	verbose    bool
	maxEntries uint32
	sync       bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "fj",
		Short:        "Run memoized recursive workloads",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				opts.logger = newConsoleLogger(cmd.ErrOrStderr())
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log memo hits and misses to stderr")
	flags.Uint32Var(&opts.maxEntries, "max-entries", 0, "bound each memo table to two generations of this many entries (0 = unbounded)")
	flags.BoolVar(&opts.sync, "sync", false, "use single-flight memo tables safe for concurrent use")

	cmd.AddCommand(
		newFibCmd(opts),
		newDistanceCmd(opts),
	)
	return cmd
}

func (o *rootOptions) memoOptions() []memo.Option {
	opts := []memo.Option{
		memo.WithLogger(o.logger),
		memo.WithMaxEntries(o.maxEntries),
	}
	if o.sync {
		opts = append(opts, memo.Synchronized())
	}
	return opts
}

func newConsoleLogger(w io.Writer) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}
