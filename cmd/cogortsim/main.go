// Command cogortsim paces a cogort scheduler against a real-time ticker
// and reports what ran. It exists to exercise the library end to end;
// the cogort package itself never touches a clock, a terminal, or a
// logger — cogortsim is the one place in this module allowed to.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// RootOptions holds flags shared by every subcommand.
type RootOptions struct {
	Verbose bool
}

func newLogger(opts *RootOptions) *logiface.Logger[*stumpy.Event] {
	level := stumpy.L.WithStumpy()
	if opts.Verbose {
		return stumpy.L.New(level, logiface.WithLevel[*stumpy.Event](logiface.LevelDebug))
	}
	return stumpy.L.New(level, logiface.WithLevel[*stumpy.Event](logiface.LevelInformational))
}

func newRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cogortsim",
		Short: "cogortsim - drive a cogort scheduler against a scenario",
		Long:  "cogortsim exercises the cogort scheduler, timers, and debouncers against a virtual tick source.",
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log every fired action")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newTimersCommand(opts))
	cmd.AddCommand(newDebounceCommand(opts))

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
