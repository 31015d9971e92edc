package main

import (
	"github.com/spf13/cobra"

	"github.com/arbolit/cogort"
)

func newDebounceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debounce",
		Short: "run a built-in demo: a chattering input settling through a SimpleDebounce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDebounceDemo(rootOpts)
		},
	}
	return cmd
}

func runDebounceDemo(rootOpts *RootOptions) error {
	log := newLogger(rootOpts)

	// A switch bouncing for a few ticks before settling high.
	readings := []struct {
		at  cogort.Ticks
		raw bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{3, true},
		{4, true},
		{20, true},
	}

	d := cogort.NewSimpleDebounce(15, false)
	for _, r := range readings {
		edge := d.Discover(r.at, r.raw)
		log.Debug().
			Int64(`tick`, int64(r.at)).
			Bool(`raw`, r.raw).
			Bool(`edge`, edge).
			Bool(`stable`, d.Value()).
			Log(`sample`)
	}

	log.Info().Bool(`final`, d.Value()).Log(`debounce demo complete`)
	return nil
}
