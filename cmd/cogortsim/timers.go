package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/arbolit/cogort"
)

func newTimersCommand(rootOpts *RootOptions) *cobra.Command {
	var ticks uint32

	cmd := &cobra.Command{
		Use:   "timers",
		Short: "run a built-in demo: one periodic timer and two one-shot timers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimersDemo(rootOpts, ticks)
		},
	}

	cmd.Flags().Uint32Var(&ticks, "ticks", 50, "number of ticks to simulate")

	return cmd
}

func runTimersDemo(rootOpts *RootOptions, ticks uint32) error {
	log := newLogger(rootOpts)

	sched := cogort.NewScheduler(4)
	sched.Start(0)

	var heartbeat, warmup, shutdown cogort.ActionNode
	beats := 0
	sched.SchedulePeriodic(&heartbeat, 0, 10, func() {
		beats++
		log.Debug().
			Int64(`tick`, int64(sched.KnownAbsoluteTicks())).
			Int64(`beat`, int64(beats)).
			Log(`heartbeat`)
	})
	sched.ScheduleAfter(&warmup, 0, 5, func() {
		log.Info().Int64(`tick`, int64(sched.KnownAbsoluteTicks())).Log(`warmup complete`)
	})
	sched.ScheduleAfter(&shutdown, 0, 45, func() {
		log.Info().Int64(`tick`, int64(sched.KnownAbsoluteTicks())).Log(`shutdown requested`)
		sched.Cancel(&heartbeat)
	})

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for now := cogort.Ticks(1); now <= cogort.Ticks(ticks); now++ {
		<-ticker.C
		sched.ExecuteAll(now)
	}

	stats := sched.Stats()
	log.Info().
		Int64(`heartbeats`, int64(beats)).
		Int64(`jitter_mean`, int64(stats.Mean())).
		Int64(`jitter_max`, int64(stats.Max())).
		Log(`timers demo complete`)

	return nil
}
