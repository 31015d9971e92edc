package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/arbolit/cogort"
)

// tickInterval paces the simulator against a real clock instead of
// bursting through every tick at once, so --verbose output reads like a
// running system rather than a dump. cogort itself never imports "time";
// this is the one place in the module allowed to.
const tickInterval = 10 * time.Millisecond

func newRunCommand(rootOpts *RootOptions) *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario file to completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, scenarioPath)
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "scenario.toml", "path to a scenario TOML file")

	return cmd
}

func runScenario(rootOpts *RootOptions, path string) error {
	log := newLogger(rootOpts)

	scenario, err := loadScenario(path)
	if err != nil {
		return err
	}

	sched := cogort.NewScheduler(4)
	sched.Start(0)
	nodes := make([]cogort.ActionNode, len(scenario.Timers))

	for i, ts := range scenario.Timers {
		ts := ts
		action := func() {
			log.Info().
				Str(`timer`, ts.Name).
				Int64(`tick`, int64(sched.KnownAbsoluteTicks())).
				Log(`fired`)
		}
		if ts.Period != 0 {
			sched.SchedulePeriodic(&nodes[i], 0, cogort.Ticks(ts.Period), action)
		} else {
			sched.ScheduleAfter(&nodes[i], 0, cogort.Ticks(ts.Delay), action)
		}
	}

	var debounceNode cogort.ActionNode
	if ds := scenario.Debounce; ds != nil {
		idx := 0
		poll := func() bool {
			if idx >= len(ds.Samples) {
				return ds.Initial
			}
			v := ds.Samples[idx]
			idx++
			return v
		}
		deb := cogort.NewScheduledDebounce(ds.RequiredSamples, ds.Initial)
		deb.OnChange(&debounceNode, func(v bool) {
			log.Info().Bool(`stable`, v).Log(`debounce changed`)
		})
		deb.Arm(sched, 0, cogort.Ticks(ds.Period), poll)
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	fired := 0
	for now := cogort.Ticks(1); now <= cogort.Ticks(scenario.Ticks); now++ {
		<-ticker.C
		fired += sched.ExecuteAll(now)
	}

	log.Info().
		Int64(`ticks`, int64(scenario.Ticks)).
		Int64(`actions_fired`, int64(fired)).
		Log(`scenario complete`)

	return nil
}
