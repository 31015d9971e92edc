package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TimerSpec describes one scheduler entry: a one-shot timer if Period is
// zero, otherwise a periodic one.
type TimerSpec struct {
	Name   string `toml:"name"`
	Delay  uint32 `toml:"delay"`
	Period uint32 `toml:"period"`
}

// DebounceSpec describes a run of raw boolean samples fed through a
// [cogort.ScheduledDebounce] at a fixed polling period.
type DebounceSpec struct {
	RequiredSamples int    `toml:"required_samples"`
	Period          uint32 `toml:"period"`
	Initial         bool   `toml:"initial"`
	Samples         []bool `toml:"samples"`
}

// Scenario is the top-level shape of a scenario file: how many ticks to
// run the simulation for, plus the timers and debounce run to arm against
// the scheduler at tick zero.
type Scenario struct {
	Ticks    uint32        `toml:"ticks"`
	Timers   []TimerSpec   `toml:"timers"`
	Debounce *DebounceSpec `toml:"debounce"`
}

// loadScenario reads and parses a scenario file from path.
func loadScenario(path string) (*Scenario, error) {
	var s Scenario
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("cogortsim: decoding scenario %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("cogortsim: scenario %s has unrecognized keys: %v", path, undecoded)
	}
	if s.Ticks == 0 {
		return nil, fmt.Errorf("cogortsim: scenario %s: ticks must be > 0", path)
	}
	return &s, nil
}
