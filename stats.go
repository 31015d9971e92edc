package cogort

import "golang.org/x/exp/constraints"

// SchedulerStats tracks the running maximum and an exponentially
// decayed rolling mean of a stream of non-negative samples — cogort's
// own jitter metric is inter-execution tick deltas sampled by the
// [Scheduler], but the type is generic over any ordered, unsigned-style
// sample so it can be reused for other rolling measurements (queue
// depth, debounce settle time).
//
// The decay kernel is a power-of-two exponential moving average
// (mean += (sample - mean) >> shift), the kernel spec.md's own
// "power-of-two decay" phrasing points at directly, chosen over a full
// streaming-quantile estimator because cogort only ever needs a mean
// and a max, not arbitrary percentiles.
type SchedulerStats[S constraints.Integer] struct {
	max   S
	mean  S
	shift uint
	n     uint64
}

// NewSchedulerStats returns a tracker with the given decay shift. A
// larger shift means slower decay (longer effective averaging window);
// shift 0 means the mean tracks the latest sample exactly. 3 is a
// reasonable default (an 8-sample effective window).
func NewSchedulerStats[S constraints.Integer](shift uint) *SchedulerStats[S] {
	return &SchedulerStats[S]{shift: shift}
}

// Observe folds sample into the running statistics.
func (s *SchedulerStats[S]) Observe(sample S) {
	if sample > s.max {
		s.max = sample
	}
	if s.n == 0 {
		s.mean = sample
	} else {
		// Computed in int64 so a sample below the current mean
		// subtracts correctly instead of underflowing S when S is
		// unsigned (ticks and tick deltas both are).
		delta := int64(sample) - int64(s.mean)
		s.mean = S(int64(s.mean) + delta>>s.shift)
	}
	s.n++
}

// Max returns the largest sample observed so far.
func (s *SchedulerStats[S]) Max() S { return s.max }

// Mean returns the current decayed rolling mean.
func (s *SchedulerStats[S]) Mean() S { return s.mean }

// Count returns the number of samples observed so far.
func (s *SchedulerStats[S]) Count() uint64 { return s.n }

// Reset clears all accumulated statistics.
func (s *SchedulerStats[S]) Reset() {
	var zero S
	s.max, s.mean, s.n = zero, zero, 0
}
