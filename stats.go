package tested

// Stats aggregates the outcome of one run. Filtered cases touch no
// counter.
type Stats struct {
	Passed  int
	Skipped int
	Failed  int
}

// Total returns the number of cases that produced an outcome.
func (s Stats) Total() int {
	return s.Passed + s.Skipped + s.Failed
}

// IsFailed reports whether any case failed.
func (s Stats) IsFailed() bool { return s.Failed != 0 }

// IsPassed reports whether no case failed.
func (s Stats) IsPassed() bool { return s.Failed == 0 }
