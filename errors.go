package tested

import "fmt"

// CollectError reports that a module's case discovery failed. Once
// recorded on a Registry it is sticky: every later Run or Export over that
// Registry fails immediately with the stored error.
type CollectError struct {
	Group   string // group name, if known at the point of failure
	Source  string // module source identifier
	Ordinal int    // ordinal of the offending case
	Message string
}

func (e *CollectError) Error() string {
	if e.Group == "" {
		return fmt.Sprintf("collecting case #%d: %s", e.Ordinal, e.Message)
	}
	return fmt.Sprintf("collecting %q case #%d (%s): %s", e.Group, e.Ordinal, e.Source, e.Message)
}

// CorruptError reports that a case declared the process state unreliable.
// It aborts the run that produced it and carries enough context to locate
// the case.
type CorruptError struct {
	Group   string
	Source  string
	Ordinal int
	Message string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("process corrupted in %q case #%d (%s): %s", e.Group, e.Ordinal, e.Source, e.Message)
}
