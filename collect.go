package tested

import (
	"fmt"
	"log/slog"
	"sort"
)

// RegisterGroup commits one module's cases to the catalog. The commit is
// all-or-nothing: on success the whole group becomes visible in a single
// append; on failure nothing is added, the error is recorded on the
// Registry as a sticky collection failure, and the same error is returned.
//
// Discovery probes every body with a collector Runtime that stops it at
// StartCase, walking ordinals from the highest declared value down and
// rebuilding declaration order. A nil Proc or a body that signals Stub
// marks an absent ordinal and contributes nothing. A body that returns, or
// panics with anything else, before calling StartCase fails collection for
// the whole module.
func RegisterGroup(r *Registry, name, source string, cases []Case) error {
	sorted := make([]Case, len(cases))
	copy(sorted, cases)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Ordinal > sorted[j].Ordinal })

	collected := make([]Case, 0, len(sorted))
	for _, c := range sorted {
		ok, cerr := probeCase(c)
		if cerr != nil {
			cerr.Group = name
			cerr.Source = source
			r.RecordCollectionFailure(cerr)
			return cerr
		}
		if !ok {
			continue
		}
		// High-to-low walk; prepend restores declaration order.
		collected = append([]Case{c}, collected...)
	}

	r.add(&Group{Name: name, Source: source, cases: collected})
	slog.Debug("registered test group", "group", name, "source", source, "cases", len(collected))
	return nil
}

// collectorRuntime is the discovery-time Runtime. StartCase records that
// the body announced itself and immediately unwinds, so code after
// StartCase, which has real side effects, never executes here.
type collectorRuntime struct {
	started bool
}

func (rt *collectorRuntime) StartCase(name string, description ...string) {
	rt.started = true
	panic(caseSignal{kind: signalReal})
}

// probeCase invokes one body under the collector Runtime and reports
// whether the ordinal holds a real case. The result is judged by the
// collector's one-shot started flag, not by signal identity alone.
func probeCase(c Case) (ok bool, cerr *CollectError) {
	if c.Proc == nil {
		return false, nil
	}

	collector := &collectorRuntime{}
	completed := false

	defer func() {
		if completed {
			return
		}
		switch sig := recover().(type) {
		case caseSignal:
			switch {
			case sig.kind == signalStub:
				// Absent ordinal.
			case sig.kind == signalReal && collector.started:
				ok = true
			default:
				// A control signal the body had no business raising
				// before StartCase.
				cerr = &CollectError{Ordinal: c.Ordinal, Message: "case raised a control signal before StartCase"}
			}
		default:
			cerr = &CollectError{Ordinal: c.Ordinal, Message: fmt.Sprintf("case panicked before StartCase: %v", sig)}
		}
	}()

	c.Proc(collector)

	// The body ran to completion without announcing itself: either it is
	// not a test case at all, or it swallowed the collector's signal.
	completed = true
	return false, &CollectError{Ordinal: c.Ordinal, Message: "case did not call StartCase before any other effect"}
}
