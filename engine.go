package tested

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// maxFailureMessage caps the length of a preserved failure message, in
// bytes. Longer messages are truncated on a rune boundary.
const maxFailureMessage = 1024

// engine drives one Iterator to completion, invoking case bodies through
// per-run Runtimes and folding outcomes into Stats.
type engine struct {
	obs    Observer
	filter NameFilter
	stats  Stats
}

// run consumes the iterator. It returns the aggregate stats and, if a case
// declared the process corrupted, the error that aborted the traversal.
func (e *engine) run(it *Iterator) (Stats, error) {
	for {
		ev := it.Next()
		switch ev.Kind {
		case EventGroupStart:
			e.obs.OnGroupStart(ev.Group.Name)
		case EventCaseReady:
			if err := e.runCase(ev.Group, ev.Case); err != nil {
				slog.Debug("run aborted", "group", ev.Group.Name, "ordinal", ev.Case.Ordinal, "error", err)
				return e.stats, err
			}
		case EventDone:
			return e.stats, nil
		}
	}
}

// runnerRuntime is the execution-time Runtime bound to one invocation.
type runnerRuntime struct {
	obs     Observer
	filter  NameFilter
	ordinal int
	started bool
}

func (rt *runnerRuntime) StartCase(name string, description ...string) {
	if rt.started {
		return
	}
	if rt.filter.CaseExcludedByName(name) {
		panic(caseSignal{kind: signalFiltered})
	}
	rt.started = true
	rt.obs.OnCaseStart(StartedCase{Name: name, Ordinal: rt.ordinal})
}

// runCase invokes one body and classifies its outcome. Per-case failures
// are reported and counted, never propagated; the returned error is
// non-nil only for the fatal Corrupt signal.
func (e *engine) runCase(g *Group, c *Case) (fatal error) {
	rt := &runnerRuntime{obs: e.obs, filter: e.filter, ordinal: c.Ordinal}
	completed := false

	defer func() {
		if completed {
			// Passed: StartCase was called and the body returned.
			e.obs.OnCaseDone(ResultPassed, "")
			e.stats.Passed++
			return
		}
		switch sig := recover().(type) {
		case caseSignal:
			switch sig.kind {
			case signalFiltered:
				// Not counted, not reported.
			case signalSkip:
				e.obs.OnCaseDone(ResultSkipped, sig.msg)
				e.stats.Skipped++
			case signalFail:
				e.obs.OnCaseDone(ResultFailed, truncateMessage(sig.msg))
				e.stats.Failed++
			case signalCorrupt:
				e.obs.OnCaseDone(ResultFailed, truncateMessage(sig.msg))
				e.stats.Failed++
				fatal = &CorruptError{Group: g.Name, Source: g.Source, Ordinal: c.Ordinal, Message: sig.msg}
			default:
				// A discovery-only signal leaking into a run means the
				// body forged it; treat as an unexpected error.
				e.obs.OnCaseDone(ResultFailed, "unknown error")
				e.stats.Failed++
			}
		default:
			e.obs.OnCaseDone(ResultFailed, truncateMessage(panicMessage(sig)))
			e.stats.Failed++
		}
	}()

	c.Proc(rt)
	completed = true
	return nil
}

// panicMessage extracts a best-effort message from a recovered value.
func panicMessage(v any) string {
	switch m := v.(type) {
	case nil:
		return "unknown error"
	case error:
		return m.Error()
	case string:
		if m == "" {
			return "unknown error"
		}
		return m
	default:
		return fmt.Sprintf("%v", m)
	}
}

// truncateMessage caps msg at maxFailureMessage bytes without splitting a
// rune.
func truncateMessage(msg string) string {
	if len(msg) <= maxFailureMessage {
		return msg
	}
	cut := maxFailureMessage
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}
