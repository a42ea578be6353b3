package tested

// CaseResult classifies a finished case for observers.
type CaseResult int

const (
	ResultPassed CaseResult = iota
	ResultFailed
	ResultSkipped
)

// String returns the result verdict in reporter spelling.
func (r CaseResult) String() string {
	switch r {
	case ResultPassed:
		return "PASSED"
	case ResultFailed:
		return "FAILED"
	case ResultSkipped:
		return "SKIPPED"
	default:
		return "UNKNOWN"
	}
}

// StartedCase identifies a case once its body has announced itself.
type StartedCase struct {
	Name    string
	Ordinal int
}

// Observer receives run progress. Implementations live outside the core;
// see pkg/console for the default terminal reporter.
//
// Contract: OnGroupStart fires once per entered group before any of its
// cases; OnCaseStart once per non-filtered case before its substantive
// effects; OnCaseDone exactly once per started case, including the case
// that aborts the run via Corrupt. Filtered cases produce no callbacks.
type Observer interface {
	OnGroupStart(name string)
	OnCaseStart(c StartedCase)
	OnCaseDone(result CaseResult, message string)
}

// nopObserver discards all progress. Used when Run is given a nil
// observer.
type nopObserver struct{}

func (nopObserver) OnGroupStart(string)           {}
func (nopObserver) OnCaseStart(StartedCase)       {}
func (nopObserver) OnCaseDone(CaseResult, string) {}
