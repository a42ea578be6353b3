package tested

import "fmt"

// Runtime is the capability handed to a case body. There are several
// implementations behind it: one collects cases at registration time, one
// drives real runs, one announces names for export.
type Runtime interface {
	// StartCase must be the body's first observable action. Exactly one
	// optional description string may follow the name. The call is
	// one-shot; repeated calls within the same body are ignored.
	StartCase(name string, description ...string)
}

// CaseProc is the signature of a case body.
type CaseProc func(rt Runtime)

// Case pairs a body with its ordinal, the declaration position of the case
// within its module. Ordinals must be unique within a module; they need
// not be contiguous.
type Case struct {
	Ordinal int
	Proc    CaseProc
}

// Stub is a placeholder body marking an ordinal with no case. Modules
// generated from templates can emit Stub for unfilled slots; discovery
// skips them without error. A nil Proc is equivalent.
func Stub(Runtime) {
	panic(caseSignal{kind: signalStub})
}

// signalKind discriminates the control signals a case body can raise.
// Each driver recovers exactly the kinds it owns and re-panics the rest.
type signalKind int

const (
	signalStub signalKind = iota + 1
	signalReal
	signalFiltered
	signalSkip
	signalFail
	signalCorrupt
)

// caseSignal is the single panic sentinel used for non-linear exits out of
// case bodies. It never escapes the package.
type caseSignal struct {
	kind signalKind
	msg  string
}

// Fail aborts the current case and records it as failed with msg.
func Fail(msg string) {
	panic(caseSignal{kind: signalFail, msg: msg})
}

// FailIf calls Fail(msg) when condition is true.
func FailIf(condition bool, msg string) {
	if condition {
		Fail(msg)
	}
}

// Skip aborts the current case and records it as skipped.
func Skip() {
	panic(caseSignal{kind: signalSkip})
}

// Skipf is Skip with a formatted reason, shown by reporters that display
// one.
func Skipf(format string, args ...any) {
	panic(caseSignal{kind: signalSkip, msg: fmt.Sprintf(format, args...)})
}

// Corrupt declares that the process state is no longer reliable. The
// current case is recorded as failed and the whole run aborts with a
// *CorruptError; later cases and groups do not execute.
func Corrupt(msg string) {
	panic(caseSignal{kind: signalCorrupt, msg: msg})
}
