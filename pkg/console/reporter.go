// Package console is the default terminal collaborator for tested: an
// Observer that reports run progress as styled text, plus a Main helper
// wiring flags, configuration and exit codes for host test binaries.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/tested"
)

// verdictColumn is the column at which PASSED/FAILED/SKIPPED verdicts are
// aligned. Case labels wider than this push the verdict right.
const verdictColumn = 48

// Reporter prints run progress to a writer. It implements tested.Observer.
type Reporter struct {
	w       io.Writer
	theme   Theme
	current tested.StartedCase
}

// NewReporter creates a reporter writing styled output to w.
func NewReporter(w io.Writer, theme Theme) *Reporter {
	return &Reporter{w: w, theme: theme}
}

// OnGroupStart prints the group header.
func (r *Reporter) OnGroupStart(name string) {
	fmt.Fprintf(r.w, "\n%s %s\n", r.theme.Header.Render(name), r.theme.Muted.Render("[group]"))
	fmt.Fprintln(r.w, r.theme.Muted.Render(strings.Repeat("─", 56)))
}

// OnCaseStart announces a case before its substantive effects run.
func (r *Reporter) OnCaseStart(c tested.StartedCase) {
	r.current = c
	fmt.Fprintln(r.w, r.theme.Muted.Render(r.caseLabel()+"..."))
}

// OnCaseDone prints the failure or skip message, if any, followed by the
// aligned verdict line.
func (r *Reporter) OnCaseDone(result tested.CaseResult, message string) {
	if message != "" {
		switch result {
		case tested.ResultFailed:
			fmt.Fprintln(r.w, r.theme.Error.Render("Case failed: "+message))
		case tested.ResultSkipped:
			fmt.Fprintln(r.w, r.theme.Warning.Render("Case skipped: "+message))
		}
	}

	label := runewidth.FillRight(r.caseLabel(), verdictColumn)
	switch result {
	case tested.ResultPassed:
		fmt.Fprintln(r.w, label+r.theme.Success.Render(r.theme.Icons.Pass+" PASSED"))
	case tested.ResultFailed:
		fmt.Fprintln(r.w, label+r.theme.Error.Render(r.theme.Icons.Fail+" FAILED"))
	case tested.ResultSkipped:
		fmt.Fprintln(r.w, label+r.theme.Warning.Render(r.theme.Icons.Skip+" SKIPPED"))
	}
}

func (r *Reporter) caseLabel() string {
	return fmt.Sprintf("%02d:%s", r.current.Ordinal, r.current.Name)
}

// Summary prints the aggregate outcome of a finished run.
func (r *Reporter) Summary(stats tested.Stats) {
	title := cases.Title(language.English).String("test results")
	fmt.Fprintf(r.w, "\n%s\n", r.theme.Header.Render(title))
	fmt.Fprintf(r.w, "  %s\n", r.theme.Success.Render(fmt.Sprintf("%s Passed:  %d", r.theme.Icons.Pass, stats.Passed)))
	fmt.Fprintf(r.w, "  %s\n", r.theme.Warning.Render(fmt.Sprintf("%s Skipped: %d", r.theme.Icons.Skip, stats.Skipped)))
	fmt.Fprintf(r.w, "  %s\n", r.theme.Error.Render(fmt.Sprintf("%s Failed:  %d", r.theme.Icons.Fail, stats.Failed)))
}
