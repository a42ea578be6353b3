package console

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/tested"
	"github.com/dkoosis/tested/internal/config"
	"github.com/dkoosis/tested/pkg/live"
	"github.com/dkoosis/tested/pkg/manifest"
)

// Exit codes returned by Main, matching the convention that the host
// binary forwards them to os.Exit.
const (
	ExitOK            = 0
	ExitTestsFailed   = 1
	ExitFailedToStart = 2
)

// Main runs the selected subset of reg with flag-driven selection and
// reporting, and returns the process exit code. Typical use in a host test
// binary:
//
//	func main() {
//		reg := tested.NewRegistry()
//		registerAllGroups(reg)
//		os.Exit(console.Main(reg, os.Args[1:], os.Stdout, os.Stderr))
//	}
//
// Flags:
//
//	-run ADDR    select by address: group, group:case, group:#N, group:*
//	-group G     select one group (combinable with -case or -number)
//	-case NAME   select one case of -group by display name
//	-number N    select one case of -group by ordinal
//	-list        print the selected case catalog as YAML instead of running
//	-live        interactive progress view (TTY only)
//	-theme NAME  reporter theme: default, mono
//	-no-color    force the mono theme
func Main(reg *tested.Registry, args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("tested", flag.ContinueOnError)
	fs.SetOutput(stderr)
	runFlag := fs.String("run", "", "address of the subset to run")
	groupFlag := fs.String("group", "", "group to run")
	caseFlag := fs.String("case", "", "case display name within -group")
	numberFlag := fs.Int("number", -1, "case ordinal within -group")
	listFlag := fs.Bool("list", false, "list selected cases as YAML without running")
	liveFlag := fs.Bool("live", cfg.Live, "interactive progress view")
	themeFlag := fs.String("theme", cfg.Theme, "reporter theme: default, mono")
	noColorFlag := fs.Bool("no-color", cfg.NoColor, "disable colors and unicode icons")
	if err := fs.Parse(args); err != nil {
		return ExitFailedToStart
	}

	subset, err := selectSubset(reg, cfg, *runFlag, *groupFlag, *caseFlag, *numberFlag)
	if err != nil {
		fmt.Fprintf(stderr, "tested: %v\n", err)
		return ExitFailedToStart
	}

	if *listFlag {
		return runList(subset, stdout, stderr)
	}

	theme := ThemeByName(*themeFlag)
	if *noColorFlag || !isTTYWriter(stdout) {
		theme = MonoTheme()
	}

	if *liveFlag && isTTYWriter(stdout) {
		stats, err := live.Run(subset)
		return exitCode(stats, err, stderr)
	}

	reporter := NewReporter(stdout, theme)
	stats, err := subset.Run(reporter)
	if err == nil {
		reporter.Summary(stats)
	}
	return exitCode(stats, err, stderr)
}

// selectSubset builds the subset from flags, falling back to the
// configured default selection, then to the whole catalog.
func selectSubset(reg *tested.Registry, cfg *config.Config, address, group, caseName string, ordinal int) (tested.Subset, error) {
	switch {
	case address != "":
		return reg.ByAddress(address)
	case group != "" && caseName != "":
		return reg.ByGroupAndCaseName(group, caseName), nil
	case group != "" && ordinal >= 0:
		return reg.ByGroupAndCaseNumber(group, ordinal), nil
	case group != "":
		return reg.ByGroup(group), nil
	case caseName != "" || ordinal >= 0:
		return tested.Subset{}, fmt.Errorf("-case and -number require -group")
	case cfg.Run != "":
		return reg.ByAddress(cfg.Run)
	default:
		return reg.GetAll(), nil
	}
}

func runList(subset tested.Subset, stdout, stderr io.Writer) int {
	w := manifest.NewWriter()
	if err := subset.Export(w); err != nil {
		fmt.Fprintf(stderr, "tested: failed to start: %v\n", err)
		return ExitFailedToStart
	}
	if err := w.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "tested: %v\n", err)
		return ExitFailedToStart
	}
	return ExitOK
}

// exitCode maps a run outcome to the process exit code: collection or
// corruption errors mean the run could not complete and map to
// ExitFailedToStart; otherwise failed cases decide.
func exitCode(stats tested.Stats, err error, stderr io.Writer) int {
	if err != nil {
		fmt.Fprintf(stderr, "tested: failed to start: %v\n", err)
		return ExitFailedToStart
	}
	if stats.IsFailed() {
		return ExitTestsFailed
	}
	return ExitOK
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
