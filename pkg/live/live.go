// Package live renders an in-flight test run as an interactive terminal
// view. It drives a Subset.Run in the background and streams observer
// callbacks into a bubbletea program.
package live

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/tested"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// ErrInterrupted reports that the view was closed before the run finished.
var ErrInterrupted = errors.New("run interrupted")

// Run executes the subset with a live progress view and returns the run's
// stats and error once the view exits. Closing the view mid-run returns
// ErrInterrupted; the host process is expected to exit right after, which
// is what stops the still-running subset.
func Run(subset tested.Subset) (tested.Stats, error) {
	p := tea.NewProgram(newModel())
	go func() {
		stats, err := subset.Run(&observer{p: p})
		p.Send(runDoneMsg{stats: stats, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return tested.Stats{}, fmt.Errorf("running live view: %w", err)
	}
	return finish(final.(model))
}

// finish maps the final model to the run outcome. A model that never saw
// runDoneMsg means the user quit mid-run, and its partial stats must not
// pass for a clean result.
func finish(m model) (tested.Stats, error) {
	if !m.done {
		return tested.Stats{}, ErrInterrupted
	}
	return m.stats, m.runErr
}

// observer forwards run progress into the program's message loop. Run
// callbacks arrive from the single run goroutine, so tracking the current
// case needs no locking.
type observer struct {
	p       *tea.Program
	current tested.StartedCase
}

func (o *observer) OnGroupStart(name string) {
	o.p.Send(groupMsg(name))
}

func (o *observer) OnCaseStart(c tested.StartedCase) {
	o.current = c
	o.p.Send(caseStartMsg(c))
}

func (o *observer) OnCaseDone(result tested.CaseResult, message string) {
	o.p.Send(caseDoneMsg{c: o.current, result: result, message: message})
}

type groupMsg string

type caseStartMsg tested.StartedCase

type caseDoneMsg struct {
	c       tested.StartedCase
	result  tested.CaseResult
	message string
}

type runDoneMsg struct {
	stats tested.Stats
	err   error
}

type model struct {
	spin    spinner.Model
	lines   []string
	running string
	done    bool
	stats   tested.Stats
	runErr  error
}

func newModel() model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = headerStyle
	return model{spin: s}
}

func (m model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.done {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case groupMsg:
		m.lines = append(m.lines, headerStyle.Render(string(msg)))

	case caseStartMsg:
		m.running = fmt.Sprintf("%02d:%s", msg.Ordinal, msg.Name)

	case caseDoneMsg:
		m.running = ""
		m.lines = append(m.lines, verdictLine(msg))

	case runDoneMsg:
		m.done = true
		m.stats = msg.stats
		m.runErr = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder
	for _, line := range m.lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if m.running != "" {
		sb.WriteString(m.spin.View())
		sb.WriteString(" ")
		sb.WriteString(mutedStyle.Render(m.running))
		sb.WriteString("\n")
	}
	if m.done {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf(
			"passed %d · skipped %d · failed %d",
			m.stats.Passed, m.stats.Skipped, m.stats.Failed)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func verdictLine(msg caseDoneMsg) string {
	label := fmt.Sprintf("  %02d:%s ", msg.c.Ordinal, msg.c.Name)
	switch msg.result {
	case tested.ResultPassed:
		return label + successStyle.Render("✓")
	case tested.ResultSkipped:
		return label + warnStyle.Render("○ skipped")
	default:
		line := label + errorStyle.Render("✗ failed")
		if msg.message != "" {
			line += mutedStyle.Render(": " + msg.message)
		}
		return line
	}
}
