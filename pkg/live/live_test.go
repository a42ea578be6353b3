package live

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/tested"
)

func step(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func TestModel_ProgressFlow(t *testing.T) {
	t.Parallel()

	m := newModel()
	m = step(t, m, groupMsg("math"))
	m = step(t, m, caseStartMsg(tested.StartedCase{Name: "Addition", Ordinal: 0}))
	assert.Contains(t, m.View(), "00:Addition")

	m = step(t, m, caseDoneMsg{
		c:      tested.StartedCase{Name: "Addition", Ordinal: 0},
		result: tested.ResultPassed,
	})
	assert.Empty(t, m.running, "finished case leaves the running slot")

	m = step(t, m, caseDoneMsg{
		c:       tested.StartedCase{Name: "Division", Ordinal: 1},
		result:  tested.ResultFailed,
		message: "division by zero",
	})
	assert.Contains(t, m.View(), "division by zero")
}

func TestModel_RunDoneShowsSummaryAndQuits(t *testing.T) {
	t.Parallel()

	m := newModel()
	next, cmd := m.Update(runDoneMsg{stats: tested.Stats{Passed: 2, Failed: 1}})
	m = next.(model)

	assert.True(t, m.done)
	assert.Contains(t, m.View(), "passed 2")
	assert.Contains(t, m.View(), "failed 1")
	assert.NotNil(t, cmd, "run completion must quit the program")
}

func TestModel_CtrlCMidRunReportsInterruption(t *testing.T) {
	t.Parallel()

	m := newModel()
	m = step(t, m, caseStartMsg(tested.StartedCase{Name: "Addition", Ordinal: 0}))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(model)
	assert.NotNil(t, cmd, "ctrl+c must quit the program")
	assert.False(t, m.done)

	stats, err := finish(m)
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.Equal(t, tested.Stats{}, stats, "an aborted run must not report partial stats as a result")
}

func TestModel_FinishAfterRunDoneReturnsStats(t *testing.T) {
	t.Parallel()

	m := step(t, newModel(), runDoneMsg{stats: tested.Stats{Passed: 2, Failed: 1}})
	stats, err := finish(m)
	assert.NoError(t, err)
	assert.Equal(t, tested.Stats{Passed: 2, Failed: 1}, stats)
}

func TestModel_QuitKeyOnlyAfterDone(t *testing.T) {
	t.Parallel()

	m := newModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.Nil(t, cmd, "q must be inert while the run is in flight")

	m.done = true
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)
}
