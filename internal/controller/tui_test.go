package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

func longContent(lines int) string {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		b.WriteString("row\n")
	}

	return b.String()
}

func sizedViewModel(t *testing.T, content string) reportViewModel {
	t.Helper()

	report := m.AuditReport{ID: "0123456789abcdef", Summary: m.Summary{TotalIssues: 2, CoveragePercent: 50}}

	model, cmd := newReportViewModel(report, content).Update(tea.WindowSizeMsg{Width: 80, Height: 14})
	assert.Nil(t, cmd)

	rv, ok := model.(reportViewModel)
	require.True(t, ok)

	return rv
}

func TestReportViewModel_Title(t *testing.T) {
	rv := newReportViewModel(m.AuditReport{ID: "0123456789abcdef", Summary: m.Summary{TotalIssues: 2, CoveragePercent: 50}}, "")
	assert.Equal(t, "i18n audit 01234567  2 issue(s)  coverage 50.0%", rv.title)
}

func TestReportViewModel_WindowSize(t *testing.T) {
	rv := newReportViewModel(m.AuditReport{}, "body")
	assert.Equal(t, "Loading report...\n", rv.View())

	rv = sizedViewModel(t, "body")
	assert.True(t, rv.ready)
	assert.Equal(t, 80, rv.viewport.Width)
	assert.Equal(t, 10, rv.viewport.Height)
	assert.Contains(t, rv.View(), "body")

	model, _ := rv.Update(tea.WindowSizeMsg{Width: 40, Height: 3})
	rv = model.(reportViewModel)
	assert.Equal(t, 40, rv.viewport.Width)
	assert.Equal(t, 1, rv.viewport.Height)
}

func TestReportViewModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, cmd := sizedViewModel(t, "body").Update(tt.msg)
			require.NotNil(t, cmd)

			rv := model.(reportViewModel)
			assert.True(t, rv.quitting)
			assert.Empty(t, rv.View())
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestReportViewModel_Jumps(t *testing.T) {
	rv := sizedViewModel(t, longContent(100))
	assert.True(t, rv.viewport.AtTop())

	model, _ := rv.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	rv = model.(reportViewModel)
	assert.True(t, rv.viewport.AtBottom())

	model, _ = rv.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	rv = model.(reportViewModel)
	assert.True(t, rv.viewport.AtTop())

	model, _ = rv.Update(tea.KeyMsg{Type: tea.KeyEnd})
	rv = model.(reportViewModel)
	assert.True(t, rv.viewport.AtBottom())
}
