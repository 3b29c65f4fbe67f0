package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// TUI implements UI using Bubble Tea for interactive report viewing. Every
// other output goes through the embedded SimpleUI.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(simple *SimpleUI) *TUI {
	return &TUI{SimpleUI: simple}
}

// ViewReport opens a scrollable viewer over the rendered report.
func (p *TUI) ViewReport(ctx context.Context, report m.AuditReport) error {
	var content bytes.Buffer
	if err := RenderReportText(&content, report); err != nil {
		return err
	}

	model := newReportViewModel(report, content.String())

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(p.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("report viewer: %w", err)
	}

	return nil
}

var (
	viewerTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
				Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	viewerHelpStyle = lipgloss.NewStyle().Faint(true)
)

// headerHeight and footerHeight are the lines reserved around the viewport.
const (
	headerHeight = 2
	footerHeight = 2
)

// reportViewModel is the Bubble Tea model of the report viewer.
type reportViewModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newReportViewModel(report m.AuditReport, content string) reportViewModel {
	title := fmt.Sprintf("i18n audit %s  %d issue(s)  coverage %.1f%%",
		shortID(report.ID), report.Summary.TotalIssues, report.Summary.CoveragePercent)

	return reportViewModel{title: title, content: content}
}

func (rv reportViewModel) Init() tea.Cmd {
	return nil
}

func (rv reportViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - headerHeight - footerHeight
		if height < 1 {
			height = 1
		}

		if !rv.ready {
			rv.viewport = viewport.New(msg.Width, height)
			rv.viewport.SetContent(rv.content)
			rv.ready = true
		} else {
			rv.viewport.Width = msg.Width
			rv.viewport.Height = height
		}

		return rv, nil

	case tea.KeyMsg:
		if model, cmd, handled := rv.handleKeyPress(msg); handled {
			return model, cmd
		}
	}

	var cmd tea.Cmd
	rv.viewport, cmd = rv.viewport.Update(msg)

	return rv, cmd
}

//nolint:exhaustive // Only quit and jump keys are handled here; scrolling is the viewport's.
func (rv reportViewModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		rv.quitting = true
		return rv, tea.Quit, true
	default:
	}

	switch msg.String() {
	case "q":
		rv.quitting = true
		return rv, tea.Quit, true
	case "g", "home":
		rv.viewport.GotoTop()
		return rv, nil, true
	case "G", "end":
		rv.viewport.GotoBottom()
		return rv, nil, true
	}

	return rv, nil, false
}

func (rv reportViewModel) View() string {
	if rv.quitting {
		return ""
	}

	if !rv.ready {
		return "Loading report...\n"
	}

	var b strings.Builder

	b.WriteString(viewerTitleStyle.Render(rv.title))
	b.WriteString("\n\n")
	b.WriteString(rv.viewport.View())
	b.WriteString("\n")
	b.WriteString(viewerHelpStyle.Render(fmt.Sprintf(
		"%3.f%%  ↑/k up • ↓/j down • g/G top/bottom • q quit", rv.viewport.ScrollPercent()*100,
	)))

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
