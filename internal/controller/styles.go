package controller

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// styles are bound to one writer so colours are dropped when it is not a
// terminal.
type styles struct {
	title   lipgloss.Style
	faint   lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:   r.NewStyle().Bold(true),
		faint:   r.NewStyle().Faint(true),
		pass:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		fail:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		info:    r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

func (s styles) severity(severity m.Severity) lipgloss.Style {
	switch severity {
	case m.SeverityError:
		return s.fail
	case m.SeverityWarning:
		return s.warning
	default:
		return s.info
	}
}
