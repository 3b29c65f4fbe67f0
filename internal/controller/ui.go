// Package controller provides output adapters for displaying audit results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// UI defines how audit results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayWarning prints a non-fatal diagnostic immediately. It is safe for
	// concurrent use.
	DisplayWarning(ctx context.Context, message string)
	DisplayReport(ctx context.Context, report m.AuditReport) error
	DisplayReportSaved(ctx context.Context, path m.Path, format m.ReportFormat)
	DisplayCheckResult(ctx context.Context, result m.CheckResult) error
	DisplayKeys(ctx context.Context, keys []m.KeyListing, format m.ReportFormat) error
	ViewReport(ctx context.Context, report m.AuditReport) error
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewUI returns the interactive UI when attached to a terminal and the plain
// text UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	simple := NewSimpleUI(cmd)
	if tty {
		return NewTUI(simple)
	}

	return simple
}
