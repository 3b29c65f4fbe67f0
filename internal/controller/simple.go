package controller

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// SimpleUI implements UI by writing to the cobra command's streams.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayWarning prints a diagnostic to stderr.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := newStyles(s.cmd.ErrOrStderr())
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s %s\n", st.warning.Render("warning:"), message)
}

// DisplayReport prints the tabular report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.AuditReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return RenderReportText(s.cmd.OutOrStdout(), report)
}

// DisplayReportSaved confirms where a report was written.
func (s *SimpleUI) DisplayReportSaved(ctx context.Context, path m.Path, format m.ReportFormat) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Report (%s) written to %s\n", format, displayPath(path))
}

// DisplayCheckResult prints the counted issues and the pass/fail verdict.
func (s *SimpleUI) DisplayCheckResult(ctx context.Context, result m.CheckResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	st := newStyles(s.cmd.OutOrStdout())

	for _, issue := range result.Report.Issues {
		if result.ErrorsOnly && issue.Severity != m.SeverityError {
			continue
		}

		s.printf("%s %s %s\n",
			st.severity(issue.Severity).Render(fmt.Sprintf("%-7s", issue.Severity)),
			location(issue.Path, issue.Line),
			issue.Message,
		)
	}

	for _, file := range result.Report.Files {
		if file.Status == m.FileError {
			s.printf("%s %s %s\n", st.fail.Render(fmt.Sprintf("%-7s", m.SeverityError)), displayPath(file.Path), file.Error)
		}
	}

	summary := result.Report.Summary
	s.printf("\n%s\n", st.faint.Render(fmt.Sprintf(
		"%d file(s), %d call site(s), %d unique key(s), coverage %.1f%%",
		summary.TotalFiles, summary.TotalCallSites, summary.UniqueKeys, summary.CoveragePercent,
	)))

	scope := "issue(s)"
	if result.ErrorsOnly {
		scope = "error(s)"
	}

	if result.Exceeded() {
		s.printf("%s %d %s, threshold %d\n", st.fail.Render("FAIL"), result.Counted, scope, result.Threshold)
	} else {
		s.printf("%s %d %s, threshold %d\n", st.pass.Render("PASS"), result.Counted, scope, result.Threshold)
	}

	return nil
}

// DisplayKeys prints key listings as a table, JSON or CSV.
func (s *SimpleUI) DisplayKeys(ctx context.Context, keys []m.KeyListing, format m.ReportFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.cmd.OutOrStdout()

	switch format {
	case m.FormatJSON:
		if keys == nil {
			keys = []m.KeyListing{}
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(keys)
	case m.FormatCSV:
		w := csv.NewWriter(out)
		if err := w.Write([]string{"key", "path", "line", "count"}); err != nil {
			return err
		}

		for _, key := range keys {
			line := ""
			if key.Line > 0 {
				line = strconv.Itoa(key.Line)
			}

			if err := w.Write([]string{key.Key, displayPath(key.Path), line, strconv.Itoa(key.Count)}); err != nil {
				return err
			}
		}

		w.Flush()

		return w.Error()
	case m.FormatText, "":
		_, err := fmt.Fprint(out, renderKeysTable(keys))
		return err
	default:
		return fmt.Errorf("unsupported key listing format %q", format)
	}
}

func renderKeysTable(keys []m.KeyListing) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Key", "Location", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	total := 0

	for _, key := range keys {
		where := ""
		if key.Path != "" {
			where = location(key.Path, key.Line)
		}

		table.Append([]string{key.Key, where, fmt.Sprintf("%d", key.Count)})
		total += key.Count
	}

	table.SetFooter([]string{fmt.Sprintf("Total Keys %d", len(keys)), "", fmt.Sprintf("%d", total)})
	table.Render()

	return tableBuffer.String()
}

// ViewReport prints the report; SimpleUI has no interactive mode.
func (s *SimpleUI) ViewReport(ctx context.Context, report m.AuditReport) error {
	return s.DisplayReport(ctx, report)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
