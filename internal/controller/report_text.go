package controller

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// RenderReportText writes the tabular rendition of a report: summary, issues
// and per-file results.
func RenderReportText(w io.Writer, report m.AuditReport) error {
	var b bytes.Buffer

	st := newStyles(w)

	fmt.Fprintf(&b, "%s\n", st.title.Render("i18n audit report "+report.ID))
	fmt.Fprintf(&b, "Generated %s\n", report.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Pages %s, locales %s\n\n", displayPath(report.Config.PagesRoot), displayPath(report.Config.LocalesRoot))

	b.WriteString(renderSummaryTable(report.Summary))
	b.WriteString("\n")

	if len(report.Issues) == 0 {
		b.WriteString("No issues found.\n\n")
	} else {
		b.WriteString(renderIssuesTable(report.Issues))
		b.WriteString("\n")
	}

	b.WriteString(renderFilesTable(report.Files))

	_, err := w.Write(b.Bytes())

	return err
}

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := [][]string{
		{"Files scanned", fmt.Sprintf("%d", summary.TotalFiles)},
		{"Files with issues", fmt.Sprintf("%d", summary.FilesWithIssues)},
		{"Files with errors", fmt.Sprintf("%d", summary.FilesWithErrors)},
		{"Call sites", fmt.Sprintf("%d", summary.TotalCallSites)},
		{"Unique keys", fmt.Sprintf("%d", summary.UniqueKeys)},
		{"Catalog entries", fmt.Sprintf("%d", summary.CatalogEntries)},
		{"Missing keys", fmt.Sprintf("%d", summary.MissingKeys)},
	}

	for _, kind := range m.IssueKinds {
		rows = append(rows, []string{kindLabel(kind), fmt.Sprintf("%d", summary.ByKind[kind])})
	}

	rows = append(rows,
		[]string{"Errors / warnings / info", fmt.Sprintf("%d / %d / %d", summary.Errors, summary.Warnings, summary.Infos)},
		[]string{"Total issues", fmt.Sprintf("%d", summary.TotalIssues)},
	)

	table.AppendBulk(rows)
	table.SetFooter([]string{"Coverage", fmt.Sprintf("%.1f%%", summary.CoveragePercent)})
	table.Render()

	return tableBuffer.String()
}

func renderIssuesTable(issues []m.Issue) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Severity", "Kind", "Location", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, issue := range issues {
		table.Append([]string{
			string(issue.Severity),
			string(issue.Kind),
			location(issue.Path, issue.Line),
			issueDetail(issue),
		})
	}

	table.SetFooter([]string{"", "", "Total issues", fmt.Sprintf("%d", len(issues))})
	table.Render()

	return tableBuffer.String()
}

func renderFilesTable(files []m.FileResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Status", "Keys", "Issues"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	totalKeys := 0
	totalIssues := 0

	for _, file := range files {
		status := string(file.Status)
		if file.Error != "" {
			status += ": " + file.Error
		}

		table.Append([]string{
			displayPath(file.Path),
			status,
			fmt.Sprintf("%d", file.KeyCount),
			fmt.Sprintf("%d", file.IssueCount),
		})

		totalKeys += file.KeyCount
		totalIssues += file.IssueCount
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(files)),
		"",
		fmt.Sprintf("%d", totalKeys),
		fmt.Sprintf("%d", totalIssues),
	})
	table.Render()

	return tableBuffer.String()
}

func issueDetail(issue m.Issue) string {
	switch {
	case issue.Key != "":
		return issue.Key
	case issue.Text != "":
		return issue.Text
	default:
		return issue.Message
	}
}

func kindLabel(kind m.IssueKind) string {
	return strings.ReplaceAll(string(kind), "_", " ")
}

func location(path m.Path, line int) string {
	if line <= 0 {
		return displayPath(path)
	}

	return fmt.Sprintf("%s:%d", displayPath(path), line)
}

// displayPath shortens paths under the working directory.
func displayPath(path m.Path) string {
	if !filepath.IsAbs(string(path)) {
		return string(path)
	}

	wd, err := os.Getwd()
	if err != nil {
		return string(path)
	}

	rel, err := filepath.Rel(wd, string(path))
	if err != nil || strings.HasPrefix(rel, "..") {
		return string(path)
	}

	return rel
}
