package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// FileStatus is the outcome of auditing one document.
type FileStatus string

const (
	FileClean  FileStatus = "clean"
	FileIssues FileStatus = "issues"

	// FileError marks a document that could not be processed. It always counts
	// as one issue.
	FileError FileStatus = "error"
)

// FileResult holds the audit outcome for a single source file.
type FileResult struct {
	Path       Path       `json:"path" yaml:"path"`
	Status     FileStatus `json:"status" yaml:"status"`
	KeyCount   int        `json:"key_count" yaml:"key_count"`
	IssueCount int        `json:"issue_count" yaml:"issue_count"`
	Error      string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary aggregates counts across the whole run.
type Summary struct {
	TotalFiles      int               `json:"total_files" yaml:"total_files"`
	FilesWithIssues int               `json:"files_with_issues" yaml:"files_with_issues"`
	FilesWithErrors int               `json:"files_with_errors" yaml:"files_with_errors"`
	TotalCallSites  int               `json:"total_call_sites" yaml:"total_call_sites"`
	UniqueKeys      int               `json:"unique_keys" yaml:"unique_keys"`
	CatalogEntries  int               `json:"catalog_entries" yaml:"catalog_entries"`
	MissingKeys     int               `json:"missing_keys" yaml:"missing_keys"`
	TotalIssues     int               `json:"total_issues" yaml:"total_issues"`
	Errors          int               `json:"errors" yaml:"errors"`
	Warnings        int               `json:"warnings" yaml:"warnings"`
	Infos           int               `json:"infos" yaml:"infos"`
	ByKind          map[IssueKind]int `json:"by_kind" yaml:"by_kind"`
	CoveragePercent float64           `json:"coverage_percent" yaml:"coverage_percent"`
}

// AuditReport is the aggregate result of one run. It is read-only once built.
type AuditReport struct {
	ID          string       `json:"id" yaml:"id"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Config      Config       `json:"config" yaml:"config"`
	Summary     Summary      `json:"summary" yaml:"summary"`
	Issues      []Issue      `json:"issues" yaml:"issues"`
	Files       []FileResult `json:"files" yaml:"files"`

	// CallSites is kept in memory for list-keys and is not persisted.
	CallSites []CallSite `json:"-" yaml:"-"`
}

// ReportFormat selects how a report is serialized.
type ReportFormat string

const (
	FormatText ReportFormat = "text"
	FormatJSON ReportFormat = "json"
	FormatYAML ReportFormat = "yaml"
	FormatCSV  ReportFormat = "csv"
)

// FormatFromPath infers the report format from a file extension, defaulting
// to JSON.
func FormatFromPath(path Path) ReportFormat {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt", ".text":
		return FormatText
	case ".csv":
		return FormatCSV
	default:
		return FormatJSON
	}
}

// ParseReportFormat validates a user-supplied format name.
func ParseReportFormat(name string) (ReportFormat, error) {
	switch format := ReportFormat(strings.ToLower(strings.TrimSpace(name))); format {
	case FormatText, FormatJSON, FormatYAML, FormatCSV:
		return format, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q", name)
	}
}
